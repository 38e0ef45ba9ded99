package property

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/pkg/dbmetrics"
	"github.com/m04kA/PropertyBookingService/pkg/psqlbuilder"
)

const tableProperties = "properties"

var propertyColumns = []string{
	"id",
	"name",
	"description",
	"address",
	"enabled",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с объектами размещения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый объект
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableProperties).
		Columns("id", "name", "description", "address", "enabled").
		Values(
			property.ID.String(),
			property.Name,
			property.Description,
			property.Address,
			property.Enabled,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time

	return property, nil
}

// GetByID получает объект по ID, включая выключенные
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From(tableProperties).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	property, err := scanProperty(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	return property, nil
}

// ListEnabled получает страницу включенных объектов, отсортированных по имени
func (r *Repository) ListEnabled(ctx context.Context, limit, offset int) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(propertyColumns...).
		From(tableProperties).
		Where(squirrel.Eq{"enabled": true}).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListEnabled - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnabled - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListEnabled - scan row: %v", ErrScanRow, err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListEnabled - rows error: %v", ErrScanRow, err)
	}

	return properties, nil
}

// CountEnabled возвращает количество включенных объектов
func (r *Repository) CountEnabled(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableProperties).
		Where(squirrel.Eq{"enabled": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountEnabled - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountEnabled - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// Disable выключает объект
// Выключенный объект больше не принимает новые бронирования
func (r *Repository) Disable(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableProperties).
		Set("enabled", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Disable - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Disable - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Disable - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPropertyNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var property domain.Property
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&property.ID,
		&property.Name,
		&property.Description,
		&property.Address,
		&property.Enabled,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time

	return &property, nil
}
