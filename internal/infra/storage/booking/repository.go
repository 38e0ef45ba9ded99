package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/pkg/dbmetrics"
	"github.com/m04kA/PropertyBookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// SQLSTATE коды PostgreSQL, которые репозиторий различает
const (
	codeExclusionViolation   = "23P01"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

var bookingColumns = []string{
	"id",
	"property_id",
	"start_date",
	"end_date",
	"state",
	"guest_full_name",
	"guest_email",
	"guest_phone",
	"guest_adults",
	"guest_children",
	"guest_infants",
	"guest_special_requests",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет новое бронирование
// Если ID не задан, генерирует его. Пересечение с активным бронированием того же
// объекта отклоняется ограничением исключения в БД и возвращается как ErrOverlap
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !booking.IsPersisted() {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"id",
			"property_id",
			"start_date",
			"end_date",
			"state",
			"guest_full_name",
			"guest_email",
			"guest_phone",
			"guest_adults",
			"guest_children",
			"guest_infants",
			"guest_special_requests",
		).
		Values(
			booking.ID.String(),
			booking.PropertyID.String(),
			booking.Range.Start,
			booking.Range.End,
			string(booking.State),
			booking.Guest.FullName,
			booking.Guest.Email,
			booking.Guest.Phone,
			booking.Guest.NumberOfAdults,
			booking.Guest.NumberOfChildren,
			booking.Guest.NumberOfInfants,
			booking.Guest.SpecialRequests,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, wrapQueryErr("Save - execute insert", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// FindByID получает бронирование по ID в любом состоянии
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapScanErr("FindByID - scan booking", err)
	}

	return booking, nil
}

// SetState переводит бронирование в новое состояние
// Перевод в ACTIVE может быть отклонен ограничением исключения (ErrOverlap)
func (r *Repository) SetState(ctx context.Context, id uuid.UUID, state domain.BookingState) error {
	if !state.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidState, state)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("state", string(state)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetState - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetState", query, args)
}

// Delete физически удаляет бронирование
// Повторное удаление возвращает ErrBookingNotFound
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

// FindCancelledRangeByID получает объект и даты отмененного бронирования
// Возвращает ErrBookingNotFound, если бронирования нет или оно не в состоянии CANCELLED.
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) FindCancelledRangeByID(ctx context.Context, id uuid.UUID) (*domain.BookingWithPropertyAndDates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "property_id", "start_date", "end_date").
		From(tableBookings).
		Where(squirrel.Eq{"id": id.String(), "state": string(domain.StateCancelled)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindCancelledRangeByID - build select query: %v", ErrBuildQuery, err)
	}

	var result domain.BookingWithPropertyAndDates
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.ID,
		&result.PropertyID,
		&result.Range.Start,
		&result.Range.End,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, wrapScanErr("FindCancelledRangeByID - scan row", err)
	}

	return &result, nil
}

// ExistsWithAnyState проверяет, что бронирование существует в одном из состояний
func (r *Repository) ExistsWithAnyState(ctx context.Context, id uuid.UUID, states []domain.BookingState) (bool, error) {
	if len(states) == 0 {
		return false, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	stateStrings := make([]string, len(states))
	for i, s := range states {
		stateStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableBookings).
		Where(squirrel.Eq{"id": id.String(), "state": stateStrings}).
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsWithAnyState - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, wrapQueryErr("ExistsWithAnyState - scan", err)
	}

	return exists, nil
}

// FindActivePropertyByID возвращает объект активного бронирования
// Возвращает ErrBookingNotFound, если бронирования нет или оно не ACTIVE
func (r *Repository) FindActivePropertyByID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("property_id").
		From(tableBookings).
		Where(squirrel.Eq{"id": id.String(), "state": string(domain.StateActive)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: FindActivePropertyByID - build select query: %v", ErrBuildQuery, err)
	}

	var propertyID uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&propertyID)
	if err == sql.ErrNoRows {
		return uuid.Nil, ErrBookingNotFound
	}
	if err != nil {
		return uuid.Nil, wrapScanErr("FindActivePropertyByID - scan row", err)
	}

	return propertyID, nil
}

// HasOverlap проверяет, пересекается ли диапазон с активными бронированиями объекта
// Полуоткрытые интервалы: start_date < $end AND end_date > $start.
// excludeID исключает из сравнения бронирование, которое сейчас перепроверяется
func (r *Repository) HasOverlap(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableBookings).
		Where(squirrel.Eq{"property_id": propertyID.String(), "state": string(domain.StateActive)}).
		Where(squirrel.Lt{"start_date": dr.End}).
		Where(squirrel.Gt{"end_date": dr.Start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID.String()})
	}

	query, args, err := selectBuilder.Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var overlaps bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&overlaps); err != nil {
		return false, wrapQueryErr("HasOverlap - scan", err)
	}

	return overlaps, nil
}

// UpdateDates заменяет даты активного бронирования
func (r *Repository) UpdateDates(ctx context.Context, id uuid.UUID, dr domain.DateRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("start_date", dr.Start).
		Set("end_date", dr.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id.String(), "state": string(domain.StateActive)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateDates", query, args)
}

// ReplaceGuestDetails заменяет данные гостя целиком
func (r *Repository) ReplaceGuestDetails(ctx context.Context, id uuid.UUID, details domain.GuestDetails) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("guest_full_name", details.FullName).
		Set("guest_email", details.Email).
		Set("guest_phone", details.Phone).
		Set("guest_adults", details.NumberOfAdults).
		Set("guest_children", details.NumberOfChildren).
		Set("guest_infants", details.NumberOfInfants).
		Set("guest_special_requests", details.SpecialRequests).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id.String()}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceGuestDetails - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "ReplaceGuestDetails", query, args)
}

// ListActiveByPropertyInRange получает активные бронирования объекта, пересекающие окно
// Отсортированы по дате начала
func (r *Repository) ListActiveByPropertyInRange(ctx context.Context, propertyID uuid.UUID, window domain.DateRange) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"property_id": propertyID.String(), "state": string(domain.StateActive)}).
		Where(squirrel.Lt{"start_date": window.End}).
		Where(squirrel.Gt{"end_date": window.Start}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByPropertyInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr("ListActiveByPropertyInRange - execute query", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, wrapScanErr("ListActiveByPropertyInRange - scan row", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapScanErr("ListActiveByPropertyInRange - rows error", err)
	}

	return bookings, nil
}

// LockProperty берет транзакционную advisory-блокировку на объект
// Сериализует проверку пересечений и запись для одного объекта.
// Блокировка держится до конца транзакции, поэтому вне транзакции вызов бессмыслен
func (r *Repository) LockProperty(ctx context.Context, propertyID uuid.UUID) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockProperty - transaction required", ErrExecQuery)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(hashtext(?))", propertyID.String())).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LockProperty - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return wrapQueryErr("LockProperty - execute", err)
	}

	return nil
}

// Helper methods

// execAffectingOne выполняет изменяющий запрос и возвращает ErrBookingNotFound,
// если ни одна строка не была затронута
func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op string, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapQueryErr(op+" - execute", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку с колонками bookingColumns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.PropertyID,
		&booking.Range.Start,
		&booking.Range.End,
		&booking.State,
		&booking.Guest.FullName,
		&booking.Guest.Email,
		&booking.Guest.Phone,
		&booking.Guest.NumberOfAdults,
		&booking.Guest.NumberOfChildren,
		&booking.Guest.NumberOfInfants,
		&booking.Guest.SpecialRequests,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// wrapQueryErr оборачивает ошибку драйвера
// Нарушение ограничения исключения превращается в ErrOverlap,
// ошибка сериализации сохраняется в цепочке для менеджера транзакций
func wrapQueryErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeExclusionViolation:
			return fmt.Errorf("%w: %s: %v", ErrOverlap, op, err)
		case codeSerializationFailure, codeDeadlockDetected:
			return fmt.Errorf("%w: %s: %w", ErrExecQuery, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

// wrapScanErr оборачивает ошибку чтения строки
// Ошибки драйвера идут через wrapQueryErr, чтобы код SQLSTATE не терялся
func wrapScanErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return wrapQueryErr(op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrScanRow, op, err)
}
