package bookings

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/infra/storage/booking"
	"github.com/m04kA/PropertyBookingService/internal/service/availability"
	"github.com/m04kA/PropertyBookingService/pkg/dbmetrics"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
	"github.com/m04kA/PropertyBookingService/pkg/txmanager"
)

const (
	queryCancelledForUpdate = "SELECT id, property_id, start_date, end_date FROM bookings WHERE id = $1 AND state = $2 FOR UPDATE"
	queryActiveForUpdate    = "SELECT property_id FROM bookings WHERE id = $1 AND state = $2 FOR UPDATE"
	queryLockProperty       = "SELECT pg_advisory_xact_lock(hashtext($1))"
	queryHasOverlap         = "SELECT EXISTS ( SELECT 1 FROM bookings WHERE property_id = $1"
	queryUpdateState        = "UPDATE bookings SET state = $1"
	queryUpdateDates        = "UPDATE bookings SET start_date = $1, end_date = $2"
)

type postgresFixture struct {
	service   *Service
	mock      sqlmock.Sqlmock
	publisher *recordingPublisher
}

// newPostgresFixture собирает сервис на PostgreSQL репозитории и менеджере транзакций поверх sqlmock
func newPostgresFixture(t *testing.T) *postgresFixture {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil, "test")
	repo := booking.NewRepository(wrapped)
	publisher := &recordingPublisher{}

	return &postgresFixture{
		service:   NewService(repo, availability.NewValidator(repo), txmanager.NewTransactionManager(wrapped), publisher, logger.Nop()),
		mock:      mock,
		publisher: publisher,
	}
}

func TestService_Postgres_RebookSerializationFailureOnLookup(t *testing.T) {
	f := newPostgresFixture(t)
	id := uuid.New()

	for _, code := range []string{"40001", "40P01"} {
		f.mock.ExpectBegin()
		f.mock.ExpectQuery(regexp.QuoteMeta(queryCancelledForUpdate)).
			WithArgs(id.String(), "CANCELLED").
			WillReturnError(&pq.Error{Code: pq.ErrorCode(code), Message: "could not serialize access due to concurrent update"})
		f.mock.ExpectRollback()

		err := f.service.Rebook(context.Background(), id)

		assert.ErrorIs(t, err, ErrConflict, code)
		assert.NotErrorIs(t, err, ErrInternal, code)
	}

	require.NoError(t, f.mock.ExpectationsWereMet())
	assert.Empty(t, f.publisher.events)
}

func TestService_Postgres_RebookSerializationFailureOnCommit(t *testing.T) {
	f := newPostgresFixture(t)
	id := uuid.New()
	propertyID := uuid.New()

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(regexp.QuoteMeta(queryCancelledForUpdate)).
		WithArgs(id.String(), "CANCELLED").
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "start_date", "end_date"}).
			AddRow(id.String(), propertyID.String(), "2024-06-01", "2024-06-08"))
	f.mock.ExpectExec(regexp.QuoteMeta(queryLockProperty)).
		WithArgs(propertyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectQuery(regexp.QuoteMeta(queryHasOverlap)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	f.mock.ExpectExec(regexp.QuoteMeta(queryUpdateState)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})

	err := f.service.Rebook(context.Background(), id)

	assert.ErrorIs(t, err, ErrConflict)
	require.NoError(t, f.mock.ExpectationsWereMet())
	assert.Empty(t, f.publisher.events)
}

func TestService_Postgres_RebookExclusionViolation(t *testing.T) {
	f := newPostgresFixture(t)
	id := uuid.New()
	propertyID := uuid.New()

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(regexp.QuoteMeta(queryCancelledForUpdate)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "start_date", "end_date"}).
			AddRow(id.String(), propertyID.String(), "2024-06-01", "2024-06-08"))
	f.mock.ExpectExec(regexp.QuoteMeta(queryLockProperty)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectQuery(regexp.QuoteMeta(queryHasOverlap)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	f.mock.ExpectExec(regexp.QuoteMeta(queryUpdateState)).
		WillReturnError(&pq.Error{Code: "23P01"})
	f.mock.ExpectRollback()

	err := f.service.Rebook(context.Background(), id)

	assert.ErrorIs(t, err, ErrConflict)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Postgres_UpdateDatesSerializationFailureOnLookup(t *testing.T) {
	f := newPostgresFixture(t)
	id := uuid.New()

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(regexp.QuoteMeta(queryActiveForUpdate)).
		WithArgs(id.String(), "ACTIVE").
		WillReturnError(&pq.Error{Code: "40001"})
	f.mock.ExpectRollback()

	err := f.service.UpdateDates(context.Background(), id, updateDates("2024-06-02", "2024-06-09"))

	assert.ErrorIs(t, err, ErrConflict)
	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestService_Postgres_UpdateDatesExclusionViolation(t *testing.T) {
	f := newPostgresFixture(t)
	id := uuid.New()
	propertyID := uuid.New()

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(regexp.QuoteMeta(queryActiveForUpdate)).
		WithArgs(id.String(), "ACTIVE").
		WillReturnRows(sqlmock.NewRows([]string{"property_id"}).AddRow(propertyID.String()))
	f.mock.ExpectExec(regexp.QuoteMeta(queryLockProperty)).
		WithArgs(propertyID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectQuery(regexp.QuoteMeta(queryHasOverlap)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	f.mock.ExpectExec(regexp.QuoteMeta(queryUpdateDates)).
		WillReturnError(&pq.Error{Code: "23P01"})
	f.mock.ExpectRollback()

	err := f.service.UpdateDates(context.Background(), id, updateDates("2024-06-02", "2024-06-09"))

	assert.ErrorIs(t, err, ErrConflict)
	require.NoError(t, f.mock.ExpectationsWereMet())
	assert.Empty(t, f.publisher.events)
}

func TestService_Postgres_UpdateDatesCommits(t *testing.T) {
	f := newPostgresFixture(t)
	id := uuid.New()
	propertyID := uuid.New()

	f.mock.ExpectBegin()
	f.mock.ExpectQuery(regexp.QuoteMeta(queryActiveForUpdate)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id"}).AddRow(propertyID.String()))
	f.mock.ExpectExec(regexp.QuoteMeta(queryLockProperty)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectQuery(regexp.QuoteMeta(queryHasOverlap)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	f.mock.ExpectExec(regexp.QuoteMeta(queryUpdateDates)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	f.mock.ExpectCommit()

	require.NoError(t, f.service.UpdateDates(context.Background(), id, updateDates("2024-06-02", "2024-06-09")))
	require.NoError(t, f.mock.ExpectationsWereMet())

	require.Len(t, f.publisher.events, 1)
	require.NotNil(t, f.publisher.events[0].PropertyID)
	assert.Equal(t, propertyID, *f.publisher.events[0].PropertyID)
}
