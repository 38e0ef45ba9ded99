package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	SetState(ctx context.Context, id uuid.UUID, state domain.BookingState) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindCancelledRangeByID(ctx context.Context, id uuid.UUID) (*domain.BookingWithPropertyAndDates, error)
	FindActivePropertyByID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	UpdateDates(ctx context.Context, id uuid.UUID, dr domain.DateRange) error
	ReplaceGuestDetails(ctx context.Context, id uuid.UUID, details domain.GuestDetails) error
	LockProperty(ctx context.Context, propertyID uuid.UUID) error
}

// AvailabilityValidator интерфейс проверки доступности дат
type AvailabilityValidator interface {
	EnsureAvailable(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
