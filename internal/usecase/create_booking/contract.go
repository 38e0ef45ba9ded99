package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Save(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	LockProperty(ctx context.Context, propertyID uuid.UUID) error
}

// AvailabilityValidator интерфейс проверки доступности дат
type AvailabilityValidator interface {
	EnsureAvailable(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) error
}

// PropertyDirectory справочник объектов
// Validate возвращает domain.ErrPropertyNotFound или domain.ErrPropertyDisabled
type PropertyDirectory interface {
	Validate(ctx context.Context, propertyID uuid.UUID) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
