package get_property_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveByPropertyInRange(ctx context.Context, propertyID uuid.UUID, window domain.DateRange) ([]*domain.Booking, error)
}

// AvailabilityValidator интерфейс проверки доступности дат
type AvailabilityValidator interface {
	HasOverlap(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) (bool, error)
}

// PropertyDirectory справочник объектов
type PropertyDirectory interface {
	Validate(ctx context.Context, propertyID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
