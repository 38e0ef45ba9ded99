package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// BookingRepository часть репозитория бронирований, нужная для проверки доступности
type BookingRepository interface {
	HasOverlap(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) (bool, error)
}
