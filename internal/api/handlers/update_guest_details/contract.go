package update_guest_details

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
)

type BookingService interface {
	UpdateGuestDetails(ctx context.Context, id uuid.UUID, req models.GuestDetails) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
