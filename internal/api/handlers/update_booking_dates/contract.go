package update_booking_dates

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
)

type BookingService interface {
	UpdateDates(ctx context.Context, id uuid.UUID, req *models.UpdateDatesRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
