package update_booking_dates

import (
	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// UpdateBookingDatesRequest HTTP request model
type UpdateBookingDatesRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingDatesRequest) ToServiceRequest() (*models.UpdateDatesRequest, error) {
	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.UpdateDatesRequest{StartDate: startDate, EndDate: endDate}, nil
}
