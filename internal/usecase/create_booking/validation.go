package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса до обращения к хранилищу
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.PropertyID == uuid.Nil {
		return domain.DateRange{}, fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return domain.DateRange{}, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	// Диапазон проверяется раньше гостей: start >= end всегда InvalidDateRange
	dr, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	if err := req.Guest.Validate(); err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return dr, nil
}
