package get_property_availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// validateRequest валидирует окно запроса
func validateRequest(req *Request) (domain.DateRange, error) {
	if req.PropertyID == uuid.Nil {
		return domain.DateRange{}, fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}

	window, err := domain.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	if window.Nights() > domain.MaxAvailabilityWindowDays {
		return domain.DateRange{}, fmt.Errorf("%w: window must not exceed %d nights", ErrInvalidInput, domain.MaxAvailabilityWindowDays)
	}

	return window, nil
}
