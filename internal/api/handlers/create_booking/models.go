package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/PropertyBookingService/internal/usecase/create_booking"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID   string                        `json:"propertyId" validate:"required,uuid"`
	StartDate    string                        `json:"startDate" validate:"required,datetime=2006-01-02"` // "2024-06-01"
	EndDate      string                        `json:"endDate" validate:"required,datetime=2006-01-02"`   // "2024-06-08", день выезда
	GuestDetails *handlers.GuestDetailsRequest `json:"guestDetails" validate:"required"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	State      string `json:"state"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	propertyID, err := uuid.Parse(r.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid propertyId: %w", err)
	}

	startDate, err := types.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := types.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PropertyID: propertyID,
		StartDate:  startDate,
		EndDate:    endDate,
		Guest:      r.GuestDetails.ToDomain(),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:         resp.ID.String(),
		PropertyID: resp.PropertyID.String(),
		StartDate:  resp.StartDate.String(),
		EndDate:    resp.EndDate.String(),
		State:      resp.State,
	}
}
