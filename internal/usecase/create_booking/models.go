package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// LocationPrefix путь ресурса бронирования для заголовка Location
const LocationPrefix = "/api/v1/bookings/"

// Request входные данные для создания бронирования
type Request struct {
	PropertyID uuid.UUID
	StartDate  types.Date
	EndDate    types.Date
	Guest      domain.GuestDetails
}

// Response результат создания бронирования
type Response struct {
	ID         uuid.UUID
	Location   string
	PropertyID uuid.UUID
	StartDate  types.Date
	EndDate    types.Date
	State      string
	CreatedAt  time.Time
}

func newResponse(b *domain.Booking) *Response {
	return &Response{
		ID:         b.ID,
		Location:   fmt.Sprintf("%s%s", LocationPrefix, b.ID),
		PropertyID: b.PropertyID,
		StartDate:  b.Range.Start,
		EndDate:    b.Range.End,
		State:      string(b.State),
		CreatedAt:  b.CreatedAt,
	}
}
