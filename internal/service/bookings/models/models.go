package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// Request модели

// GuestDetails данные гостя в запросах и ответах
type GuestDetails struct {
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	NumberOfAdults   int    `json:"numberOfAdults"`
	NumberOfChildren int    `json:"numberOfChildren"`
	NumberOfInfants  int    `json:"numberOfInfants"`
	SpecialRequests  string `json:"specialRequests,omitempty"`
}

// UpdateDatesRequest запрос на изменение дат бронирования
type UpdateDatesRequest struct {
	StartDate types.Date `json:"startDate"`
	EndDate   types.Date `json:"endDate"`
}

// ToDomainRange конвертирует даты запроса в интервал без проверки инварианта
func (r *UpdateDatesRequest) ToDomainRange() domain.DateRange {
	return domain.DateRange{Start: r.StartDate, End: r.EndDate}
}

// ToDomain конвертирует данные гостя в доменную модель
func (g GuestDetails) ToDomain() domain.GuestDetails {
	return domain.GuestDetails{
		FullName:         g.FullName,
		Email:            g.Email,
		Phone:            g.Phone,
		NumberOfAdults:   g.NumberOfAdults,
		NumberOfChildren: g.NumberOfChildren,
		NumberOfInfants:  g.NumberOfInfants,
		SpecialRequests:  g.SpecialRequests,
	}
}

// Response модели

// BookingResponse представление бронирования
type BookingResponse struct {
	ID           uuid.UUID    `json:"id"`
	PropertyID   uuid.UUID    `json:"propertyId"`
	StartDate    types.Date   `json:"startDate"`
	EndDate      types.Date   `json:"endDate"`
	Nights       int          `json:"nights"`
	GuestDetails GuestDetails `json:"guestDetails"`
	State        string       `json:"state"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// FromDomainGuestDetails конвертирует доменные данные гостя в DTO
func FromDomainGuestDetails(g domain.GuestDetails) GuestDetails {
	return GuestDetails{
		FullName:         g.FullName,
		Email:            g.Email,
		Phone:            g.Phone,
		NumberOfAdults:   g.NumberOfAdults,
		NumberOfChildren: g.NumberOfChildren,
		NumberOfInfants:  g.NumberOfInfants,
		SpecialRequests:  g.SpecialRequests,
	}
}

// FromDomainBooking конвертирует доменное бронирование в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		StartDate:    b.Range.Start,
		EndDate:      b.Range.End,
		Nights:       b.Range.Nights(),
		GuestDetails: FromDomainGuestDetails(b.Guest),
		State:        string(b.State),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
