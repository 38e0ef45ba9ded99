package handlers

import (
	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
)

// GuestDetailsRequest данные гостя в теле запроса
type GuestDetailsRequest struct {
	FullName         string `json:"fullName" validate:"required,max=255"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"omitempty,max=32"`
	NumberOfAdults   int    `json:"numberOfAdults" validate:"min=1,max=50"`
	NumberOfChildren int    `json:"numberOfChildren" validate:"min=0,max=50"`
	NumberOfInfants  int    `json:"numberOfInfants" validate:"min=0,max=50"`
	SpecialRequests  string `json:"specialRequests" validate:"max=1000"`
}

// ToDomain конвертирует данные гостя в доменную модель
func (g *GuestDetailsRequest) ToDomain() domain.GuestDetails {
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

// ToServiceModel конвертирует данные гостя в модель сервиса бронирований
func (g *GuestDetailsRequest) ToServiceModel() models.GuestDetails {
	return models.FromDomainGuestDetails(g.ToDomain())
}
