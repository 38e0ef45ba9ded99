package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingState represents the lifecycle state of a booking
// Удаление бронирования - терминальный переход, а не состояние: запись физически удаляется
type BookingState string

const (
	StateActive    BookingState = "ACTIVE"
	StateCancelled BookingState = "CANCELLED"
)

// AllBookingStates все состояния, в которых бронирование существует
var AllBookingStates = []BookingState{
	StateActive,
	StateCancelled,
}

// IsValid returns true if the state is one of the known states
func (s BookingState) IsValid() bool {
	for _, st := range AllBookingStates {
		if s == st {
			return true
		}
	}
	return false
}

// GuestDetails данные гостя, заменяются целиком при обновлении
type GuestDetails struct {
	FullName         string
	Email            string
	Phone            string
	NumberOfAdults   int
	NumberOfChildren int
	NumberOfInfants  int
	SpecialRequests  string
}

// TotalGuests returns the number of guests counted for occupancy (infants excluded)
func (g GuestDetails) TotalGuests() int {
	return g.NumberOfAdults + g.NumberOfChildren
}

// Validate проверяет количество гостей и длину текстовых полей
func (g GuestDetails) Validate() error {
	if g.NumberOfAdults < MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidGuestDetails, MinAdults)
	}
	if g.NumberOfChildren < 0 || g.NumberOfInfants < 0 {
		return fmt.Errorf("%w: guest counts must not be negative", ErrInvalidGuestDetails)
	}
	if g.NumberOfAdults > MaxGuestsPerCategory || g.NumberOfChildren > MaxGuestsPerCategory || g.NumberOfInfants > MaxGuestsPerCategory {
		return fmt.Errorf("%w: at most %d guests per category", ErrInvalidGuestDetails, MaxGuestsPerCategory)
	}
	if len(g.FullName) > MaxFullNameLength {
		return fmt.Errorf("%w: full name is too long", ErrInvalidGuestDetails)
	}
	if len(g.SpecialRequests) > MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests are too long", ErrInvalidGuestDetails)
	}
	return nil
}

// Booking represents a reservation of a property over a date range
type Booking struct {
	ID         uuid.UUID // uuid.Nil до сохранения
	PropertyID uuid.UUID
	Range      DateRange
	Guest      GuestDetails
	State      BookingState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts toward availability
func (b *Booking) IsActive() bool {
	return b.State == StateActive
}

// IsCancelled returns true if the booking has been cancelled and can be rebooked
func (b *Booking) IsCancelled() bool {
	return b.State == StateCancelled
}

// IsPersisted returns true if the booking already has an identity
func (b *Booking) IsPersisted() bool {
	return b.ID != uuid.Nil
}

// BookingWithPropertyAndDates проекция для повторной проверки пересечения при rebook
type BookingWithPropertyAndDates struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Range      DateRange
}
