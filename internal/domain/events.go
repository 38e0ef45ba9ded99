package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/pkg/ptr"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// BookingEventType тип события жизненного цикла бронирования
type BookingEventType string

const (
	EventBookingCreated             BookingEventType = "booking.created"
	EventBookingCancelled           BookingEventType = "booking.cancelled"
	EventBookingRebooked            BookingEventType = "booking.rebooked"
	EventBookingDeleted             BookingEventType = "booking.deleted"
	EventBookingDatesUpdated        BookingEventType = "booking.dates_updated"
	EventBookingGuestDetailsUpdated BookingEventType = "booking.guest_details_updated"
)

// BookingEvent событие, публикуемое после фиксации изменения
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  uuid.UUID        `json:"bookingId"`
	PropertyID *uuid.UUID       `json:"propertyId,omitempty"`
	StartDate  types.Date       `json:"startDate"`
	EndDate    types.Date       `json:"endDate"`
	State      BookingState     `json:"state,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// NewBookingEvent создает событие по снимку бронирования
func NewBookingEvent(eventType BookingEventType, b *Booking, now time.Time) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		PropertyID: ptr.Ptr(b.PropertyID),
		StartDate:  b.Range.Start,
		EndDate:    b.Range.End,
		State:      b.State,
		OccurredAt: now.UTC(),
	}
}
