package get_property_availability

import (
	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// freeRanges вычисляет свободные промежутки окна
// booked должны быть отсортированы по дате начала и не пересекаться между собой
func freeRanges(window domain.DateRange, booked []*domain.Booking) []Range {
	free := make([]Range, 0)
	cursor := window.Start

	for _, b := range booked {
		if b.Range.Start.After(cursor) {
			end := b.Range.Start
			if end.After(window.End) {
				end = window.End
			}
			free = append(free, Range{Start: cursor, End: end})
		}
		if b.Range.End.After(cursor) {
			cursor = b.Range.End
		}
		if !cursor.Before(window.End) {
			return free
		}
	}

	if cursor.Before(window.End) {
		free = append(free, Range{Start: cursor, End: window.End})
	}

	return free
}

func bookedRanges(booked []*domain.Booking) []Range {
	result := make([]Range, 0, len(booked))
	for _, b := range booked {
		result = append(result, Range{Start: b.Range.Start, End: b.Range.End})
	}
	return result
}
