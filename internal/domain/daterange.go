package domain

import (
	"fmt"

	"github.com/m04kA/PropertyBookingService/pkg/types"
)

// DateRange полуоткрытый интервал дат [Start, End)
// Бронирование, заканчивающееся в день D, не пересекается с бронированием, начинающимся в день D
type DateRange struct {
	Start types.Date
	End   types.Date
}

// NewDateRange создает интервал и проверяет, что Start строго раньше End
func NewDateRange(start, end types.Date) (DateRange, error) {
	dr := DateRange{Start: start, End: end}
	if err := dr.Validate(); err != nil {
		return DateRange{}, err
	}
	return dr, nil
}

// Validate проверяет инвариант start < end
func (dr DateRange) Validate() error {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidDateRange)
	}
	if !dr.Start.Before(dr.End) {
		return fmt.Errorf("%w: start date %s must be before end date %s", ErrInvalidDateRange, dr.Start, dr.End)
	}
	return nil
}

// Overlaps возвращает true, если интервалы имеют хотя бы одну общую ночь
// Предикат симметричен: a.Overlaps(b) == b.Overlaps(a)
func (dr DateRange) Overlaps(other DateRange) bool {
	return dr.Start.Before(other.End) && other.Start.Before(dr.End)
}

// Adjacent возвращает true, если интервалы соприкасаются границами
func (dr DateRange) Adjacent(other DateRange) bool {
	return dr.End.Equal(other.Start) || other.End.Equal(dr.Start)
}

// Contains возвращает true, если ночь с датой d входит в интервал
func (dr DateRange) Contains(d types.Date) bool {
	return !d.Before(dr.Start) && d.Before(dr.End)
}

// Nights количество ночей в интервале
func (dr DateRange) Nights() int {
	return dr.Start.DaysUntil(dr.End)
}

func (dr DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", dr.Start, dr.End)
}
