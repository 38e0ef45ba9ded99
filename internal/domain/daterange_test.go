package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/pkg/types"
)

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	dr, err := NewDateRange(types.MustParseDate(start), types.MustParseDate(end))
	require.NoError(t, err)
	return dr
}

func TestNewDateRange_RejectsEmptyAndInverted(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "same day", start: "2024-01-05", end: "2024-01-05"},
		{name: "inverted", start: "2024-01-10", end: "2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDateRange(types.MustParseDate(tt.start), types.MustParseDate(tt.end))
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}

	_, err := NewDateRange(types.Date{}, types.MustParseDate("2024-01-05"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "adjacent ranges do not overlap", a: [2]string{"2024-01-01", "2024-01-05"}, b: [2]string{"2024-01-05", "2024-01-10"}, want: false},
		{name: "one shared night", a: [2]string{"2024-01-01", "2024-01-05"}, b: [2]string{"2024-01-04", "2024-01-10"}, want: true},
		{name: "contained", a: [2]string{"2024-01-01", "2024-01-31"}, b: [2]string{"2024-01-10", "2024-01-12"}, want: true},
		{name: "identical", a: [2]string{"2024-06-01", "2024-06-08"}, b: [2]string{"2024-06-01", "2024-06-08"}, want: true},
		{name: "disjoint", a: [2]string{"2024-06-01", "2024-06-08"}, b: [2]string{"2024-07-01", "2024-07-08"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustRange(t, tt.a[0], tt.a[1])
			b := mustRange(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, a.Overlaps(b), b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestDateRange_Helpers(t *testing.T) {
	june := mustRange(t, "2024-06-01", "2024-06-08")
	next := mustRange(t, "2024-06-08", "2024-06-15")

	assert.Equal(t, 7, june.Nights())
	assert.True(t, june.Adjacent(next))
	assert.True(t, june.Contains(types.MustParseDate("2024-06-01")))
	assert.False(t, june.Contains(types.MustParseDate("2024-06-08")))
	assert.Equal(t, "[2024-06-01, 2024-06-08)", june.String())
}

func TestBookingState_IsValid(t *testing.T) {
	assert.True(t, StateActive.IsValid())
	assert.True(t, StateCancelled.IsValid())
	assert.False(t, BookingState("DELETED").IsValid())
}
