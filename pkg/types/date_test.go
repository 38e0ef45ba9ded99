package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.String())
	assert.Equal(t, time.UTC, d.Time().Location())

	_, err = ParseDate("01.06.2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDate_DropsTimeComponent(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := DateOf(time.Date(2024, 6, 1, 23, 30, 0, 0, loc))

	assert.True(t, d.Equal(NewDate(2024, 6, 1)))
}

func TestDate_Comparison(t *testing.T) {
	a := MustParseDate("2024-01-01")
	b := MustParseDate("2024-01-05")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.False(t, a.Equal(b))
	assert.Equal(t, 4, a.DaysUntil(b))
	assert.True(t, a.AddDays(4).Equal(b))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{name: "time", src: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), want: "2024-03-10"},
		{name: "string", src: "2024-03-10", want: "2024-03-10"},
		{name: "bytes with time", src: []byte("2024-03-10T00:00:00Z"), want: "2024-03-10"},
		{name: "nil", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	var d Date
	assert.ErrorIs(t, d.Scan(42), ErrInvalidDate)
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-06-01","end":null}`), &payload))
	assert.Equal(t, "2024-06-01", payload.Start.String())
	assert.True(t, payload.End.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-06-01","end":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start":"June 1"}`), &payload))
}
