package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/service/bookings"
	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

type stubService struct {
	resp *models.BookingResponse
	err  error
}

func (s stubService) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	return s.resp, s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	id := uuid.New()
	h := NewHandler(stubService{resp: &models.BookingResponse{
		ID:        id,
		StartDate: types.MustParseDate("2024-06-01"),
		EndDate:   types.MustParseDate("2024-06-08"),
		Nights:    7,
		State:     "ACTIVE",
	}}, logger.Nop())

	rec := serve(h, id.String())

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, id.String(), body["id"])
	assert.Equal(t, "2024-06-01", body["startDate"])
	assert.EqualValues(t, 7, body["nights"])
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "invalid id", id: "42", status: http.StatusBadRequest},
		{name: "not found", id: uuid.NewString(), err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "internal", id: uuid.NewString(), err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(stubService{err: tt.err}, logger.Nop()), tt.id)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
