package update_booking_dates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/service/bookings"
	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
)

type stubService struct {
	got *models.UpdateDatesRequest
	err error
}

func (s *stubService) UpdateDates(ctx context.Context, id uuid.UUID, req *models.UpdateDatesRequest) error {
	s.got = req
	return s.err
}

func serve(h *Handler, id, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/update-booking-dates", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"startDate":"2024-07-01","endDate":"2024-07-05"}`

func TestHandler_NoContent(t *testing.T) {
	svc := &stubService{}

	rec := serve(NewHandler(svc, logger.Nop()), uuid.NewString(), validBody)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "2024-07-01", svc.got.StartDate.String())
	assert.Equal(t, "2024-07-05", svc.got.EndDate.String())
}

func TestHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		payload string
	}{
		{name: "invalid id", id: "x", payload: validBody},
		{name: "malformed json", id: uuid.NewString(), payload: `{"startDate":`},
		{name: "missing end", id: uuid.NewString(), payload: `{"startDate":"2024-07-01"}`},
		{name: "bad date", id: uuid.NewString(), payload: `{"startDate":"2024-02-30","endDate":"2024-03-05"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			rec := serve(NewHandler(svc, logger.Nop()), tt.id, tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.got)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid range", err: bookings.ErrInvalidDateRange, status: http.StatusBadRequest},
		{name: "not found", err: bookings.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "conflict", err: bookings.ErrConflict, status: http.StatusConflict},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, logger.Nop()), uuid.NewString(), validBody)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
