package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PropertyBookingService/internal/service/bookings"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
)

type stubService struct {
	called uuid.UUID
	err    error
}

func (s *stubService) Cancel(ctx context.Context, id uuid.UUID) error {
	s.called = id
	return s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_NoContent(t *testing.T) {
	id := uuid.New()
	svc := &stubService{}

	rec := serve(NewHandler(svc, logger.Nop()), id.String())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, id, svc.called)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{name: "invalid id", id: "not-a-uuid", status: http.StatusBadRequest},
		{name: "not found", id: uuid.NewString(), err: fmt.Errorf("%w: lookup", bookings.ErrBookingNotFound), status: http.StatusNotFound},
		{name: "internal", id: uuid.NewString(), err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := serve(NewHandler(svc, logger.Nop()), tt.id)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
