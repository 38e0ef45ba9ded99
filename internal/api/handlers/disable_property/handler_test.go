package disable_property

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PropertyBookingService/internal/service/properties"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
)

type stubService struct {
	called uuid.UUID
	err    error
}

func (s *stubService) Disable(ctx context.Context, id uuid.UUID) error {
	s.called = id
	return s.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/properties/"+id+"/disable", nil)
	req = mux.SetURLVars(req, map[string]string{"propertyId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	id := uuid.New()
	svc := &stubService{}
	rec := serve(NewHandler(svc, logger.Nop()), id.String())
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, id, svc.called)

	rec = serve(NewHandler(&stubService{}, logger.Nop()), "nope")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&stubService{err: properties.ErrPropertyNotFound}, logger.Nop()), uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(NewHandler(&stubService{err: errors.New("boom")}, logger.Nop()), uuid.NewString())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
