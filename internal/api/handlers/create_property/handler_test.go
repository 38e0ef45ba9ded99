package create_property

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/service/properties"
	"github.com/m04kA/PropertyBookingService/internal/service/properties/models"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
)

type stubService struct {
	got  *models.CreatePropertyRequest
	resp *models.PropertyResponse
	err  error
}

func (s *stubService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	id := uuid.New()
	svc := &stubService{resp: &models.PropertyResponse{ID: id, Name: "Sea View", Enabled: true}}

	rec := serve(NewHandler(svc, logger.Nop()), `{"name":"Sea View","address":"Beach st. 1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/v1/properties/"+id.String(), rec.Header().Get("Location"))

	var resp models.PropertyResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, id, resp.ID)
	assert.True(t, resp.Enabled)
	assert.Equal(t, "Beach st. 1", svc.got.Address)
}

func TestHandler_BadRequest(t *testing.T) {
	for _, payload := range []string{`{"name":`, `{"address":"x"}`, `{"name":"` + strings.Repeat("a", 256) + `"}`} {
		svc := &stubService{}
		rec := serve(NewHandler(svc, logger.Nop()), payload)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.got)
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	rec := serve(NewHandler(&stubService{err: properties.ErrInvalidInput}, logger.Nop()), `{"name":"  x "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(NewHandler(&stubService{err: errors.New("boom")}, logger.Nop()), `{"name":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
