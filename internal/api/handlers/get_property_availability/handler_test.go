package get_property_availability

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

	getAvailability "github.com/m04kA/PropertyBookingService/internal/usecase/get_property_availability"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

type stubUseCase struct {
	got  *getAvailability.Request
	resp *getAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, id, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+id+"/availability?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"propertyId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_OK(t *testing.T) {
	propertyID := uuid.New()
	uc := &stubUseCase{resp: &getAvailability.Response{
		PropertyID: propertyID,
		StartDate:  types.MustParseDate("2024-06-01"),
		EndDate:    types.MustParseDate("2024-06-10"),
		Enabled:    true,
		BookedRanges: []getAvailability.Range{
			{Start: types.MustParseDate("2024-06-03"), End: types.MustParseDate("2024-06-05")},
		},
		FreeRanges: []getAvailability.Range{
			{Start: types.MustParseDate("2024-06-01"), End: types.MustParseDate("2024-06-03")},
			{Start: types.MustParseDate("2024-06-05"), End: types.MustParseDate("2024-06-10")},
		},
	}}

	rec := serve(NewHandler(uc, logger.Nop()), propertyID.String(), "startDate=2024-06-01&endDate=2024-06-10")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AvailabilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Available)
	assert.True(t, resp.Enabled)
	require.Len(t, resp.BookedRanges, 1)
	assert.Equal(t, RangeResponse{StartDate: "2024-06-03", EndDate: "2024-06-05"}, resp.BookedRanges[0])
	assert.Len(t, resp.FreeRanges, 2)

	assert.Equal(t, propertyID, uc.got.PropertyID)
	assert.Equal(t, "2024-06-10", uc.got.EndDate.String())
}

func TestHandler_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		query string
	}{
		{name: "invalid id", id: "abc", query: "startDate=2024-06-01&endDate=2024-06-10"},
		{name: "missing start", id: uuid.NewString(), query: "endDate=2024-06-10"},
		{name: "bad end", id: uuid.NewString(), query: "startDate=2024-06-01&endDate=10.06.2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			rec := serve(NewHandler(uc, logger.Nop()), tt.id, tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "inverted window", err: getAvailability.ErrInvalidDateRange, status: http.StatusBadRequest},
		{name: "window too large", err: getAvailability.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "not found", err: getAvailability.ErrPropertyNotFound, status: http.StatusNotFound},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, logger.Nop()), uuid.NewString(),
				"startDate=2024-06-01&endDate=2024-06-10")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
