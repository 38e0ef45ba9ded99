package list_properties

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/PropertyBookingService/internal/api/handlers"
	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/service/properties"
	"github.com/m04kA/PropertyBookingService/internal/service/properties/models"
)

const (
	msgInvalidPagination = "некорректные параметры пагинации"
)

type Handler struct {
	service PropertyService
	logger  Logger
}

func NewHandler(service PropertyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties?page=0&size=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parsePagination(r)
	if err != nil {
		h.logger.Warn("GET /properties - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	page, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("GET /properties - Invalid input: page=%d, size=%d, error=%v", req.Page, req.Size, err)
			handlers.RespondBadRequest(w, msgInvalidPagination)

		default:
			h.logger.Error("GET /properties - Failed to list properties: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties - Properties listed: page=%d, size=%d, total=%d", req.Page, req.Size, page.TotalItems)
	handlers.RespondJSON(w, http.StatusOK, page)
}

// parsePagination читает page и size из query, подставляя значения по умолчанию
func parsePagination(r *http.Request) (models.ListPropertiesRequest, error) {
	req := models.ListPropertiesRequest{Page: 0, Size: domain.DefaultPageSize}
	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return req, err
		}
		req.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return req, err
		}
		req.Size = size
	}

	return req, nil
}
