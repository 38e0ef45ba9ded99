package create_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/PropertyBookingService/internal/api/handlers"
	"github.com/m04kA/PropertyBookingService/internal/service/properties"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /properties - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	property, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrInvalidInput):
			h.logger.Warn("POST /properties - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /properties - Failed to create property: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /properties - Property created successfully: property_id=%s", property.ID)
	handlers.RespondCreated(w, LocationPrefix+property.ID.String(), property)
}
