package disable_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/PropertyBookingService/internal/api/handlers"
	"github.com/m04kA/PropertyBookingService/internal/service/properties"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgNotFound          = "объект не найден"
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

// Handle PATCH /api/v1/properties/{propertyId}/disable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := handlers.PathUUID(r, "propertyId")
	if err != nil {
		h.logger.Warn("PATCH /properties/{id}/disable - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	if err := h.service.Disable(r.Context(), propertyID); err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("PATCH /properties/{id}/disable - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /properties/{id}/disable - Failed to disable property: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /properties/{id}/disable - Property disabled: property_id=%s", propertyID)
	handlers.RespondNoContent(w)
}
