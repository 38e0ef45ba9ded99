package get_property_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/PropertyBookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/PropertyBookingService/internal/usecase/get_property_availability"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidDate       = "параметры startDate и endDate обязательны, формат YYYY-MM-DD"
	msgInvalidDateRange  = "дата начала должна быть раньше даты окончания"
	msgWindowTooLarge    = "окно запроса слишком большое"
	msgNotFound          = "объект не найден"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := handlers.PathUUID(r, "propertyId")
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	startDate, err := types.ParseDate(query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := types.ParseDate(query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		PropertyID: propertyID,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /properties/{id}/availability - Invalid date range: property_id=%s", propertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/availability - Invalid input: property_id=%s, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, getAvailability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed to get availability: property_id=%s, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/availability - Availability retrieved: property_id=%s, available=%t",
		propertyID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
