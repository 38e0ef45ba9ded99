package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/PropertyBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/PropertyBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата заезда должна быть раньше даты выезда"
	msgInvalidProperty    = "объект не существует или не принимает бронирования"
	msgConflict           = "выбранные даты пересекаются с активным бронированием"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: property_id=%s", req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrInvalidProperty):
			h.logger.Warn("POST /bookings - Invalid property: property_id=%s", req.PropertyID)
			handlers.RespondUnprocessable(w, msgInvalidProperty)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Dates conflict: property_id=%s, start=%s, end=%s",
				req.PropertyID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, property_id=%s",
		result.ID, result.PropertyID)
	handlers.RespondCreated(w, result.Location, FromUseCaseResponse(result))
}
