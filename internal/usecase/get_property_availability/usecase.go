package get_property_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// UseCase use case для получения доступности объекта в окне дат
type UseCase struct {
	bookingRepo BookingRepository
	validator   AvailabilityValidator
	directory   PropertyDirectory
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	validator AvailabilityValidator,
	directory PropertyDirectory,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		validator:   validator,
		directory:   directory,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetPropertyAvailability: property=%s, start=%s, end=%s", req.PropertyID, req.StartDate, req.EndDate)

	// 1. Валидация окна
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetPropertyAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем объект, выключенный объект показываем как недоступный
	enabled := true
	if err := uc.directory.Validate(ctx, req.PropertyID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPropertyNotFound):
			uc.logger.Info("GetPropertyAvailability: property id=%s not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		case errors.Is(err, domain.ErrPropertyDisabled):
			enabled = false
		default:
			uc.logger.Error("GetPropertyAvailability: property directory error for id=%s: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: failed to validate property: %v", ErrInternal, err)
		}
	}

	// 3. Решение о свободе окна принимает валидатор доступности
	overlaps, err := uc.validator.HasOverlap(ctx, req.PropertyID, window, nil)
	if err != nil {
		uc.logger.Error("GetPropertyAvailability: overlap check failed for property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: overlap check: %v", ErrInternal, err)
	}

	// 4. Активные бронирования в окне
	booked, err := uc.bookingRepo.ListActiveByPropertyInRange(ctx, req.PropertyID, window)
	if err != nil {
		uc.logger.Error("GetPropertyAvailability: failed to list bookings for property id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: list bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("GetPropertyAvailability: property id=%s has %d active bookings in %s", req.PropertyID, len(booked), window)

	return &Response{
		PropertyID:   req.PropertyID,
		StartDate:    window.Start,
		EndDate:      window.End,
		Enabled:      enabled,
		Available:    enabled && !overlaps,
		BookedRanges: bookedRanges(booked),
		FreeRanges:   freeRanges(window, booked),
	}, nil
}
