package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/service/availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	validator    AvailabilityValidator
	directory    PropertyDirectory
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	validator AvailabilityValidator,
	directory PropertyDirectory,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		validator:    validator,
		directory:    directory,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечения и запись выполняются в одной сериализуемой транзакции
// под блокировкой объекта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: property=%s, start=%s, end=%s, guests=%d", req.PropertyID, req.StartDate, req.EndDate, req.Guest.TotalGuests())

	// 1. Валидация входных данных и диапазона дат
	dr, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем объект в справочнике
	if err := uc.directory.Validate(ctx, req.PropertyID); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrPropertyDisabled) {
			uc.logger.Warn("CreateBooking: property id=%s rejected: %v", req.PropertyID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidProperty, err)
		}
		uc.logger.Error("CreateBooking: property directory error for id=%s: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to validate property: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Проверка и запись в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Сериализуем бронирования объекта
		if err := uc.bookingRepo.LockProperty(txCtx, req.PropertyID); err != nil {
			return err
		}

		// 3.2. Проверяем пересечение с активными бронированиями
		if err := uc.validator.EnsureAvailable(txCtx, req.PropertyID, dr, nil); err != nil {
			return err
		}

		// 3.3. Сохраняем
		created, err := uc.bookingRepo.Save(txCtx, &domain.Booking{
			PropertyID: req.PropertyID,
			Range:      dr,
			Guest:      req.Guest,
			State:      domain.StateActive,
		})
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		if availability.IsConflict(err) {
			uc.logger.Warn("CreateBooking: dates %s conflict for property id=%s: %v", dr, req.PropertyID, err)
			return nil, ErrConflict
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 4. Публикуем событие после фиксации
	event := domain.NewBookingEvent(domain.EventBookingCreated, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	return newResponse(result), nil
}
