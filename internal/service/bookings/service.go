package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	bookingRepo "github.com/m04kA/PropertyBookingService/internal/infra/storage/booking"
	"github.com/m04kA/PropertyBookingService/internal/service/availability"
	"github.com/m04kA/PropertyBookingService/internal/service/bookings/models"
	"github.com/m04kA/PropertyBookingService/pkg/ptr"
)

// Service сервис жизненного цикла бронирований: чтение, отмена, повторная активация,
// удаление и изменение дат или данных гостя
type Service struct {
	bookingRepo BookingRepository
	validator   AvailabilityValidator
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	validator AvailabilityValidator,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		validator:   validator,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// GetByID получает бронирование по ID в любом состоянии
// Отсутствие бронирования - обычный исход, логируется на уровне info
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Info("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel переводит бронирование в CANCELLED
// Отмена не проверяет доступность дат: она только освобождает их
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	var cancelled *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.bookingRepo.SetState(ctx, id, domain.StateCancelled); err != nil {
			return err
		}

		booking.State = domain.StateCancelled
		cancelled = booking
		return nil
	})
	if err != nil {
		return s.mapError("Cancel", id, err)
	}

	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingCancelled, cancelled, s.now()))

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return nil
}

// Rebook возвращает отмененное бронирование в ACTIVE на прежние даты
// Даты перепроверяются против остальных активных бронирований объекта
func (s *Service) Rebook(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Rebook: rebooking booking id=%s", id)

	var rebooked *domain.BookingWithPropertyAndDates

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 1. Получаем объект и даты отмененного бронирования
		projection, err := s.bookingRepo.FindCancelledRangeByID(ctx, id)
		if err != nil {
			return err
		}

		// 2. Сериализуем проверку и запись по объекту
		if err := s.bookingRepo.LockProperty(ctx, projection.PropertyID); err != nil {
			return err
		}

		// 3. Проверяем доступность, исключая само бронирование
		if err := s.validator.EnsureAvailable(ctx, projection.PropertyID, projection.Range, &projection.ID); err != nil {
			return err
		}

		// 4. Активируем
		if err := s.bookingRepo.SetState(ctx, id, domain.StateActive); err != nil {
			return err
		}

		rebooked = projection
		return nil
	})
	if err != nil {
		return s.mapError("Rebook", id, err)
	}

	s.publish(ctx, domain.BookingEvent{
		Type:       domain.EventBookingRebooked,
		BookingID:  id,
		PropertyID: ptr.Ptr(rebooked.PropertyID),
		StartDate:  rebooked.Range.Start,
		EndDate:    rebooked.Range.End,
		State:      domain.StateActive,
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("Rebook: booking id=%s is active again for %s", id, rebooked.Range)
	return nil
}

// Delete физически удаляет бронирование в любом состоянии
// Повторное удаление возвращает ErrBookingNotFound
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	var deleted *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.bookingRepo.Delete(ctx, id); err != nil {
			return err
		}

		deleted = booking
		return nil
	})
	if err != nil {
		return s.mapError("Delete", id, err)
	}

	// Событие несет последнее состояние удаленного бронирования
	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingDeleted, deleted, s.now()))

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

// UpdateDates переносит активное бронирование на новые даты
func (s *Service) UpdateDates(ctx context.Context, id uuid.UUID, req *models.UpdateDatesRequest) error {
	dr := req.ToDomainRange()
	s.logger.Info("UpdateDates: moving booking id=%s to %s", id, dr)

	// 1. Проверяем диапазон до обращения к хранилищу
	if err := dr.Validate(); err != nil {
		s.logger.Warn("UpdateDates: invalid date range for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	var propertyID uuid.UUID

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2. Бронирование должно быть активным
		var err error
		propertyID, err = s.bookingRepo.FindActivePropertyByID(ctx, id)
		if err != nil {
			return err
		}

		// 3. Сериализуем проверку и запись по объекту
		if err := s.bookingRepo.LockProperty(ctx, propertyID); err != nil {
			return err
		}

		// 4. Проверяем доступность новых дат, исключая само бронирование
		if err := s.validator.EnsureAvailable(ctx, propertyID, dr, &id); err != nil {
			return err
		}

		// 5. Сохраняем
		return s.bookingRepo.UpdateDates(ctx, id, dr)
	})
	if err != nil {
		return s.mapError("UpdateDates", id, err)
	}

	s.publish(ctx, domain.BookingEvent{
		Type:       domain.EventBookingDatesUpdated,
		BookingID:  id,
		PropertyID: ptr.Ptr(propertyID),
		StartDate:  dr.Start,
		EndDate:    dr.End,
		State:      domain.StateActive,
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("UpdateDates: booking id=%s moved to %s", id, dr)
	return nil
}

// UpdateGuestDetails заменяет данные гостя целиком
// Даты не меняются, поэтому доступность не проверяется
func (s *Service) UpdateGuestDetails(ctx context.Context, id uuid.UUID, req models.GuestDetails) error {
	s.logger.Info("UpdateGuestDetails: updating guest details of booking id=%s", id)

	details := req.ToDomain()
	if err := details.Validate(); err != nil {
		s.logger.Warn("UpdateGuestDetails: invalid guest details for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var updated *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.bookingRepo.ReplaceGuestDetails(ctx, id, details); err != nil {
			return err
		}

		booking.Guest = details
		updated = booking
		return nil
	})
	if err != nil {
		return s.mapError("UpdateGuestDetails", id, err)
	}

	s.publish(ctx, domain.NewBookingEvent(domain.EventBookingGuestDetailsUpdated, updated, s.now()))

	s.logger.Info("UpdateGuestDetails: booking id=%s updated", id)
	return nil
}

// Helper methods

// mapError переводит ошибки хранилища и валидатора в ошибки сервиса
func (s *Service) mapError(op string, id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	case availability.IsConflict(err):
		s.logger.Warn("%s: booking id=%s conflicts with an active booking: %v", op, id, err)
		return ErrConflict
	case errors.Is(err, domain.ErrInvalidDateRange):
		s.logger.Warn("%s: invalid date range for booking id=%s: %v", op, id, err)
		return ErrInvalidDateRange
	default:
		s.logger.Error("%s: failed for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}

// publish отправляет событие после фиксации изменения
// Ошибка публикации логируется и не отменяет операцию
func (s *Service) publish(ctx context.Context, event domain.BookingEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish: failed to publish %s for booking id=%s: %v", event.Type, event.BookingID, err)
	}
}
