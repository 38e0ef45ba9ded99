package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	bookingRepo "github.com/m04kA/PropertyBookingService/internal/infra/storage/booking"
	"github.com/m04kA/PropertyBookingService/pkg/txmanager"
)

// Validator решает, свободен ли диапазон дат объекта
// Учитываются только ACTIVE бронирования того же объекта, интервалы полуоткрытые
type Validator struct {
	bookingRepo BookingRepository
}

// NewValidator создает новый экземпляр валидатора доступности
func NewValidator(bookingRepo BookingRepository) *Validator {
	return &Validator{bookingRepo: bookingRepo}
}

// HasOverlap возвращает true, если диапазон пересекается с активным бронированием объекта
// excludeID исключает из сравнения перепроверяемое бронирование
func (v *Validator) HasOverlap(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) (bool, error) {
	if err := dr.Validate(); err != nil {
		return false, err
	}

	overlaps, err := v.bookingRepo.HasOverlap(ctx, propertyID, dr, excludeID)
	if err != nil {
		if IsConflict(err) {
			return false, err
		}
		return false, fmt.Errorf("%w: HasOverlap - repository error: %w", ErrInternal, err)
	}

	return overlaps, nil
}

// EnsureAvailable возвращает ErrConflict, если диапазон занят
func (v *Validator) EnsureAvailable(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) error {
	overlaps, err := v.HasOverlap(ctx, propertyID, dr, excludeID)
	if err != nil {
		return err
	}

	if overlaps {
		return fmt.Errorf("%w: property_id=%s, range=%s", ErrConflict, propertyID, dr)
	}

	return nil
}

// IsConflict сообщает, означает ли ошибка конфликт бронирований:
// результат проверки, нарушение ограничения исключения в БД
// или ошибку сериализации конкурирующих транзакций
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, bookingRepo.ErrOverlap) ||
		errors.Is(err, txmanager.ErrSerialization)
}
