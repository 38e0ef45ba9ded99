package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/infra/storage/booking"
)

// BookingRepository бронирования в памяти
// Возвращает те же ошибки, что и PostgreSQL репозиторий, и так же
// отклоняет пересечение активных бронирований одного объекта (ErrOverlap)
type BookingRepository struct {
	store *Store
}

// NewBookingRepository создает репозиторий бронирований поверх хранилища
func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !b.IsPersisted() {
		b.ID = uuid.New()
	}
	if !b.State.IsValid() {
		return nil, fmt.Errorf("%w: %q", booking.ErrInvalidState, b.State)
	}
	if b.State == domain.StateActive && r.overlapsLocked(b.PropertyID, b.Range, b.ID) {
		return nil, fmt.Errorf("%w: Save - exclusion constraint", booking.ErrOverlap)
	}

	s.touchLocked(unitJournal(ctx), b.ID)

	now := s.now()
	b.CreatedAt = now
	b.UpdatedAt = now
	s.bookings[b.ID] = *b

	return b, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) SetState(ctx context.Context, id uuid.UUID, state domain.BookingState) error {
	if !state.IsValid() {
		return fmt.Errorf("%w: %q", booking.ErrInvalidState, state)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}
	if state == domain.StateActive && r.overlapsLocked(b.PropertyID, b.Range, b.ID) {
		return fmt.Errorf("%w: SetState - exclusion constraint", booking.ErrOverlap)
	}

	s.touchLocked(unitJournal(ctx), id)

	b.State = state
	b.UpdatedAt = s.now()
	s.bookings[id] = b

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return booking.ErrBookingNotFound
	}
	s.touchLocked(unitJournal(ctx), id)
	delete(s.bookings, id)

	return nil
}

func (r *BookingRepository) FindCancelledRangeByID(ctx context.Context, id uuid.UUID) (*domain.BookingWithPropertyAndDates, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok || b.State != domain.StateCancelled {
		return nil, booking.ErrBookingNotFound
	}

	return &domain.BookingWithPropertyAndDates{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		Range:      b.Range,
	}, nil
}

func (r *BookingRepository) ExistsWithAnyState(ctx context.Context, id uuid.UUID, states []domain.BookingState) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return false, nil
	}
	for _, st := range states {
		if b.State == st {
			return true, nil
		}
	}
	return false, nil
}

func (r *BookingRepository) FindActivePropertyByID(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok || b.State != domain.StateActive {
		return uuid.Nil, booking.ErrBookingNotFound
	}
	return b.PropertyID, nil
}

func (r *BookingRepository) HasOverlap(ctx context.Context, propertyID uuid.UUID, dr domain.DateRange, excludeID *uuid.UUID) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	exclude := uuid.Nil
	if excludeID != nil {
		exclude = *excludeID
	}
	return r.overlapsLocked(propertyID, dr, exclude), nil
}

func (r *BookingRepository) UpdateDates(ctx context.Context, id uuid.UUID, dr domain.DateRange) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || b.State != domain.StateActive {
		return booking.ErrBookingNotFound
	}
	if r.overlapsLocked(b.PropertyID, dr, b.ID) {
		return fmt.Errorf("%w: UpdateDates - exclusion constraint", booking.ErrOverlap)
	}

	s.touchLocked(unitJournal(ctx), id)

	b.Range = dr
	b.UpdatedAt = s.now()
	s.bookings[id] = b

	return nil
}

func (r *BookingRepository) ReplaceGuestDetails(ctx context.Context, id uuid.UUID, details domain.GuestDetails) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return booking.ErrBookingNotFound
	}

	s.touchLocked(unitJournal(ctx), id)

	b.Guest = details
	b.UpdatedAt = s.now()
	s.bookings[id] = b

	return nil
}

func (r *BookingRepository) ListActiveByPropertyInRange(ctx context.Context, propertyID uuid.UUID, window domain.DateRange) ([]*domain.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.PropertyID == propertyID && b.State == domain.StateActive && b.Range.Overlaps(window) {
			b := b
			result = append(result, &b)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Range.Start.Before(result[j].Range.Start)
	})

	return result, nil
}

// LockProperty в памяти только проверяет, что вызов сделан внутри единицы работы:
// TxManager уже выполняет их по одной
func (r *BookingRepository) LockProperty(ctx context.Context, propertyID uuid.UUID) error {
	if !inUnit(ctx) {
		return fmt.Errorf("%w: LockProperty - transaction required", booking.ErrExecQuery)
	}
	return nil
}

func (r *BookingRepository) overlapsLocked(propertyID uuid.UUID, dr domain.DateRange, exclude uuid.UUID) bool {
	for _, b := range r.store.bookings {
		if b.ID == exclude || b.PropertyID != propertyID || b.State != domain.StateActive {
			continue
		}
		if b.Range.Overlaps(dr) {
			return true
		}
	}
	return false
}
