package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// Store хранилище в памяти процесса
// Используется в тестах и при storage.driver = "memory"
type Store struct {
	mu         sync.RWMutex
	bookings   map[uuid.UUID]domain.Booking
	properties map[uuid.UUID]domain.Property
	now        func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		bookings:   make(map[uuid.UUID]domain.Booking),
		properties: make(map[uuid.UUID]domain.Property),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// journal исходные значения бронирований, измененных единицей работы
// nil означает, что до единицы работы записи не было
type journal struct {
	bookings map[uuid.UUID]*domain.Booking
}

func newJournal() *journal {
	return &journal{bookings: make(map[uuid.UUID]*domain.Booking)}
}

// touchLocked запоминает исходное значение бронирования при первом изменении в единице работы
// Вызывается под s.mu
func (s *Store) touchLocked(j *journal, id uuid.UUID) {
	if j == nil {
		return
	}
	if _, seen := j.bookings[id]; seen {
		return
	}
	if b, ok := s.bookings[id]; ok {
		j.bookings[id] = &b
		return
	}
	j.bookings[id] = nil
}

// undo возвращает исходные значения только тех бронирований, которые изменила единица работы
// Записи вне единицы работы, в том числе объекты размещения, не затрагиваются
func (s *Store) undo(j *journal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, prev := range j.bookings {
		if prev == nil {
			delete(s.bookings, id)
			continue
		}
		s.bookings[id] = *prev
	}
}
