package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/infra/storage/property"
)

// PropertyRepository объекты размещения в памяти
type PropertyRepository struct {
	store *Store
}

// NewPropertyRepository создает репозиторий объектов поверх хранилища
func NewPropertyRepository(store *Store) *PropertyRepository {
	return &PropertyRepository{store: store}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.properties[p.ID] = *p

	return p, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, property.ErrPropertyNotFound
	}
	return &p, nil
}

func (r *PropertyRepository) ListEnabled(ctx context.Context, limit, offset int) ([]*domain.Property, error) {
	enabled := r.enabledSorted()

	if offset >= len(enabled) {
		return []*domain.Property{}, nil
	}
	end := offset + limit
	if end > len(enabled) {
		end = len(enabled)
	}

	return enabled[offset:end], nil
}

func (r *PropertyRepository) CountEnabled(ctx context.Context) (int64, error) {
	return int64(len(r.enabledSorted())), nil
}

func (r *PropertyRepository) Disable(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return property.ErrPropertyNotFound
	}

	p.Enabled = false
	p.UpdatedAt = s.now()
	s.properties[id] = p

	return nil
}

// enabledSorted повторяет порядок PostgreSQL репозитория: имя, затем id
func (r *PropertyRepository) enabledSorted() []*domain.Property {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Property, 0, len(s.properties))
	for _, p := range s.properties {
		if p.Enabled {
			p := p
			result = append(result, &p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID.String() < result[j].ID.String()
	})

	return result
}
