package properties

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/PropertyBookingService/internal/domain"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	ListEnabled(ctx context.Context, limit, offset int) ([]*domain.Property, error)
	CountEnabled(ctx context.Context) (int64, error)
	Disable(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
