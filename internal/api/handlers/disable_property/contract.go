package disable_property

import (
	"context"

	"github.com/google/uuid"
)

type PropertyService interface {
	Disable(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
