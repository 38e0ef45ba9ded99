package properties

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/infra/storage/memory"
	"github.com/m04kA/PropertyBookingService/internal/service/properties/models"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
)

func newService() *Service {
	return NewService(memory.NewPropertyRepository(memory.NewStore()), logger.Nop())
}

func TestService_CreateAndGet(t *testing.T) {
	s := newService()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.CreatePropertyRequest{Name: "  Sea View ", Address: "Beach st. 1"})
	require.NoError(t, err)
	assert.Equal(t, "Sea View", created.Name)
	assert.True(t, created.Enabled)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestService_CreateValidation(t *testing.T) {
	s := newService()
	ctx := context.Background()

	_, err := s.Create(ctx, &models.CreatePropertyRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Create(ctx, &models.CreatePropertyRequest{Name: strings.Repeat("a", domain.MaxPropertyNameLength+1)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Validate(t *testing.T) {
	s := newService()
	ctx := context.Background()

	created, err := s.Create(ctx, &models.CreatePropertyRequest{Name: "Sea View"})
	require.NoError(t, err)

	assert.NoError(t, s.Validate(ctx, created.ID))
	assert.ErrorIs(t, s.Validate(ctx, uuid.New()), domain.ErrPropertyNotFound)

	require.NoError(t, s.Disable(ctx, created.ID))
	assert.ErrorIs(t, s.Validate(ctx, created.ID), domain.ErrPropertyDisabled)

	assert.ErrorIs(t, s.Disable(ctx, uuid.New()), ErrPropertyNotFound)
}

func TestService_List(t *testing.T) {
	s := newService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Create(ctx, &models.CreatePropertyRequest{Name: fmt.Sprintf("Property %d", i)})
		require.NoError(t, err)
	}

	page, err := s.List(ctx, models.ListPropertiesRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Property 2", page.Items[0].Name)
	assert.Equal(t, int64(5), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	_, err = s.List(ctx, models.ListPropertiesRequest{Page: -1, Size: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.List(ctx, models.ListPropertiesRequest{Page: 0, Size: domain.MaxPageSize + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
