package get_property_availability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/internal/infra/storage/memory"
	"github.com/m04kA/PropertyBookingService/internal/service/availability"
	"github.com/m04kA/PropertyBookingService/pkg/logger"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

type fakeDirectory struct {
	errs map[uuid.UUID]error
}

func (d fakeDirectory) Validate(ctx context.Context, propertyID uuid.UUID) error {
	return d.errs[propertyID]
}

func dates(start, end string) domain.DateRange {
	return domain.DateRange{Start: types.MustParseDate(start), End: types.MustParseDate(end)}
}

func request(propertyID uuid.UUID, start, end string) *Request {
	return &Request{PropertyID: propertyID, StartDate: types.MustParseDate(start), EndDate: types.MustParseDate(end)}
}

func newUseCase(t *testing.T, directory fakeDirectory, propertyID uuid.UUID, booked ...domain.DateRange) *UseCase {
	t.Helper()

	repo := memory.NewBookingRepository(memory.NewStore())
	for _, dr := range booked {
		_, err := repo.Save(context.Background(), &domain.Booking{PropertyID: propertyID, Range: dr, State: domain.StateActive})
		require.NoError(t, err)
	}

	return NewUseCase(repo, availability.NewValidator(repo), directory, logger.Nop())
}

func TestUseCase_Execute(t *testing.T) {
	propertyID := uuid.New()
	uc := newUseCase(t, fakeDirectory{}, propertyID,
		dates("2024-06-01", "2024-06-08"),
		dates("2024-06-08", "2024-06-15"),
		dates("2024-06-20", "2024-06-25"),
	)

	resp, err := uc.Execute(context.Background(), request(propertyID, "2024-06-05", "2024-06-30"))
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.True(t, resp.Enabled)
	require.Len(t, resp.BookedRanges, 3)
	assert.Equal(t, "2024-06-01", resp.BookedRanges[0].Start.String())

	require.Len(t, resp.FreeRanges, 2)
	assert.Equal(t, "2024-06-15", resp.FreeRanges[0].Start.String())
	assert.Equal(t, "2024-06-20", resp.FreeRanges[0].End.String())
	assert.Equal(t, "2024-06-25", resp.FreeRanges[1].Start.String())
	assert.Equal(t, "2024-06-30", resp.FreeRanges[1].End.String())

	resp, err = uc.Execute(context.Background(), request(propertyID, "2024-06-15", "2024-06-20"))
	require.NoError(t, err)
	assert.True(t, resp.Available, "gap between adjacent bookings is free")
	assert.Empty(t, resp.BookedRanges)
	require.Len(t, resp.FreeRanges, 1)
}

func TestUseCase_Execute_DisabledProperty(t *testing.T) {
	propertyID := uuid.New()
	uc := newUseCase(t, fakeDirectory{errs: map[uuid.UUID]error{propertyID: domain.ErrPropertyDisabled}}, propertyID)

	resp, err := uc.Execute(context.Background(), request(propertyID, "2024-06-01", "2024-06-08"))
	require.NoError(t, err)
	assert.False(t, resp.Enabled)
	assert.False(t, resp.Available)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	propertyID := uuid.New()
	missing := uuid.New()
	uc := newUseCase(t, fakeDirectory{errs: map[uuid.UUID]error{missing: domain.ErrPropertyNotFound}}, propertyID)
	ctx := context.Background()

	_, err := uc.Execute(ctx, request(missing, "2024-06-01", "2024-06-08"))
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = uc.Execute(ctx, request(propertyID, "2024-06-08", "2024-06-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = uc.Execute(ctx, request(propertyID, "2024-01-01", "2025-06-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFreeRanges(t *testing.T) {
	window := dates("2024-06-01", "2024-06-10")

	assert.Equal(t, []Range{{Start: window.Start, End: window.End}}, freeRanges(window, nil))

	covering := []*domain.Booking{{Range: dates("2024-05-25", "2024-06-15")}}
	assert.Empty(t, freeRanges(window, covering))
}
