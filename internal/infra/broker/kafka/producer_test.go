package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/pkg/metrics"
	"github.com/m04kA/PropertyBookingService/pkg/types"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   int
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed++
	return nil
}

func sampleEvent() domain.BookingEvent {
	return domain.NewBookingEvent(domain.EventBookingCreated, &domain.Booking{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Range: domain.DateRange{
			Start: types.MustParseDate("2024-06-01"),
			End:   types.MustParseDate("2024-06-08"),
		},
		State: domain.StateActive,
	}, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
}

func TestProducer_Publish(t *testing.T) {
	writer := &fakeWriter{}
	m := metrics.New("test")
	p := newProducer(writer, m)
	event := sampleEvent()

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, event.PropertyID.String(), string(msg.Key))
	assert.Equal(t, headerEventType, msg.Headers[0].Key)
	assert.Equal(t, "booking.created", string(msg.Headers[0].Value))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "2024-06-01", decoded["startDate"])
	assert.Equal(t, "ACTIVE", decoded["state"])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingEventsPublished.WithLabelValues("booking.created", "ok")))
}

func TestProducer_LifecycleEventsShareKey(t *testing.T) {
	writer := &fakeWriter{}
	p := newProducer(writer, nil)
	created := sampleEvent()

	b := &domain.Booking{
		ID:         created.BookingID,
		PropertyID: *created.PropertyID,
		Range:      domain.DateRange{Start: created.StartDate, End: created.EndDate},
		State:      domain.StateCancelled,
	}
	now := created.OccurredAt

	events := []domain.BookingEvent{
		created,
		domain.NewBookingEvent(domain.EventBookingCancelled, b, now),
		domain.NewBookingEvent(domain.EventBookingGuestDetailsUpdated, b, now),
		domain.NewBookingEvent(domain.EventBookingDeleted, b, now),
	}
	for _, event := range events {
		require.NoError(t, p.Publish(context.Background(), event))
	}

	require.Len(t, writer.messages, len(events))
	for _, msg := range writer.messages {
		assert.Equal(t, created.PropertyID.String(), string(msg.Key))
	}
}

func TestProducer_PublishError(t *testing.T) {
	m := metrics.New("test")
	p := newProducer(&fakeWriter{err: errors.New("broker down")}, m)

	err := p.Publish(context.Background(), sampleEvent())

	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingEventsPublished.WithLabelValues("booking.created", "error")))
}

func TestProducer_Close(t *testing.T) {
	writer := &fakeWriter{}
	p := newProducer(writer, nil)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, writer.closed)

	assert.ErrorIs(t, p.Publish(context.Background(), sampleEvent()), ErrProducerClosed)
}

func TestNewProducer_InvalidConfig(t *testing.T) {
	_, err := NewProducer(Config{Topic: "bookings"}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewProducer(Config{Brokers: []string{"localhost:9092"}}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
