package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"

	"github.com/m04kA/PropertyBookingService/internal/domain"
	"github.com/m04kA/PropertyBookingService/pkg/metrics"
)

const headerEventType = "event-type"

var (
	// ErrProducerClosed возвращается при публикации в закрытый продюсер
	ErrProducerClosed = errors.New("kafka.producer: producer is closed")

	// ErrInvalidConfig возвращается при неполной конфигурации продюсера
	ErrInvalidConfig = errors.New("kafka.producer: invalid config")

	// ErrPublish возвращается при ошибке записи сообщения
	ErrPublish = errors.New("kafka.producer: failed to publish event")
)

// Config настройки продюсера событий
type Config struct {
	Brokers      []string
	Topic        string
	Compression  string
	RequiredAcks int
	MaxAttempts  int
	BatchTimeout time.Duration
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer публикует события жизненного цикла бронирований в Kafka
// Ключ сообщения - ID объекта, поэтому события одного объекта упорядочены
type Producer struct {
	writer  messageWriter
	metrics *metrics.Metrics
	closed  bool
	mu      sync.RWMutex
}

// NewProducer создает продюсер поверх kafka-go writer
func NewProducer(cfg Config, m *metrics.Metrics) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	var compression compress.Compression
	switch cfg.Compression {
	case "gzip":
		compression = compress.Gzip
	case "lz4":
		compression = compress.Lz4
	case "zstd":
		compression = compress.Zstd
	default:
		compression = compress.Snappy
	}

	var requiredAcks kafka.RequiredAcks
	switch cfg.RequiredAcks {
	case 0:
		requiredAcks = kafka.RequireNone
	case 1:
		requiredAcks = kafka.RequireOne
	default:
		requiredAcks = kafka.RequireAll
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: requiredAcks,
		Compression:  compression,
		MaxAttempts:  cfg.MaxAttempts,
		BatchTimeout: cfg.BatchTimeout,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
	}

	return newProducer(writer, m), nil
}

func newProducer(writer messageWriter, m *metrics.Metrics) *Producer {
	return &Producer{writer: writer, metrics: m}
}

// Publish сериализует событие в JSON и записывает его в топик
func (p *Producer) Publish(ctx context.Context, event domain.BookingEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrProducerClosed
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: Publish - marshal event: %v", ErrPublish, err)
	}

	key := event.BookingID.String()
	if event.PropertyID != nil {
		key = event.PropertyID.String()
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.Type)},
		},
	}

	err = p.writer.WriteMessages(ctx, msg)
	if p.metrics != nil {
		p.metrics.ObserveEventPublished(string(event.Type), err)
	}
	if err != nil {
		return fmt.Errorf("%w: Publish - write message: %v", ErrPublish, err)
	}

	return nil
}

// Close закрывает writer, повторный вызов ничего не делает
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}

// Discard публикатор для запуска без брокера, события отбрасываются
type Discard struct{}

func (Discard) Publish(ctx context.Context, event domain.BookingEvent) error {
	return nil
}

func (Discard) Close() error {
	return nil
}
