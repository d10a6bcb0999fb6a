package infra

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/apostaguard/platform/internal/domain"
	"github.com/segmentio/kafka-go"
)

// EventPublisher publishes domain events to the configured topic. When
// disabled, Publish is a no-op so the serving path never depends on a broker.
type EventPublisher struct {
	writer  *kafka.Writer
	logger  *slog.Logger
	enabled bool
}

// NewEventPublisher creates a Kafka-backed publisher. If brokers is empty or
// disabled, publishes are no-ops.
func NewEventPublisher(brokers, topic string, enabled bool, logger *slog.Logger) *EventPublisher {
	if !enabled || brokers == "" {
		logger.Info("event publisher disabled")
		return &EventPublisher{enabled: false, logger: logger}
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(brokers, ",")...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("event publisher initialized", "brokers", brokers, "topic", topic)
	return &EventPublisher{writer: w, logger: logger, enabled: true}
}

// Publish sends a domain event keyed by its partition key. No-op if disabled.
// Failures are logged, not returned: events are advisory and must never fail
// the operation that emitted them.
func (p *EventPublisher) Publish(ctx context.Context, event domain.EventDraft) {
	if !p.enabled {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal event", "error", err, "event_type", event.EventType)
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PartitionKey),
		Value: value,
	}); err != nil {
		p.logger.Error("publish event", "error", err, "event_type", event.EventType)
	}
}

// Close shuts down the Kafka writer.
func (p *EventPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// EventConsumer reads domain events from the topic (used by cmd/event-logger).
type EventConsumer struct {
	reader *kafka.Reader
}

// NewEventConsumer creates a Kafka consumer for the given topic and group.
func NewEventConsumer(brokers, topic, groupID string) *EventConsumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(brokers, ","),
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})
	return &EventConsumer{reader: r}
}

// ReadEvent blocks until the next domain event is available.
func (c *EventConsumer) ReadEvent(ctx context.Context) (domain.EventDraft, error) {
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return domain.EventDraft{}, err
	}
	var event domain.EventDraft
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return domain.EventDraft{}, err
	}
	return event, nil
}

// Close shuts down the Kafka reader.
func (c *EventConsumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
