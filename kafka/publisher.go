package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/warehouse/internal/order/domain"
	ordercommand "github.com/tair/warehouse/internal/order/usecase/command"
	"github.com/tair/warehouse/pkg/logger"
)

// Publisher wraps Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	now      func() time.Time
}

var _ ordercommand.PickPublisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return NewPublisherWithProducer(producer), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer) *Publisher {
	return &Publisher{producer: producer, now: time.Now}
}

// PublishPick emits order.picked and, when the pick finished the order, order.completed
func (p *Publisher) PublishPick(ctx context.Context, order *domain.Order, sku string, quantity int) error {
	now := p.now().UTC()

	picked := OrderPickedEvent{
		EventID:     uuid.NewString(),
		EventType:   EventTypeOrderPicked,
		OrderID:     order.ID,
		SKU:         sku,
		Quantity:    quantity,
		OrderStatus: string(order.Status),
		Timestamp:   now,
	}
	if err := p.publish(ctx, TopicOrderPicked, picked.EventType, picked.EventID, order.ID, picked); err != nil {
		return err
	}

	if order.Status != domain.StatusCompleted {
		return nil
	}

	completed := OrderCompletedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderCompleted,
		OrderID:   order.ID,
		Requested: order.Requested.Clone(),
		Picked:    order.Picked.Clone(),
		Timestamp: now,
	}
	return p.publish(ctx, TopicOrderCompleted, completed.EventType, completed.EventID, order.ID, completed)
}

// PublishStockReceived emits a stock.received event
func (p *Publisher) PublishStockReceived(ctx context.Context, sku string, quantity int) error {
	event := StockReceivedEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeStockReceived,
		SKU:       sku,
		Quantity:  quantity,
		Timestamp: p.now().UTC(),
	}
	return p.publish(ctx, TopicStockReceived, event.EventType, event.EventID, sku, event)
}

// publish sends payload as JSON with the trace context injected into the headers
func (p *Publisher) publish(ctx context.Context, topic, eventType, eventID, key string, payload interface{}) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
			attribute.String("event.id", eventID),
		),
	)
	defer span.End()

	eventBytes, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Error(ctx).
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	span.SetAttributes(
		attribute.Int("messaging.kafka.partition", int(partition)),
		attribute.Int64("messaging.kafka.offset", offset),
	)
	span.SetStatus(codes.Ok, "Event published successfully")

	logger.Info(ctx).
		Str("event_id", eventID).
		Str("event_type", eventType).
		Str("topic", topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
