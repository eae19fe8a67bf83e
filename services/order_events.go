package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/acme-gaming/acme-store-api/config"
	"github.com/acme-gaming/acme-store-api/models"
)

// OrderCreatedEvent is the payload published when checkout persists an order
type OrderCreatedEvent struct {
	OrderNumber   string               `json:"order_number"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	OrderStatus   models.OrderStatus   `json:"order_status"`
	Total         float64              `json:"total"`
	ItemCount     int                  `json:"item_count"`
	CreatedAt     time.Time            `json:"created_at"`
}

// OrderEventPublisher publishes order lifecycle events for downstream
// consumers (fulfilment, notifications). Publishing is best effort: checkout
// never fails because an event could not be delivered.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	Close()
}

var orderEventsInstance OrderEventPublisher = NoopOrderEvents{}

// GetOrderEvents returns the configured order event publisher
func GetOrderEvents() OrderEventPublisher {
	return orderEventsInstance
}

// SetOrderEvents sets the order event publisher (primarily for testing)
func SetOrderEvents(p OrderEventPublisher) {
	orderEventsInstance = p
}

// InitOrderEvents wires the Kafka publisher when a broker is configured and
// the no-op publisher otherwise
func InitOrderEvents(cfg *config.Config) (OrderEventPublisher, error) {
	if cfg.KafkaBroker == "" {
		log.Println("KAFKA_BROKER not set, order events disabled")
		orderEventsInstance = NoopOrderEvents{}
		return orderEventsInstance, nil
	}

	publisher, err := NewKafkaOrderEvents(strings.Split(cfg.KafkaBroker, ","), cfg.KafkaOrdersTopic)
	if err != nil {
		return nil, err
	}
	orderEventsInstance = publisher
	return publisher, nil
}

// KafkaOrderEvents publishes order events to a Kafka topic
type KafkaOrderEvents struct {
	client *kgo.Client
	topic  string
}

// NewKafkaOrderEvents creates a Kafka-backed order event publisher
func NewKafkaOrderEvents(brokers []string, topic string) (*KafkaOrderEvents, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka client: %w", err)
	}

	return &KafkaOrderEvents{
		client: client,
		topic:  topic,
	}, nil
}

// PublishOrderCreated publishes an order-created event keyed by order number
func (p *KafkaOrderEvents) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	data, err := json.Marshal(NewOrderCreatedEvent(order))
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(order.OrderNumber),
		Value: data,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to produce order event: %w", err)
	}

	return nil
}

// Close flushes and closes the underlying Kafka client
func (p *KafkaOrderEvents) Close() {
	p.client.Close()
}

// NewOrderCreatedEvent builds the event payload for a persisted order
func NewOrderCreatedEvent(order *models.Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		OrderNumber:   order.OrderNumber,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		OrderStatus:   order.OrderStatus,
		Total:         order.Total,
		ItemCount:     len(order.Items),
		CreatedAt:     order.CreatedAt,
	}
}

// NoopOrderEvents drops all events. Used when no broker is configured.
type NoopOrderEvents struct{}

// PublishOrderCreated does nothing
func (NoopOrderEvents) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	return nil
}

// Close does nothing
func (NoopOrderEvents) Close() {}
