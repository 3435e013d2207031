package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/log"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/retry"
)

// Event types published to the booking events topic
const (
	TypeBookingConfirmed = "booking.confirmed"
	TypeCouponRedeemed   = "coupon.redeemed"
)

// Event is the envelope written to Kafka
type Event struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Aggregate   string          `json:"aggregate"`
	AggregateID string          `json:"aggregate_id"`
	Data        json.RawMessage `json:"data"`
	Timestamp   time.Time       `json:"timestamp"`
	Version     int             `json:"version"`
}

// BookingConfirmed is emitted once a booking has been persisted
type BookingConfirmed struct {
	BookingID      string    `json:"booking_id"`
	HotelID        string    `json:"hotel_id"`
	GuestID        string    `json:"guest_id"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
	Nights         int       `json:"nights"`
	Rooms          int       `json:"rooms"`
	Guests         int       `json:"guests"`
	CouponCode     string    `json:"coupon_code,omitempty"`
	DiscountAmount string    `json:"discount_amount"`
	TotalAmount    string    `json:"total_amount"`
	Currency       string    `json:"currency"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

// CouponRedeemed is emitted after a coupon use has been consumed by a booking
type CouponRedeemed struct {
	Code        string    `json:"code"`
	BookingID   string    `json:"booking_id"`
	CurrentUses int       `json:"current_uses"`
	MaxUses     *int      `json:"max_uses,omitempty"`
	RedeemedAt  time.Time `json:"redeemed_at"`
}

// Publisher defines the interface for publishing booking events
type Publisher interface {
	// Publish sends an event to the broker partitioned by key
	Publish(ctx context.Context, key string, event *Event) error
	Close() error
}

// NewEvent wraps a payload in an envelope
func NewEvent(eventType, aggregate, aggregateID string, data interface{}) (*Event, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return &Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		Aggregate:   aggregate,
		AggregateID: aggregateID,
		Data:        payload,
		Timestamp:   time.Now().UTC(),
		Version:     1,
	}, nil
}

// NewBookingConfirmed wraps e in a booking.confirmed envelope. Its partition key is the hotel.
func NewBookingConfirmed(e BookingConfirmed) (*Event, error) {
	return NewEvent(TypeBookingConfirmed, "booking", e.BookingID, e)
}

// NewCouponRedeemed wraps e in a coupon.redeemed envelope. Its partition key is the code.
func NewCouponRedeemed(e CouponRedeemed) (*Event, error) {
	return NewEvent(TypeCouponRedeemed, "coupon", e.Code, e)
}

// NoopPublisher is a no-operation publisher for testing and development
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, *Event) error { return nil }
func (NoopPublisher) Close() error                                  { return nil }

// KafkaConfig holds producer settings
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
	Retry    retry.Config
}

// KafkaPublisher publishes events with a synchronous sarama producer
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	retry    retry.Config
	logger   *zap.Logger
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher connects a sarama SyncProducer to the brokers
func NewKafkaPublisher(cfg KafkaConfig, logger *zap.Logger) (*KafkaPublisher, error) {
	sc := sarama.NewConfig()
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Idempotent = true
	sc.Producer.Return.Successes = true
	sc.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.Topic, cfg.Retry, logger), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, retryCfg retry.Config, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{
		producer: producer,
		topic:    topic,
		retry:    retryCfg,
		logger:   logger,
	}
}

// Publish sends the event with the event type and id as record headers.
// Oversized or malformed messages are not retried.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, event *Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("event_id"), Value: []byte(event.ID)},
		},
	}

	logger := log.With(ctx, p.logger)
	err = retry.Do(ctx, p.retry, logger, func(context.Context) error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			if errors.Is(err, sarama.ErrMessageSizeTooLarge) || errors.Is(err, sarama.ErrInvalidMessage) {
				return retry.Permanent(err)
			}
			return err
		}
		logger.Debug("Event published",
			zap.String("event_type", event.Type),
			zap.String("event_id", event.ID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
	if err != nil {
		metrics.RecordEventPublished(event.Type, "failed")
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	metrics.RecordEventPublished(event.Type, "published")
	return nil
}

// Close closes the producer
func (p *KafkaPublisher) Close() error {
	if p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
