package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/events"
	"github.com/staylane/pricingservice/internal/metrics"
	"github.com/staylane/pricingservice/internal/repository"
)

// Worker relays events from the outbox table to the broker
type Worker struct {
	outboxRepo repository.OutboxRepository
	publisher  events.Publisher
	logger     *zap.Logger
	interval   time.Duration
	batchSize  int
}

// Config holds worker configuration
type Config struct {
	Interval  time.Duration // Interval between processing cycles
	BatchSize int           // Number of events to process per cycle
}

// DefaultConfig returns a default worker configuration
func DefaultConfig() Config {
	return Config{
		Interval:  5 * time.Second,
		BatchSize: 50,
	}
}

// NewWorker creates a new outbox worker
func NewWorker(
	outboxRepo repository.OutboxRepository,
	publisher events.Publisher,
	logger *zap.Logger,
	config Config,
) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaults := DefaultConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	return &Worker{
		outboxRepo: outboxRepo,
		publisher:  publisher,
		logger:     logger,
		interval:   config.Interval,
		batchSize:  config.BatchSize,
	}
}

// NewEvent encodes a broker event as an outbox row with a stable id, so
// consumers see the same event id on every relay attempt.
func NewEvent(key string, event *events.Event) (*domain.OutboxEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal outbox payload: %w", err)
	}
	return &domain.OutboxEvent{
		ID:           event.ID,
		EventType:    event.Type,
		PartitionKey: key,
		Payload:      payload,
	}, nil
}

// Start runs relay cycles until ctx is cancelled
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting outbox worker",
		zap.Duration("interval", w.interval),
		zap.Int("batch_size", w.batchSize))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if _, err := w.ProcessBatch(ctx); err != nil {
		w.logger.Error("Failed to process initial batch", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Outbox worker stopping due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.ProcessBatch(ctx); err != nil {
				w.logger.Error("Failed to process outbox batch", zap.Error(err))
			}
		}
	}
}

// ProcessBatch relays one batch of pending events and returns how many were published.
// A failed event is marked failed and left for the next cycle.
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	pending, err := w.outboxRepo.GetPending(ctx, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get pending events: %w", err)
	}
	metrics.RecordOutboxBatch(len(pending))
	if len(pending) == 0 {
		return 0, nil
	}

	w.logger.Debug("Processing outbox batch", zap.Int("count", len(pending)))

	published := 0
	for _, event := range pending {
		if err := w.processEvent(ctx, event); err != nil {
			w.logger.Warn("Failed to relay outbox event",
				zap.Error(err),
				zap.String("event_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.Int("retry_count", event.RetryCount+1))
			metrics.RecordError("outbox_relay_failed", "outbox")
			if markErr := w.outboxRepo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				w.logger.Error("Failed to mark event as failed", zap.Error(markErr), zap.String("event_id", event.ID))
			}
			continue
		}

		if err := w.outboxRepo.MarkPublished(ctx, event.ID); err != nil {
			w.logger.Error("Failed to mark event as published",
				zap.Error(err),
				zap.String("event_id", event.ID))
			continue
		}
		published++
	}

	return published, nil
}

func (w *Worker) processEvent(ctx context.Context, event domain.OutboxEvent) error {
	var envelope events.Event
	if err := json.Unmarshal(event.Payload, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal event payload: %w", err)
	}
	if err := w.publisher.Publish(ctx, event.PartitionKey, &envelope); err != nil {
		return err
	}
	w.logger.Debug("Published outbox event",
		zap.String("event_id", event.ID),
		zap.String("event_type", event.EventType))
	return nil
}

// Stop drains one last batch before shutdown
func (w *Worker) Stop(ctx context.Context) error {
	w.logger.Info("Stopping outbox worker")

	if _, err := w.ProcessBatch(ctx); err != nil {
		w.logger.Error("Failed to process final batch", zap.Error(err))
		return err
	}
	return nil
}
