package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staylane/pricingservice/internal/domain"
	"github.com/staylane/pricingservice/internal/repository"
)

const insertOutboxSQL = `
INSERT INTO outbox (id, event_type, partition_key, payload, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING created_at`

const selectPendingOutboxSQL = `
SELECT id, event_type, partition_key, payload, retry_count, COALESCE(error_message, ''), created_at
FROM outbox
WHERE published_at IS NULL AND retry_count < $1
ORDER BY created_at, id
LIMIT $2`

// outboxRepository implements repository.OutboxRepository
type outboxRepository struct {
	db DBTX
}

// Insert writes an event. Callers run it in the transaction of the change it describes.
func (r *outboxRepository) Insert(ctx context.Context, e *domain.OutboxEvent) error {
	defer timed("outbox.insert")()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return fmt.Errorf("invalid outbox event ID format: %w", err)
	}
	if err := r.db.QueryRow(ctx, insertOutboxSQL, id, e.EventType, e.PartitionKey, e.Payload).Scan(&e.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// GetPending retrieves pending outbox events
func (r *outboxRepository) GetPending(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	defer timed("outbox.get_pending")()

	rows, err := r.db.Query(ctx, selectPendingOutboxSQL, repository.MaxOutboxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending outbox events: %w", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OutboxEvent, error) {
		var (
			e  domain.OutboxEvent
			id uuid.UUID
		)
		err := row.Scan(&id, &e.EventType, &e.PartitionKey, &e.Payload, &e.RetryCount, &e.ErrorMessage, &e.CreatedAt)
		e.ID = id.String()
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan outbox events: %w", err)
	}
	return events, nil
}

// MarkPublished marks an outbox event as published
func (r *outboxRepository) MarkPublished(ctx context.Context, id string) error {
	defer timed("outbox.mark_published")()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid outbox event ID format: %w", err)
	}
	tag, err := r.db.Exec(ctx, `UPDATE outbox SET published_at = now(), error_message = NULL WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event as published: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("outbox event", id)
	}
	return nil
}

// MarkFailed records a relay failure and bumps the retry count
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	defer timed("outbox.mark_failed")()

	eventID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid outbox event ID format: %w", err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE outbox SET retry_count = retry_count + 1, error_message = NULLIF($2, '') WHERE id = $1`,
		eventID, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event as failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("outbox event", id)
	}
	return nil
}
