package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OutboxEvent is one pending publication row.
type OutboxEvent struct {
	ID          uuid.UUID
	Topic       string
	AggregateID string
	Payload     []byte
	Version     int32
	// TraceCtx is the serialized trace propagation context captured at
	// insert time, so the relay's publish joins the original trace.
	TraceCtx []byte
}

// OutboxRepository stores events in the same database as the state change
// that produced them, so publication survives broker outages.
type OutboxRepository struct {
	db *sql.DB
}

func NewOutboxRepository(db *sql.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

func (r *OutboxRepository) Insert(ctx context.Context, e OutboxEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO outbox_events (id, topic, aggregate_id, payload, event_version, trace_ctx, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', now())`,
		e.ID, e.Topic, e.AggregateID, e.Payload, e.Version, e.TraceCtx,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// FetchAndClaim marks up to limit pending rows as processing and returns
// them. SKIP LOCKED keeps concurrent relays from claiming the same rows.
func (r *OutboxRepository) FetchAndClaim(ctx context.Context, limit int32) ([]OutboxEvent, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT id, topic, aggregate_id, payload, event_version, trace_ctx
		FROM outbox_events
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED`,
		limit,
	)
	if err != nil {
		return nil, err
	}

	var claimed []OutboxEvent
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(&e.ID, &e.Topic, &e.AggregateID, &e.Payload, &e.Version, &e.TraceCtx); err != nil {
			rows.Close()
			return nil, err
		}
		claimed = append(claimed, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(claimed) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(claimed))
	for i, e := range claimed {
		ids[i] = e.ID
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE outbox_events
		SET status = 'processing', claimed_at = now()
		WHERE id = ANY($1)`,
		pq.Array(ids),
	); err != nil {
		return nil, err
	}

	return claimed, tx.Commit()
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events SET status = 'published', published_at = now() WHERE id = $1`, id)
	return err
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMsg string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events SET status = 'pending', error_msg = $2 WHERE id = $1`, id, errorMsg)
	return err
}

// ResetStuck returns crashed-mid-claim rows to pending.
func (r *OutboxRepository) ResetStuck(ctx context.Context, olderThan string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE outbox_events
		SET status = 'pending'
		WHERE status = 'processing' AND claimed_at < now() - $1::interval`,
		olderThan,
	)
	return err
}

func (r *OutboxRepository) DeleteOld(ctx context.Context, olderThan string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM outbox_events
		WHERE status = 'published' AND published_at < now() - $1::interval`,
		olderThan,
	)
	return err
}
