// Package postgres persists the registry's append-only audit trail.
// Every domain event the worker consumes is recorded here; rows are never
// updated or deleted.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/assetforge/pkg/database"
)

// AuditEvent is one row of the audit trail.
type AuditEvent struct {
	EventID    uuid.UUID
	Topic      string
	Payload    json.RawMessage
	OccurredAt time.Time
	RecordedAt time.Time
}

// AuditRepository writes and reads audit_events.
type AuditRepository struct {
	db *database.Database
}

// NewAuditRepository returns an AuditRepository backed by the given pool.
func NewAuditRepository(db *database.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends one audit row. Replayed events (same event_id) are ignored
// so the worker's at-least-once delivery stays idempotent.
func (r *AuditRepository) Record(ctx context.Context, ev *AuditEvent) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO audit_events (event_id, topic, payload, occurred_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (event_id) DO NOTHING`,
			ev.EventID, ev.Topic, []byte(ev.Payload), ev.OccurredAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				return fmt.Errorf("insert audit event (%s): %w", pgErr.Code, err)
			}
			return fmt.Errorf("insert audit event: %w", err)
		}
		return nil
	})
}

// FindByItem returns the audit trail rows whose payload references the given
// item id, newest first.
func (r *AuditRepository) FindByItem(ctx context.Context, itemID uuid.UUID, limit int) ([]*AuditEvent, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT event_id, topic, payload, occurred_at, recorded_at
		FROM audit_events
		WHERE payload->>'item_id' = $1
		ORDER BY recorded_at DESC
		LIMIT $2`,
		itemID.String(), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []*AuditEvent
	for rows.Next() {
		ev := &AuditEvent{}
		if err := rows.Scan(&ev.EventID, &ev.Topic, &ev.Payload, &ev.OccurredAt, &ev.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return out, nil
}
