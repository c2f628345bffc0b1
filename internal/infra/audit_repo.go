package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

type auditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) ports.AuditRepo {
	return &auditRepo{db: db}
}

func (r *auditRepo) Record(ctx context.Context, event ports.AuditEvent) (int64, error) {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO audit_events (user_id, event_type, details, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, event.UserID, event.EventType, event.Details, createdAt).Scan(&id)
	return id, err
}

func (r *auditRepo) ListByUser(ctx context.Context, userID string, limit int) ([]ports.AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, event_type, details, created_at
		FROM audit_events
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []ports.AuditEvent
	for rows.Next() {
		var e ports.AuditEvent
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.EventType,
			&e.Details,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
