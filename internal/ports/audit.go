package ports

import (
	"context"
	"time"
)

// AuditEvent is an append-only record of a money operation or a security
// decision. Details holds the event payload as JSON. The json tags match
// what the admin audit endpoint returns.
type AuditEvent struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	EventType string    `json:"event_type"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	AuditTransactionInitiated = "transaction_initiated"
	AuditTransactionCompleted = "transaction_completed"
	AuditTransactionFailed    = "transaction_failed"
	AuditTransactionBlocked   = "transaction_blocked"
	AuditFraudAlert           = "fraud_alert"
	AuditAccountCreated       = "account_created"
	AuditPasswordReset        = "password_reset"
	AuditPasswordChanged      = "password_changed"
	AuditWhatsappLinked       = "whatsapp_linked"
)

type AuditRepo interface {
	Record(ctx context.Context, event AuditEvent) (int64, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]AuditEvent, error)
}
