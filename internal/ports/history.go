package ports

import (
	"context"
	"time"
)

// Turn is one utterance in a conversation, either from the user or from
// the assistant. The json tags match what the admin history endpoint
// returns.
type Turn struct {
	ID             int64     `json:"id"`
	ConversationID string    `json:"conversation_id"`
	UserID         string    `json:"user_id"`
	Role           string    `json:"role"`
	Text           string    `json:"text"`
	Intent         string    `json:"intent,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type TurnRepo interface {
	// SaveExchange stores the user turn and the assistant reply in one
	// transaction, so history never ends up with half an exchange.
	SaveExchange(ctx context.Context, userTurn, botTurn Turn) error
	GetRecent(ctx context.Context, conversationID string, n int) ([]Turn, error)
	DeleteByConversation(ctx context.Context, conversationID string) error
}
