package ports

import (
	"context"
	"time"
)

// AudioStore persists synthesized replies and hands back a URL the caller
// can fetch them from.
type AudioStore interface {
	SaveResponse(ctx context.Context, conversationID string, data []byte, extension string) (string, error)
	// Cleanup removes stored files older than maxAge and returns how many
	// were deleted.
	Cleanup(ctx context.Context, maxAge time.Duration) (int, error)
}
