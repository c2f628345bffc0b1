package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

type Completer interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

type Service interface {
	// GeneralReply answers a free-form question. The model may request
	// account tools; the loop runs until it produces plain text.
	GeneralReply(ctx context.Context, conversationID, userText string) (string, error)
}
