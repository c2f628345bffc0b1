package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// OpenAIClient speaks the OpenAI chat API. With LLM_BASE_URL pointed at
// an Ollama or vLLM instance it drives local models the same way.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(cfg config.Config) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	clientCfg.BaseURL = cfg.LLMBaseURL

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.LLMModel,
	}
}

func (c *OpenAIClient) GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   512,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
