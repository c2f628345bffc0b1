package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/prompts"
)

// maxToolTurns bounds the model's tool loop so a confused model cannot
// spin forever.
const maxToolTurns = 4

type AiService struct {
	client       Completer
	backend      ports.BafokaClient
	turns        ports.TurnRepo
	Notifier     ports.Notificator
	counter      *tokenCounter
	systemPrompt string
}

func NewAiService(
	cfg config.Config,
	client Completer,
	backend ports.BafokaClient,
	turns ports.TurnRepo,
	notifier ports.Notificator,
) *AiService {
	return &AiService{
		client:       client,
		backend:      backend,
		turns:        turns,
		Notifier:     notifier,
		counter:      newTokenCounter(),
		systemPrompt: prompts.SystemPrompt(cfg) + "\n\n" + prompts.ToolProtocolPrompt(cfg),
	}
}

// LLM error diagnostics for the admin channel.
func analyzeLLMError(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "status code: 401"):
		return "Invalid LLM API key."
	case strings.Contains(msg, "status code: 404"):
		return "Model not found."
	case strings.Contains(msg, "status code: 429"):
		return "LLM rate limit exceeded."
	case strings.Contains(msg, "status code: 400") && strings.Contains(msg, "model"):
		return "Wrong model name."
	case strings.Contains(msg, "status code: 400"):
		return "Malformed LLM request."
	case strings.Contains(msg, "status code: 500"):
		return "LLM provider internal error."
	}
	return "Unknown LLM error: " + err.Error()
}

func (s *AiService) notifyLLMError(ctx context.Context, conversationID string, err error) {
	if s.Notifier == nil {
		return
	}
	diag := analyzeLLMError(err)
	s.Notifier.Notify(ctx, "ai", err,
		fmt.Sprintf("LLM failure\nConversation: %s\n%v\n\n%s", conversationID, err, diag))
}

func (s *AiService) GeneralReply(ctx context.Context, conversationID, userText string) (string, error) {
	start := time.Now()
	log.Printf("[ai] >>> START conv=%s", conversationID)

	messages := []openai.ChatCompletionMessage{
		{Role: "system", Content: s.systemPrompt},
	}

	if s.turns != nil {
		history, err := s.turns.GetRecent(ctx, conversationID, 20)
		if err != nil {
			log.Printf("[ai] history load failed: %v", err)
		}
		for _, t := range fitHistory(s.counter, history, historyTokenBudget) {
			text := strings.TrimSpace(t.Text)
			if text == "" {
				continue
			}
			role := "user"
			if t.Role == ports.RoleAssistant {
				role = "assistant"
			}
			messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: text})
		}
	}

	messages = append(messages, openai.ChatCompletionMessage{Role: "user", Content: userText})

	var output string
	for turn := 0; turn < maxToolTurns; turn++ {
		var err error
		output, err = s.complete(ctx, messages)
		if err != nil {
			s.notifyLLMError(ctx, conversationID, err)
			return "", err
		}

		call := ParseToolCall(output)
		if call == nil {
			log.Printf("[ai][%.1fs] reply ready conv=%s", time.Since(start).Seconds(), conversationID)
			return strings.TrimSpace(output), nil
		}

		log.Printf("[ai] tool requested conv=%s tool=%s", conversationID, call.Tool)

		// Keep the raw tool-call JSON in context, then feed the result
		// back as a synthetic user message per the protocol prompt.
		messages = append(messages, openai.ChatCompletionMessage{Role: "assistant", Content: output})

		payload, _ := json.Marshal(s.executeTool(ctx, call))
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    "user",
			Content: fmt.Sprintf("[tool_result name=%s] %s", call.Tool, payload),
		})
	}

	log.Printf("[ai][%.1fs] max tool turns reached conv=%s, returning last output", time.Since(start).Seconds(), conversationID)
	return strings.TrimSpace(output), nil
}

func (s *AiService) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	ctxLLM, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()
	return s.client.GetCompletion(ctxLLM, messages)
}

func (s *AiService) executeTool(ctx context.Context, call *ToolCall) map[string]any {
	switch call.Tool {
	case "check_valid_account":
		return s.toolCheckValidAccount(ctx, call.Arguments)
	case "create_account":
		return s.toolCreateAccount(ctx, call.Arguments)
	}

	log.Printf("[ai] unknown tool requested: %s", call.Tool)
	return map[string]any{"error": "Unknown tool: " + call.Tool, "received_arguments": call.Arguments}
}

func (s *AiService) toolCheckValidAccount(ctx context.Context, args map[string]any) map[string]any {
	phone := stringArg(args, "phone_number")
	if phone == "" {
		return map[string]any{"error": "phone_number argument missing"}
	}

	check, err := s.backend.CheckPhone(ctx, phone)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{
		"valid":        check.Exists,
		"phone_number": check.PhoneNumber,
		"account_id":   check.AccountID,
		"message":      check.Message,
	}
}

func (s *AiService) toolCreateAccount(ctx context.Context, args map[string]any) map[string]any {
	var missing []string
	for _, key := range []string{"phone_number", "full_name", "age", "groupement"} {
		if _, ok := args[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return map[string]any{"error": "Missing required arguments", "missing": missing, "received": args}
	}

	age, ok := intArg(args, "age")
	if !ok {
		return map[string]any{"error": "age must be an integer", "received": args}
	}

	group, ok := prompts.FindGroupement(stringArg(args, "groupement"))
	if !ok {
		return map[string]any{"error": "groupement not recognized", "received": args}
	}

	acc, err := s.backend.CreateAccount(ctx, ports.CreateAccountRequest{
		FullName:     stringArg(args, "full_name"),
		PhoneNumber:  stringArg(args, "phone_number"),
		Age:          strconv.Itoa(age),
		GroupementID: group.ID,
	})
	if errors.Is(err, ports.ErrPhoneTaken) {
		return map[string]any{"error": "Phone number already has an account", "phone_number": stringArg(args, "phone_number")}
	}
	if err != nil {
		return map[string]any{"error": err.Error()}
	}

	return map[string]any{
		"account_id":     acc.ID,
		"account_number": acc.AccountNumber,
		"full_name":      acc.FullName,
		"phone_number":   acc.PhoneNumber,
		"balance":        acc.Balance,
		"currency":       acc.Currency,
		"status":         acc.Status,
	}
}

func stringArg(args map[string]any, key string) string {
	switch t := args[key].(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func intArg(args map[string]any, key string) (int, bool) {
	switch t := args[key].(type) {
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
