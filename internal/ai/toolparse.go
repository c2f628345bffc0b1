package ai

import (
	"strings"

	json "github.com/goccy/go-json"
)

// ToolCall is the JSON the model emits when it wants live account data
// instead of answering directly.
type ToolCall struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// ParseToolCall reads the model output as a tool call. Anything that is
// not a JSON object with both "tool" and "arguments" keys is treated as
// a normal reply and returns nil.
func ParseToolCall(raw string) *ToolCall {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "{") {
		return nil
	}

	var probe struct {
		Tool      *string         `json:"tool"`
		Arguments *map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil
	}
	if probe.Tool == nil || *probe.Tool == "" || probe.Arguments == nil {
		return nil
	}

	return &ToolCall{Tool: *probe.Tool, Arguments: *probe.Arguments}
}
