package ai

import (
	"github.com/pkoukk/tiktoken-go"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

// historyTokenBudget caps how much past conversation is replayed to the
// model. The persona prompt and the current question come on top.
const historyTokenBudget = 4000

type tokenCounter struct {
	enc *tiktoken.Tiktoken
}

func newTokenCounter() *tokenCounter {
	// cl100k is an approximation for non-OpenAI models, which is fine
	// for budgeting.
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return &tokenCounter{}
	}
	return &tokenCounter{enc: enc}
}

func (c *tokenCounter) count(text string) int {
	if c.enc == nil {
		return len(text)/4 + 1
	}
	return len(c.enc.Encode(text, nil, nil))
}

// fitHistory keeps the newest turns that fit the token budget, returned
// in chronological order.
func fitHistory(counter *tokenCounter, turns []ports.Turn, budget int) []ports.Turn {
	total := 0
	start := 0
	for i := len(turns) - 1; i >= 0; i-- {
		total += counter.count(turns[i].Text)
		if total > budget {
			start = i + 1
			break
		}
	}
	return turns[start:]
}
