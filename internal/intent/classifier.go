package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bafoka-network/voice-assistant/internal/ports"
	"github.com/bafoka-network/voice-assistant/internal/textclean"
)

// Classifier scores user text against weighted keyword tables. Input passes
// through textclean first, so transcription fillers and polite phrases do not
// sway the scores. A matched phrase weighs 0.8, a keyword 0.5, a context word
// 0.2, short inputs with a keyword get a 0.3 boost. Scores are capped at 1.0.
type Classifier struct {
	cleaner  *textclean.Cleaner
	patterns []patternSet
	blocked  []string
}

func NewClassifier() *Classifier {
	c := &Classifier{cleaner: textclean.NewCleaner(), blocked: blockedPhrases}
	for _, ps := range intentPatterns {
		c.patterns = append(c.patterns, patternSet{
			intent:   ps.intent,
			keywords: normalizeAll(ps.keywords),
			context:  normalizeAll(ps.context),
			phrases:  normalizeAll(ps.phrases),
		})
	}
	return c
}

func (c *Classifier) Classify(text string) ports.IntentResult {
	if strings.TrimSpace(text) == "" {
		return ports.IntentResult{Intent: ports.IntentGeneralSupport, Confidence: 0.0}
	}

	norm := normalize(c.cleaner.Clean(text))

	for _, phrase := range c.blocked {
		if strings.Contains(norm, phrase) {
			return ports.IntentResult{Intent: ports.IntentOffTopic, Confidence: 0.9}
		}
	}

	shortInput := len(strings.Fields(norm)) <= 2

	bestIntent := ports.IntentGeneralSupport
	bestScore := 0.0

	for _, ps := range c.patterns {
		score := 0.0

		for _, p := range ps.phrases {
			if p != "" && strings.Contains(norm, p) {
				score += 0.8
				break
			}
		}

		keywordFound := false
		for _, k := range ps.keywords {
			if matchToken(norm, k) {
				score += 0.5
				keywordFound = true
				break
			}
		}

		for _, ctxWord := range ps.context {
			if matchToken(norm, ctxWord) {
				score += 0.2
				break
			}
		}

		if keywordFound && shortInput {
			score += 0.3
		}

		if score > 1.0 {
			score = 1.0
		}

		if score > bestScore {
			bestScore = score
			bestIntent = ps.intent
		}
	}

	if bestScore >= 0.4 {
		return ports.IntentResult{Intent: bestIntent, Confidence: bestScore}
	}

	return ports.IntentResult{Intent: ports.IntentGeneralSupport, Confidence: 0.5}
}

// matchToken does substring matching for multi-word tokens and whole-word
// matching for single tokens, which keeps "retire" from firing on "retirement".
func matchToken(text, token string) bool {
	if token == "" {
		return false
	}
	if strings.Contains(token, " ") {
		return strings.Contains(text, token)
	}
	return hasWord(text, token)
}

// hasWord is a rune-aware whole-word search. regexp \b treats accented
// letters as non-word characters, which would break the French tokens.
func hasWord(text, word string) bool {
	for start := 0; start <= len(text)-len(word); {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(word)) {
			return true
		}
		start = idx + 1
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return !isWordRune(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.ReplaceAll(text, "-", " ")
	return strings.Join(strings.Fields(text), " ")
}

func normalizeAll(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, normalize(t))
	}
	return out
}
