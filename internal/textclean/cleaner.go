package textclean

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// French hesitations and discourse markers that carry no meaning for
// intent matching.
var fillerWords = []string{
	"euh",
	"bah",
	"ben",
	"heu",
	"genre",
	"tu vois",
	"vous voyez",
	"en fait",
	"du coup",
	"voilà",
}

var politePhrases = []string{
	"s'il te plaît",
	"s'il vous plaît",
	"stp",
	"svp",
	"merci",
	"merci beaucoup",
}

// Cleaner strips speech-to-text noise before classification. It stays
// deterministic on purpose: no stemming, no semantics, just obvious noise.
type Cleaner struct {
	fillers []string
	polite  []string
}

func NewCleaner() *Cleaner {
	return &Cleaner{fillers: fillerWords, polite: politePhrases}
}

func (c *Cleaner) Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.ToLower(strings.TrimSpace(text))
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	for _, w := range c.fillers {
		cleaned = replaceWord(cleaned, w)
	}
	for _, w := range c.polite {
		cleaned = replaceWord(cleaned, w)
	}

	cleaned = strings.ReplaceAll(cleaned, "€", " euros ")
	cleaned = strings.Map(func(r rune) rune {
		if r == '!' || r == '?' {
			return ' '
		}
		return r
	}, cleaned)

	return strings.Join(strings.Fields(cleaned), " ")
}

// replaceWord blanks whole-word occurrences of w. Boundaries are checked
// on runes, not regexp \b, so accented words like "voilà" work.
func replaceWord(text, w string) string {
	var b strings.Builder
	start := 0
	for start <= len(text)-len(w) {
		idx := strings.Index(text[start:], w)
		if idx < 0 {
			break
		}
		idx += start
		end := idx + len(w)
		if boundaryBefore(text, idx) && boundaryAfter(text, end) {
			b.WriteString(text[start:idx])
			b.WriteByte(' ')
			start = end
			continue
		}
		b.WriteString(text[start : idx+1])
		start = idx + 1
	}
	b.WriteString(text[start:])
	return b.String()
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
