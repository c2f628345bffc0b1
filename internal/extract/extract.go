package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Extraction of structured values out of free-form (often transcribed)
// speech. Patterns are tried in order and the first hit wins.

var nameFillers = regexp.MustCompile(`(?i)\b(um|uh|like|so|well|okay|ok|my|name|is|i'm|i\s+am|call\s+me|it's|this\s+is|the\s+name\s+is)\b`)

var namePattern = regexp.MustCompile(`^[A-Za-z\s\-'.]+$`)

// Name strips lead-in fillers ("my name is ...") and validates that what
// remains looks like a 1-5 word latin name.
func Name(text string) (string, bool) {
	text = strings.TrimSpace(text)
	text = nameFillers.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")

	if text == "" || !namePattern.MatchString(text) {
		return "", false
	}

	words := strings.Fields(text)
	if len(words) < 1 || len(words) > 5 {
		return "", false
	}

	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " "), true
}

var phoneFillers = regexp.MustCompile(`(?i)\b(my|number|is|phone|cell|mobile|it's|its)\b`)

// Cameroon, South Africa, US/Canada, local and bare-digit formats, in
// that order.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\+?237[-.\s]?\d{2}[-.\s]?\d{3}[-.\s]?\d{3})`),
	regexp.MustCompile(`(\+?27[-.\s]?\d{2}[-.\s]?\d{3}[-.\s]?\d{4})`),
	regexp.MustCompile(`(\+?1?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`),
	regexp.MustCompile(`(0\d{2}[-.\s]?\d{3}[-.\s]?\d{4})`),
	regexp.MustCompile(`(\d{9,12})`),
}

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// Phone pulls a phone number out of text and normalizes it to digits with
// an optional leading +.
func Phone(text string) (string, bool) {
	text = phoneFillers.ReplaceAllString(text, "")

	for _, re := range phonePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		digits := nonPhoneChars.ReplaceAllString(m[1], "")
		if len(digits) >= 9 {
			return digits, true
		}
	}
	return "", false
}

// "1000 XAF", "XAF 1000", "$100", "100 dollars", then a bare number.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:xaf|fcfa|francs?|cfa)`),
	regexp.MustCompile(`(?:xaf|fcfa|cfa)\s*(\d+(?:[.,]\d+)?)`),
	regexp.MustCompile(`[R$€£]\s*(\d+(?:[.,]\d+)?)`),
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:dollars?|rand|usd)?`),
	regexp.MustCompile(`(\d+(?:[.,]\d+)?)`),
}

// Amount extracts a positive monetary amount. A decimal comma is accepted
// and treated as a decimal point.
func Amount(text string) (float64, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			continue
		}
		if v > 0 {
			return v, true
		}
	}
	return 0, false
}

var confirmWords = []string{
	"yes", "yeah", "yep", "yup", "correct", "confirm", "sure",
	"ok", "okay", "proceed", "oui", "right", "affirmative",
	"absolutely", "definitely", "of course", "go ahead",
}

var denyWords = []string{
	"no", "nope", "nah", "cancel", "stop", "wrong", "incorrect",
	"nevermind", "never mind", "non", "negative", "forget it",
	"not right", "that's wrong",
}

// IsConfirmation reports (confirmed, recognized). Confirmations are
// checked before denials, so "yes, cancel it" reads as a confirmation.
func IsConfirmation(text string) (bool, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	for _, w := range confirmWords {
		if strings.Contains(lowered, w) {
			return true, true
		}
	}
	for _, w := range denyWords {
		if strings.Contains(lowered, w) {
			return false, true
		}
	}
	return false, false
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

func Email(text string) (string, bool) {
	m := emailPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

func capitalize(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
