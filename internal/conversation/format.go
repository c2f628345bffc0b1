package conversation

import (
	"strconv"
	"strings"
	"time"
)

// formatAmount renders money the way the prompts speak it: whole units,
// no grouping.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// formatGrouped renders whole units with comma thousands separators for
// the dashboard listings.
func formatGrouped(v float64) string {
	return groupDigits(strconv.FormatFloat(v, 'f', 0, 64))
}

func formatGroupedInt(n int) string {
	return groupDigits(strconv.Itoa(n))
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

func transactionEmoji(txType string) string {
	switch strings.ToUpper(txType) {
	case "DEPOSIT":
		return "📥"
	case "WITHDRAWAL":
		return "📤"
	case "TRANSFER":
		return "🔄"
	case "TOP_UP":
		return "📲"
	default:
		return "💳"
	}
}

// maskPhone hides the middle of a phone number for prompts that echo it
// back to the caller.
func maskPhone(phone string) string {
	if len(phone) <= 6 {
		return phone
	}
	return phone[:3] + "****" + phone[len(phone)-3:]
}

func digitsOnly(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
