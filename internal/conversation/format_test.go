package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{1000, "1,000"},
		{12500, "12,500"},
		{1234567, "1,234,567"},
		{-9500, "-9,500"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, formatGrouped(tc.in), "formatGrouped(%v)", tc.in)
	}
}

func TestMaskPhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "690****456", maskPhone("690123456"))
	assert.Equal(t, "+23****456", maskPhone("+237690123456"))
	assert.Equal(t, "12345", maskPhone("12345"))
	assert.Equal(t, "", maskPhone(""))
}

func TestTransactionEmoji(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "📥", transactionEmoji("DEPOSIT"))
	assert.Equal(t, "📤", transactionEmoji("withdrawal"))
	assert.Equal(t, "🔄", transactionEmoji("TRANSFER"))
	assert.Equal(t, "📲", transactionEmoji("TOP_UP"))
	assert.Equal(t, "💳", transactionEmoji("SOMETHING_ELSE"))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "07/03/2025 14:05", formatDate(ts))
}

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "690111222", digitsOnly("690 111 222"))
	assert.Equal(t, "237690123456", digitsOnly("+237-690-123-456"))
	assert.Equal(t, "", digitsOnly("no digits here"))
}

func TestParseTransferAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"10000", 10000, true},
		{"10 000", 10000, true},
		{"10,000 XAF", 10000, true},
		{"10.000 fcfa", 10000, true},
		{"send 2500 francs", 2500, true},
		{"nothing", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseTransferAmount(tc.in)
		assert.Equal(t, tc.wantOK, ok, "parseTransferAmount(%q)", tc.in)
		assert.Equal(t, tc.want, got, "parseTransferAmount(%q)", tc.in)
	}
}
