package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"my name is john doe", "John Doe", true},
		{"Um, call me Marie-Claire", "", false}, // comma survives the filler strip
		{"call me Marie-Claire", "Marie-claire", true},
		{"I'm JEAN PAUL NGUEMA", "Jean Paul Nguema", true},
		{"12345", "", false},
		{"", "", false},
		{"one two three four five six", "", false},
	}

	for _, tc := range cases {
		got, ok := Name(tc.in)
		assert.Equal(t, tc.ok, ok, "input: %q", tc.in)
		assert.Equal(t, tc.want, got, "input: %q", tc.in)
	}
}

func TestPhone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"my number is +237 65 123 456", "+23765123456", true},
		// the Cameroon pattern consumes 237 plus eight digits, the rest
		// is left behind
		{"237651234567", "23765123456", true},
		{"065 123 4567", "0651234567", true},
		{"call 12345", "", false},
		{"no digits here", "", false},
	}

	for _, tc := range cases {
		got, ok := Phone(tc.in)
		require.Equal(t, tc.ok, ok, "input: %q", tc.in)
		assert.Equal(t, tc.want, got, "input: %q", tc.in)
	}
}

func TestAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1000 XAF", 1000, true},
		{"withdraw 2500 fcfa please", 2500, true},
		{"FCFA 300", 300, true},
		{"$ 99.50", 99.50, true},
		{"1500", 1500, true},
		{"12,5 francs", 12.5, true},
		{"no amount", 0, false},
		{"0 xaf", 0, false},
	}

	for _, tc := range cases {
		got, ok := Amount(tc.in)
		assert.Equal(t, tc.ok, ok, "input: %q", tc.in)
		assert.InDelta(t, tc.want, got, 0.001, "input: %q", tc.in)
	}
}

func TestIsConfirmation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         string
		confirmed  bool
		recognized bool
	}{
		{"yes", true, true},
		{"Okay, go ahead", true, true},
		{"oui", true, true},
		{"no", false, true},
		{"cancel that", false, true},
		{"maybe tomorrow", false, false},
	}

	for _, tc := range cases {
		confirmed, recognized := IsConfirmation(tc.in)
		assert.Equal(t, tc.recognized, recognized, "input: %q", tc.in)
		assert.Equal(t, tc.confirmed, confirmed, "input: %q", tc.in)
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	got, ok := Email("reach me at John.Doe@Example.COM thanks")
	require.True(t, ok)
	assert.Equal(t, "john.doe@example.com", got)

	_, ok = Email("no email here")
	assert.False(t, ok)
}
