package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/bafoka-network/voice-assistant/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		CompanyName:      "BAFOKA",
		Currency:         "XAF",
		WithdrawalMin:    500,
		WithdrawalMax:    500000,
		TopupMin:         500,
		TopupMax:         2000000,
		MaxResponseWords: 50,
		BackendBaseURL:   "https://sandbox.bafoka.network",
	}
}

func TestFlowLookupFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	svc := NewService(testConfig(), nil)

	fr := svc.Flow("withdrawal", "start", "fr")
	assert.Contains(t, fr, "retrait")
	assert.Contains(t, fr, "500 XAF")

	// unsupported language falls back to English
	de := svc.Flow("withdrawal", "start", "de")
	assert.Contains(t, de, "withdrawal")

	assert.Equal(t, "", svc.Flow("withdrawal", "no_such_key", "en"))
}

func TestUpdateOverridesCatalog(t *testing.T) {
	t.Parallel()

	svc := NewService(testConfig(), nil)

	_, err := svc.Update(context.Background(), "general", "goodbye_en", "Bye for now!")
	require.NoError(t, err)

	assert.Equal(t, "Bye for now!", svc.General("goodbye", "en"))
	// the untouched language keeps the built-in text
	assert.Equal(t, "Merci d'utiliser notre service. Bonne journée !", svc.General("goodbye", "fr"))
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := Render("Hello {name}, your balance is {balance} {currency}.", map[string]string{
		"name":     "Marie",
		"balance":  "12000",
		"currency": "XAF",
	})
	assert.Equal(t, "Hello Marie, your balance is 12000 XAF.", out)

	// unknown placeholders survive so broken overrides are visible
	assert.Equal(t, "Hi {who}", Render("Hi {who}", map[string]string{"name": "x"}))
	assert.Equal(t, "plain", Render("plain", nil))
}

func TestCatalogHasBothLanguages(t *testing.T) {
	t.Parallel()

	catalog := defaultCatalog(testConfig())
	for flow, keys := range catalog {
		for key := range keys {
			require.True(t,
				strings.HasSuffix(key, "_en") || strings.HasSuffix(key, "_fr"),
				"%s/%s has no language suffix", flow, key)
			if strings.HasSuffix(key, "_en") {
				sibling := strings.TrimSuffix(key, "_en") + "_fr"
				assert.Contains(t, keys, sibling, "%s/%s is missing its French text", flow, key)
			}
		}
	}
}

func TestFindGroupement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		wantID int
		ok     bool
	}{
		{"1", 1, true},
		{"number 2 please", 2, true},
		{"bameka", 3, true},
		{"I am from Batoufam", 1, true},
		{"FONDJOMEKWET", 2, true},
		{"", 0, false},
		{"somewhere else", 0, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			g, ok := FindGroupement(tc.input)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.wantID, g.ID)
			}
		})
	}
}
