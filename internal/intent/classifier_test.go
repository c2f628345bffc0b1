package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	cases := []struct {
		name       string
		text       string
		intent     ports.Intent
		confidence float64
	}{
		{
			name:       "empty input",
			text:       "   ",
			intent:     ports.IntentGeneralSupport,
			confidence: 0.0,
		},
		{
			name:       "create account phrase",
			text:       "I want to create an account",
			intent:     ports.IntentAccountCreation,
			confidence: 1.0,
		},
		{
			name:       "balance inquiry",
			text:       "check my balance",
			intent:     ports.IntentBalanceInquiry,
			confidence: 1.0,
		},
		{
			name:       "greeting gets short input boost",
			text:       "hello",
			intent:     ports.IntentGreeting,
			confidence: 0.8,
		},
		{
			name:       "french withdrawal",
			text:       "je veux retirer de l'argent",
			intent:     ports.IntentWithdrawal,
			confidence: 1.0,
		},
		{
			name:       "french password reset",
			text:       "j'ai oublié mon mot de passe",
			intent:     ports.IntentPasswordReset,
			confidence: 1.0,
		},
		{
			name:       "transfer with keyword and context only",
			text:       "transfer 5000 to my friend",
			intent:     ports.IntentTransfer,
			confidence: 0.7,
		},
		{
			name:       "french dashboard",
			text:       "voir le tableau de bord",
			intent:     ports.IntentDashboard,
			confidence: 1.0,
		},
		{
			name:       "goodbye",
			text:       "thank you, goodbye",
			intent:     ports.IntentGoodbye,
			confidence: 1.0,
		},
		{
			name:       "off topic blocks before scoring",
			text:       "tell me a joke",
			intent:     ports.IntentOffTopic,
			confidence: 0.9,
		},
		{
			name:       "weather is off topic",
			text:       "what's the weather like in Douala",
			intent:     ports.IntentOffTopic,
			confidence: 0.9,
		},
		{
			name:       "nothing matches falls back",
			text:       "blah blah random",
			intent:     ports.IntentGeneralSupport,
			confidence: 0.5,
		},
		{
			name:       "fillers and polite phrases are stripped before scoring",
			text:       "euh, je veux créer un compte svp",
			intent:     ports.IntentAccountCreation,
			confidence: 1.0,
		},
		{
			name:       "polite-only input falls back",
			text:       "merci beaucoup !",
			intent:     ports.IntentGeneralSupport,
			confidence: 0.5,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := c.Classify(tc.text)
			assert.Equal(t, tc.intent, got.Intent)
			assert.InDelta(t, tc.confidence, got.Confidence, 0.001)
		})
	}
}

// Single-token keywords must not fire inside longer words, otherwise
// "retire" would classify "retirement planning" as a withdrawal.
func TestHasWord(t *testing.T) {
	t.Parallel()

	assert.True(t, hasWord("je veux retirer maintenant", "retirer"))
	assert.True(t, hasWord("solde", "solde"))
	assert.True(t, hasWord("voir l'argent", "argent"))
	assert.False(t, hasWord("retirement planning", "retire"))
	assert.False(t, hasWord("goodbye", "bye"))
}

func TestClassifyIgnoresWordFragments(t *testing.T) {
	t.Parallel()

	c := NewClassifier()

	got := c.Classify("retirement planning")
	assert.Equal(t, ports.IntentGeneralSupport, got.Intent)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "top up my account", normalize("  Top-Up   my ACCOUNT "))
	assert.Equal(t, "dépôt", normalize("DÉPÔT"))
}
