package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafoka-network/voice-assistant/internal/intent"
)

func TestSameSeedSameOutput(t *testing.T) {
	first, err := newGenerator(42, "fr")
	require.NoError(t, err)
	second, err := newGenerator(42, "fr")
	require.NoError(t, err)

	a, err := first.samples(20, "")
	require.NoError(t, err)
	b, err := second.samples(20, "")
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different samples (-first +second):\n%s", diff)
	}
}

func TestPlaceholdersAreFilled(t *testing.T) {
	gen, err := newGenerator(7, "fr")
	require.NoError(t, err)

	samples, err := gen.samples(30, "transfer")
	require.NoError(t, err)
	require.Len(t, samples, 30)

	for _, s := range samples {
		assert.NotContains(t, s.Text, "{", "unresolved placeholder in %q", s.Text)
		assert.Equal(t, "transfer", s.Intent)
		if beneficiary, ok := s.Entities["destinataire"]; ok {
			assert.Contains(t, s.Text, beneficiary.(string))
		}
	}
}

func TestSingleIntentFilter(t *testing.T) {
	gen, err := newGenerator(1, "en")
	require.NoError(t, err)

	samples, err := gen.samples(5, "topup")
	require.NoError(t, err)
	require.Len(t, samples, 5)
	for _, s := range samples {
		assert.Equal(t, "topup", s.Intent)
	}

	_, err = gen.samples(5, "bloquer_carte")
	assert.Error(t, err)
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := newGenerator(1, "de")
	assert.Error(t, err)
}

// Every generated phrase must classify back to its own label, fillers
// and politeness markers included. The generated set doubles as an
// evaluation corpus for the classifier, so drift here is a real bug.
func TestGeneratedPhrasesClassify(t *testing.T) {
	classifier := intent.NewClassifier()

	for _, lang := range []string{"fr", "en"} {
		t.Run(lang, func(t *testing.T) {
			gen, err := newGenerator(42, lang)
			require.NoError(t, err)

			samples, err := gen.samples(40, "")
			require.NoError(t, err)

			for _, s := range samples {
				got := classifier.Classify(s.Text)
				assert.Equal(t, s.Intent, string(got.Intent), "text %q", s.Text)
			}
		})
	}
}

func TestBIOTags(t *testing.T) {
	tags := bioTags("je veux transférer 5000 fcfa à Paul", map[string]any{
		"montant":      5000,
		"devise":       "fcfa",
		"destinataire": "Paul",
	})

	want := [][2]string{
		{"je", "O"},
		{"veux", "O"},
		{"transférer", "O"},
		{"5000", "B-MONTANT"},
		{"fcfa", "B-DEVISE"},
		{"à", "O"},
		{"Paul", "B-DESTINATAIRE"},
	}
	assert.Equal(t, want, tags)
}

func TestBIOTagsWithoutEntities(t *testing.T) {
	tags := bioTags("quel est mon solde", map[string]any{})
	for _, wt := range tags {
		assert.Equal(t, "O", wt[1])
	}
}
