package lang

import "strings"

var frenchMarkers = []string{
	"bonjour", "salut", "merci",
	"compte", "solde", "retrait", "dépôt", "depot", "déposer",
	"historique", "transactions", "voir mes", "introuvable",
}

const frenchAccents = "àâçéèêëîïôûùüÿñæœ"

// Detect is a cheap EN/FR heuristic: obvious French words or accented
// characters mean "fr", everything else is "en".
func Detect(text string) string {
	if text == "" {
		return "en"
	}

	lowered := strings.ToLower(text)

	for _, marker := range frenchMarkers {
		if strings.Contains(lowered, marker) {
			return "fr"
		}
	}

	if strings.ContainsAny(lowered, frenchAccents) {
		return "fr"
	}

	return "en"
}
