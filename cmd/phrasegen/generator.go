package main

import (
	"fmt"
	"math/rand"
	"strings"
)

// sample is one generated training phrase. BIO tags and audio fields are
// filled only when the matching flags are set.
type sample struct {
	Text      string         `json:"text"`
	Intent    string         `json:"intent"`
	Entities  map[string]any `json:"entities"`
	BIO       [][2]string    `json:"bio,omitempty"`
	AudioPath string         `json:"audio_path,omitempty"`
	AudioID   string         `json:"audio_id,omitempty"`
}

// Templates per intent. Every template resolves to a phrase the keyword
// classifier scores at 0.4 or better for the labeled intent, so the
// generated set is usable as an evaluation corpus, not just TTS fodder.
var frTemplates = map[string][]string{
	"transfer": {
		"je veux transférer {montant} {devise} à {destinataire}",
		"envoyer de l'argent à {destinataire}",
		"faire un virement de {montant} {devise} à {destinataire}",
		"je veux envoyer {montant} {devise} à {destinataire}",
		"transfert de {montant} {devise} vers {destinataire}",
		"payer {montant} {devise} à {destinataire}",
	},
	"balance_inquiry": {
		"quel est mon solde",
		"je veux mon solde",
		"combien j'ai sur mon compte",
		"montre mon solde",
		"solde du compte",
		"combien il me reste",
	},
	"account_creation": {
		"je veux créer un compte",
		"je veux ouvrir un compte",
		"créer un compte",
		"je veux m'inscrire",
		"inscris moi",
		"aide moi à créer un compte",
	},
	"withdrawal": {
		"je veux retirer {montant} {devise}",
		"faire un retrait",
		"retirer de l'argent",
		"je veux faire un retrait",
		"faire un retrait de {montant} {devise}",
	},
	"topup": {
		"je veux déposer {montant} {devise}",
		"recharger mon compte",
		"faire un dépôt de {montant} {devise}",
		"ajouter de l'argent sur mon compte",
		"créditer mon compte de {montant} {devise}",
	},
	"transaction_history": {
		"voir mes transactions",
		"historique des transactions",
		"montre l'historique",
		"mes opérations récentes",
		"relevé de compte",
		"liste des transactions",
	},
}

var enTemplates = map[string][]string{
	"transfer": {
		"i want to transfer {montant} {devise} to {destinataire}",
		"send money to {destinataire}",
		"transfer {montant} {devise} to {destinataire}",
		"i want to send money to {destinataire}",
		"pay {destinataire} {montant} {devise}",
	},
	"balance_inquiry": {
		"what is my balance",
		"check my balance",
		"how much do i have",
		"show balance",
		"my account balance",
	},
	"account_creation": {
		"i want to create an account",
		"open an account",
		"i want to register",
		"create an account",
		"sign up",
	},
	"withdrawal": {
		"i want to withdraw {montant} {devise}",
		"withdraw money",
		"cash out",
		"make a withdrawal",
		"take out {montant} {devise}",
	},
	"topup": {
		"i want to deposit {montant} {devise}",
		"top up my account",
		"add money to my wallet",
		"make a deposit",
		"recharge account",
	},
	"transaction_history": {
		"show my transactions",
		"transaction history",
		"recent activity",
		"list transactions",
		"my history",
	},
}

var amounts = []int{500, 1000, 2000, 2500, 5000, 10000, 15000, 25000, 50000, 100000}

var currencies = []string{"bafoka", "fcfa"}

var beneficiaries = []string{
	"Paul", "Marie", "Jean", "Sophie", "Aline", "Blaise",
	"Solange", "Thierry", "Clarisse", "Armand", "Edith", "Brigitte",
	"Hervé", "Mireille", "Antoine", "Camille",
}

var fillersByLang = map[string][]string{
	"fr": {"euh", "alors", "donc", "ben", "voilà"},
	"en": {"uh", "um", "so", "well"},
}

// English thanks are deliberately absent: "thank you" reads as a goodbye
// to the classifier, and the transcript cleaner only strips the French
// politeness markers.
var politenessByLang = map[string][]string{
	"fr": {"s'il te plaît", "s'il vous plaît", "merci"},
	"en": {"please"},
}

type generator struct {
	rng       *rand.Rand
	templates map[string][]string
	fillers   []string
	polite    []string
}

func newGenerator(seed int64, lang string) (*generator, error) {
	var templates map[string][]string
	switch lang {
	case "fr":
		templates = frTemplates
	case "en":
		templates = enTemplates
	default:
		return nil, fmt.Errorf("unsupported language %q (want fr or en)", lang)
	}

	return &generator{
		rng:       rand.New(rand.NewSource(seed)),
		templates: templates,
		fillers:   fillersByLang[lang],
		polite:    politenessByLang[lang],
	}, nil
}

func (g *generator) intents() []string {
	// Fixed order keeps output deterministic for a given seed.
	return []string{
		"account_creation", "balance_inquiry", "topup",
		"transaction_history", "transfer", "withdrawal",
	}
}

// samples produces perIntent phrases for each requested intent. only
// narrows generation to a single intent; empty means all of them.
func (g *generator) samples(perIntent int, only string) ([]sample, error) {
	intents := g.intents()
	if only != "" {
		if _, ok := g.templates[only]; !ok {
			return nil, fmt.Errorf("unknown intent %q", only)
		}
		intents = []string{only}
	}

	var out []sample
	for _, intent := range intents {
		templates := g.templates[intent]
		for i := 0; i < perIntent; i++ {
			out = append(out, g.one(intent, templates[g.rng.Intn(len(templates))]))
		}
	}
	return out, nil
}

func (g *generator) one(intent, template string) sample {
	text := template
	entities := map[string]any{}

	if strings.Contains(template, "{montant}") {
		amount := amounts[g.rng.Intn(len(amounts))]
		entities["montant"] = amount
		text = strings.ReplaceAll(text, "{montant}", fmt.Sprintf("%d", amount))
	}
	if strings.Contains(template, "{devise}") {
		currency := currencies[g.rng.Intn(len(currencies))]
		entities["devise"] = currency
		text = strings.ReplaceAll(text, "{devise}", currency)
	}
	if strings.Contains(template, "{destinataire}") {
		beneficiary := beneficiaries[g.rng.Intn(len(beneficiaries))]
		entities["destinataire"] = beneficiary
		text = strings.ReplaceAll(text, "{destinataire}", beneficiary)
	}

	if g.rng.Float64() < 0.3 {
		text = g.fillers[g.rng.Intn(len(g.fillers))] + " " + text
	}
	if g.rng.Float64() < 0.2 {
		text = text + " " + g.polite[g.rng.Intn(len(g.polite))]
	}

	return sample{Text: text, Intent: intent, Entities: entities}
}

// bioTags labels each word of text with B-/I- entity tags for NER
// training, O for everything else. Entity kinds are checked in a fixed
// order so the output is stable across runs.
var entityOrder = []string{"montant", "devise", "destinataire"}

func bioTags(text string, entities map[string]any) [][2]string {
	words := strings.Fields(text)
	tags := make([][2]string, 0, len(words))

	for _, word := range words {
		tag := "O"
		wordLower := strings.ToLower(word)

		for _, entityType := range entityOrder {
			entityValue, ok := entities[entityType]
			if !ok {
				continue
			}
			entityStr := strings.ToLower(fmt.Sprintf("%v", entityValue))
			if !strings.Contains(wordLower, entityStr) && !strings.Contains(entityStr, wordLower) {
				continue
			}

			entityWords := strings.Fields(entityStr)
			switch {
			case len(entityWords) > 1 && wordLower == entityWords[0]:
				tag = "B-" + strings.ToUpper(entityType)
			case len(entityWords) > 1:
				tag = "I-" + strings.ToUpper(entityType)
			default:
				tag = "B-" + strings.ToUpper(entityType)
			}
			break
		}

		tags = append(tags, [2]string{word, tag})
	}
	return tags
}
