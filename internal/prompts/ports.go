package prompts

import "context"

// Repo persists operator overrides for built-in catalog texts.
type Repo interface {
	ListAll(ctx context.Context) ([]*Prompt, error)
	Upsert(ctx context.Context, flow, key, text string) (*Prompt, error)
}

// Service resolves response texts. Lookup order is override first, then
// the built-in catalog; "<key>_<lang>" falls back to "<key>_en".
type Service interface {
	Flow(flow, key, lang string) string
	General(key, lang string) string
	ListAll(ctx context.Context) ([]*Prompt, error)
	Update(ctx context.Context, flow, key, text string) (*Prompt, error)
	Reload(ctx context.Context) error
}

type Prompt struct {
	Flow string `json:"flow"`
	Key  string `json:"key"`
	Text string `json:"text"`
}
