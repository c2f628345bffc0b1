package prompts

import (
	"context"
	"sync"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

type service struct {
	repo    Repo
	catalog map[string]map[string]string

	mu        sync.RWMutex
	overrides map[string]string
}

// NewService builds the catalog from cfg. repo may be nil, in which case
// only the built-in texts are served and Update fails silently upstream.
func NewService(cfg config.Config, repo Repo) Service {
	return &service{
		repo:      repo,
		catalog:   defaultCatalog(cfg),
		overrides: map[string]string{},
	}
}

func (s *service) Flow(flow, key, lang string) string {
	if lang == "" {
		lang = "en"
	}
	if text, ok := s.lookup(flow, key+"_"+lang); ok {
		return text
	}
	if text, ok := s.lookup(flow, key+"_en"); ok {
		return text
	}
	return ""
}

func (s *service) General(key, lang string) string {
	return s.Flow(FlowGeneral, key, lang)
}

func (s *service) lookup(flow, key string) (string, bool) {
	s.mu.RLock()
	text, ok := s.overrides[flow+"/"+key]
	s.mu.RUnlock()
	if ok {
		return text, true
	}
	if m, ok := s.catalog[flow]; ok {
		if text, ok := m[key]; ok {
			return text, true
		}
	}
	return "", false
}

func (s *service) ListAll(ctx context.Context) ([]*Prompt, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, flow, key, text string) (*Prompt, error) {
	if s.repo == nil {
		s.mu.Lock()
		s.overrides[flow+"/"+key] = text
		s.mu.Unlock()
		return &Prompt{Flow: flow, Key: key, Text: text}, nil
	}

	p, err := s.repo.Upsert(ctx, flow, key, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.overrides[p.Flow+"/"+p.Key] = p.Text
	s.mu.Unlock()

	return p, nil
}

// Reload replaces the override cache with the current database contents.
// Called once at startup.
func (s *service) Reload(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}

	next := make(map[string]string, len(items))
	for _, p := range items {
		next[p.Flow+"/"+p.Key] = p.Text
	}

	s.mu.Lock()
	s.overrides = next
	s.mu.Unlock()

	return nil
}
