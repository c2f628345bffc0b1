package storage

import (
	"context"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps conversation state in-process. Intended for
// development and tests; production deployments use the Redis store.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	items map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		now:   time.Now,
		items: map[string]memoryEntry{},
	}
}

func (s *MemoryStore) Get(_ context.Context, conversationID string) (*ports.ConversationState, error) {
	s.mu.RLock()
	entry, ok := s.items[conversationID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.items, conversationID)
		s.mu.Unlock()
		return nil, nil
	}

	var state ports.ConversationState
	if err := json.Unmarshal(entry.data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Save serializes the state so callers never share memory with the store.
func (s *MemoryStore) Save(_ context.Context, state *ports.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items[state.ConversationID] = memoryEntry{data: data, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, conversationID string) error {
	s.mu.Lock()
	delete(s.items, conversationID)
	s.mu.Unlock()
	return nil
}

// Sweep drops expired entries and reports how many were removed. Get
// already expires on read; this catches conversations nobody reads again.
func (s *MemoryStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}
