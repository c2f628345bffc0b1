package storage

import (
	"context"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

const conversationKeyPrefix = "bafoka:conversation:"

// RedisStore persists conversation state with a TTL so abandoned
// conversations expire on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.ZapLogger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, log *logger.ZapLogger) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, log: log}
}

func (s *RedisStore) key(conversationID string) string {
	return conversationKeyPrefix + conversationID
}

// Get treats Redis failures as a missing conversation. The assistant
// restarts the dialog instead of failing the request.
func (s *RedisStore) Get(ctx context.Context, conversationID string) (*ports.ConversationState, error) {
	data, err := s.rdb.Get(ctx, s.key(conversationID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "failed to load conversation from redis",
			Service: "storage",
			Error:   err,
		})
		return nil, nil
	}

	var state ports.ConversationState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "corrupt conversation state in redis",
			Service: "storage",
			Error:   err,
		})
		return nil, nil
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state *ports.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, s.key(state.ConversationID), data, s.ttl).Err(); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "failed to save conversation to redis",
			Service: "storage",
			Error:   err,
		})
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	if err := s.rdb.Del(ctx, s.key(conversationID)).Err(); err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "failed to delete conversation from redis",
			Service: "storage",
			Error:   err,
		})
	}
	return nil
}
