package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rachitsingh/baatein/backend/internal/model/chat"
)

// RedisTranscriptStore keeps transcripts as Redis lists with a TTL
// refreshed on every append. One list per (email, persona).
type RedisTranscriptStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTranscriptStore builds a Redis-backed transcript store.
func NewRedisTranscriptStore(addr, password string, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

// Ping verifies connectivity at startup.
func (s *RedisTranscriptStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// AppendTurns pushes messages onto the transcript list and refreshes
// its expiry.
func (s *RedisTranscriptStore) AppendTurns(ctx context.Context, email string, personaID int, msgs ...chat.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	values := make([]any, 0, len(msgs))
	for _, msg := range msgs {
		encoded, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encode message: %w", err)
		}
		values = append(values, encoded)
	}

	key := transcriptRedisKey(email, personaID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// LoadTranscript reads back the full list in append order.
func (s *RedisTranscriptStore) LoadTranscript(ctx context.Context, email string, personaID int) ([]chat.Message, error) {
	raw, err := s.client.LRange(ctx, transcriptRedisKey(email, personaID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	msgs := make([]chat.Message, 0, len(raw))
	for _, item := range raw {
		var msg chat.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func transcriptRedisKey(email string, personaID int) string {
	return fmt.Sprintf("transcript:%s:%d", email, personaID)
}
