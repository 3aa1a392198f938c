package sessionstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coopnet/meeting-insights/internal/models"
)

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(sessionID string) string { return "pipeline:session:" + sessionID }

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.PipelineSession, bool, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var sess models.PipelineSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		// corrupt document: treat as a miss by deleting
		_ = s.rdb.Del(ctx, key(sessionID)).Err()
		return nil, false, nil
	}
	return &sess, true, nil
}

// Put stores the whole typed record and refreshes the TTL, so a run in
// progress keeps its session alive.
func (s *RedisStore) Put(ctx context.Context, sess *models.PipelineSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key(sess.SessionID), b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID)).Err()
}
