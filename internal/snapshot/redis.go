package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore persists snapshots in Redis for multi-instance deployments
// where page loads may land on a different replica than the submit did.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStore connects to addr; ttl <= 0 uses DefaultTTL.
func NewRedisStore(addr string, ttl time.Duration, logger *zap.Logger) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisStore) Save(ctx context.Context, key, page string, snap PageSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(key, page), payload, s.ttl).Err()
}

func (s *RedisStore) Restore(ctx context.Context, key, page string) (PageSnapshot, bool) {
	payload, err := s.rdb.Get(ctx, redisKey(key, page)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("snapshot restore failed", zap.Error(err))
		}
		return PageSnapshot{}, false
	}
	var snap PageSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil || !snap.valid() {
		s.Clear(ctx, key, page)
		return PageSnapshot{}, false
	}
	return snap, true
}

func (s *RedisStore) Clear(ctx context.Context, key, page string) {
	if err := s.rdb.Del(ctx, redisKey(key, page)).Err(); err != nil {
		s.logger.Debug("snapshot clear failed", zap.Error(err))
	}
}

// Ping verifies connectivity, for startup checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func redisKey(key, page string) string {
	return "snapshot:" + key + ":" + page
}
