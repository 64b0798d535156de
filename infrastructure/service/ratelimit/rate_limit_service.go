package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dcdesk/dcdesk/infrastructure/service/logger"
)

// RedisRateLimitService implements a fixed-window counter per key. The
// counter expires with the window, so stale keys clean themselves up.
type RedisRateLimitService struct {
	client *redis.Client
	log    logger.Logger
}

func NewRedisRateLimitService(redisURL string, log logger.Logger) (*RedisRateLimitService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisRateLimitService{client: redis.NewClient(opts), log: log}, nil
}

func (s *RedisRateLimitService) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := s.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	return count.Val() <= int64(limit), nil
}

func (s *RedisRateLimitService) Close() error {
	return s.client.Close()
}

// NoopRateLimitService always allows; used when rate limiting is disabled.
type NoopRateLimitService struct{}

func NewNoopRateLimitService() *NoopRateLimitService {
	return &NoopRateLimitService{}
}

func (s *NoopRateLimitService) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return true, nil
}
