package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asal3ti/charizard/internal/middleware"
)

// RedisService owns the shared Redis connection. It backs the async job
// queue and the exhausted-key marks; analysis results are never stored in it.
type RedisService struct {
	rdb *redis.Client
}

// NewRedisService connects to redisURL. If redisURL is empty or the connection
// fails, it returns a RedisService with a nil client: jobs are disabled and
// key marks stay process-local.
func NewRedisService(redisURL string) *RedisService {
	if redisURL == "" {
		middleware.Logger.Info().Msg("redis: no URL configured, jobs disabled")
		return &RedisService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: invalid URL, jobs disabled")
		return &RedisService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn().Err(err).Msg("redis: connection failed, jobs disabled")
		rdb.Close()
		return &RedisService{}
	}

	middleware.Logger.Info().Msg("redis: connected")
	return &RedisService{rdb: rdb}
}

// Client returns the underlying Redis client. May be nil.
func (r *RedisService) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.rdb
}

// Close shuts down the Redis connection.
func (r *RedisService) Close() error {
	if r == nil || r.rdb == nil {
		return nil
	}
	return r.rdb.Close()
}
