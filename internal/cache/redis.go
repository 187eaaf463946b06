package cache

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewClient connects to Redis using REDIS_ADDR / REDIS_PASSWORD. Returns nil
// when REDIS_ADDR is unset; callers treat a nil client as "caching and rate
// limiting disabled".
func NewClient(logger *zap.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Warn("REDIS_ADDR not set; rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable; rate limiting disabled", zap.Error(err))
		return nil
	}
	logger.Info("redis connected", zap.String("addr", addr))
	return client
}
