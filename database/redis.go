package database

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type RedisConfig struct {
	URL          string
	PoolSize     int
	DialTimeout  time.Duration
	MinIdleConns int
	ReadTimeout  time.Duration
	MaxRetries   int
}

// DefaultRedisConfig fills the pool settings used for the lock client.
func DefaultRedisConfig(url string, poolSize int) RedisConfig {
	return RedisConfig{
		URL:          url,
		PoolSize:     poolSize,
		DialTimeout:  5 * time.Second,
		MinIdleConns: 2,
		ReadTimeout:  3 * time.Second,
		MaxRetries:   3,
	}
}

// NewRedisClient creates a Redis client with the provided configuration
func NewRedisClient(ctx context.Context, config RedisConfig, log *zap.Logger) (*redis.Client, error) {
	opt, err := redis.ParseURL(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.PoolSize = config.PoolSize
	opt.MinIdleConns = config.MinIdleConns
	opt.DialTimeout = config.DialTimeout
	opt.ReadTimeout = config.ReadTimeout
	opt.MaxRetries = config.MaxRetries

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis server: %w", err)
	}

	log.Info("redis client initialized",
		zap.Int("pool_size", config.PoolSize),
		zap.Int("min_idle_conns", config.MinIdleConns),
		zap.Duration("dial_timeout", config.DialTimeout),
		zap.Int("max_retries", config.MaxRetries),
	)
	return client, nil
}
