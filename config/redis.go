package config

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the session-store client. Accepts a bare host:port
// or a redis:// / rediss:// URL.
func NewRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	val := cfg.RedisAddr
	if val == "" {
		return nil, errors.New("REDIS_ADDR environment variable is not set")
	}

	var client *redis.Client
	if strings.HasPrefix(val, "redis://") || strings.HasPrefix(val, "rediss://") {
		opt, err := redis.ParseURL(val)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: val})
	}

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
