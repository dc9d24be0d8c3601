package database

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// ConnectRedis returns a client for redisURL, or nil when redisURL is empty or the
// server does not answer a ping. Callers treat a nil client as "no live feed".
func ConnectRedis(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Info("REDIS_URL not set, activity feed disabled")
		return nil
	}

	client, err := newRedisClient(redisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, activity feed disabled", "err", err)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, activity feed disabled", "err", err)
		_ = client.Close()
		return nil
	}

	log.Info("connected to redis", "addr", client.Options().Addr)
	return client
}

func newRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}
