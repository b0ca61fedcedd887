package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps each slot under prefix+key. A zero ttl keeps slots forever.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (s *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		v  string
		ok bool
	)
	err := withTimeout(ctx, opTimeout, func(ctx context.Context) error {
		var err error
		v, err = s.client.Get(ctx, s.prefix+key).Result()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("redis get slot %s: %w", key, err)
	}
	return v, ok, nil
}

func (s *Redis) Set(ctx context.Context, key, value string) error {
	err := withTimeout(ctx, opTimeout, func(ctx context.Context) error {
		return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("redis set slot %s: %w", key, err)
	}
	return nil
}

func (s *Redis) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.client.Ping(ctx).Err()
	})
}

func (s *Redis) Close() error {
	return s.client.Close()
}
