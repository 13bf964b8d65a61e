package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "briefing:cache:"

// Redis shares the session cache through a Redis instance. Entries are JSON
// strings stored without expiry.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// NewRedis connects using a URL such as redis://:pass@host:6379/0.
func NewRedis(ctx context.Context, redisURL, prefix string) (*Redis, error) {
	if prefix == "" {
		prefix = defaultPrefix
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{rdb: rdb, prefix: prefix}, nil
}

func (r *Redis) key(k string) string { return r.prefix + k }

func (r *Redis) Get(ctx context.Context, key string) (*Entry, bool, error) {
	if key == NoKey {
		return nil, false, nil
	}

	raw, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cache entry: %w", err)
	}

	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	return &e, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, e *Entry) error {
	if key == NoKey || e == nil {
		return nil
	}

	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("set cache entry: %w", err)
	}
	return nil
}

func (r *Redis) Close() error { return r.rdb.Close() }
