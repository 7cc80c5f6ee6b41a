package redis

import (
	"context"
	"fmt"
	"skinmapping/pkg/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// SkinKey returns the hash key holding the mapping of a language.
func SkinKey(language string) string {
	return "cdragon:skins:" + language
}

// Type for the client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates the client and checks the server answers.
func NewClient(ctx context.Context, cfg config.RedisConfiguration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     10,
		MinIdleConns: 1,
		PoolTimeout:  30 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Host, err)
	}

	return &RedisClient{Client: client}, nil
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Wrapper to return the Result directly.
func (r *RedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return r.Client.HGetAll(ctx, key).Result()
}

// Wrapper to return the Result directly.
func (r *RedisClient) HGet(ctx context.Context, key string, field string) (string, error) {
	return r.Client.HGet(ctx, key, field).Result()
}

// ReplaceHash swaps the content of a hash in a single transaction.
// An empty map leaves no key behind.
func (r *RedisClient) ReplaceHash(ctx context.Context, key string, values map[string]string) error {
	fields := make(map[string]any, len(values))
	for field, value := range values {
		fields[field] = value
	}

	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(fields) > 0 {
			pipe.HSet(ctx, key, fields)
		}
		return nil
	})
	return err
}
