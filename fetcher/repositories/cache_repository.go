package repositories

import (
	"context"
	"fmt"
	"skinmapping/pkg/models/skin"
	"skinmapping/pkg/redis"
)

// HashStore is the part of the Redis client used by the cache sink.
type HashStore interface {
	ReplaceHash(ctx context.Context, key string, values map[string]string) error
}

// SkinCacheRepository keeps the last mapping of every language in a Redis hash.
type SkinCacheRepository struct {
	store HashStore
}

// Create a skin cache repository.
func NewSkinCacheRepository(store HashStore) *SkinCacheRepository {
	return &SkinCacheRepository{store: store}
}

func (r *SkinCacheRepository) Name() string {
	return "redis"
}

// Publish replaces the hash of the language with the new mapping.
func (r *SkinCacheRepository) Publish(ctx context.Context, language string, mapping skin.Mapping) error {
	if err := r.store.ReplaceHash(ctx, redis.SkinKey(language), mapping); err != nil {
		return fmt.Errorf("failed to cache the %s mapping: %w", language, err)
	}
	return nil
}
