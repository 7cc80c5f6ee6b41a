package skinservice

import (
	"context"
	"errors"
	"skinmapping/api/dto"
	"skinmapping/api/filters"
	skinrepo "skinmapping/api/repositories/skin"
	"skinmapping/pkg/models/skin"
	"skinmapping/pkg/redis"
	"sort"
	"time"

	"gorm.io/gorm"
)

const (
	SkinMemoryCacheDuration = 5 * time.Minute
	redisTimeout            = 200 * time.Millisecond
)

// ErrNotFound is returned when no source knows the language or the skin.
var ErrNotFound = errors.New("not found")

type SkinRedisClient interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGet(ctx context.Context, key string, field string) (string, error)
}

type SkinMemCache interface {
	Get(key string) (map[string]string, bool)
	Set(key string, value map[string]string, ttl time.Duration)
}

// SkinService reads the mappings from memory, then Redis, then Postgres.
// Redis and Postgres are optional.
type SkinService struct {
	memCache       SkinMemCache
	redis          SkinRedisClient
	SkinRepository skinrepo.SkinRepository
}

// SkinServiceDeps is the dependency list for the skin service.
type SkinServiceDeps struct {
	DB       *gorm.DB
	MemCache SkinMemCache
	Redis    SkinRedisClient
}

// NewSkinService creates a skin service.
func NewSkinService(deps *SkinServiceDeps) *SkinService {
	service := &SkinService{
		memCache: deps.MemCache,
		redis:    deps.Redis,
	}
	if deps.DB != nil {
		service.SkinRepository = skinrepo.NewSkinRepository(deps.DB)
	}
	return service
}

// GetMapping returns the full mapping of a language.
func (s *SkinService) GetMapping(ctx context.Context, filters *filters.GetSkinMappingFilter) (*dto.SkinMapping, error) {
	language := filters.Language

	if mapping, found := s.memCache.Get(language); found {
		return &dto.SkinMapping{Language: language, Source: dto.SourceMemory, Skins: mapping}, nil
	}

	if mapping := s.getFromRedis(ctx, language); mapping != nil {
		s.memCache.Set(language, mapping, SkinMemoryCacheDuration)
		return &dto.SkinMapping{Language: language, Source: dto.SourceRedis, Skins: mapping}, nil
	}

	if s.SkinRepository == nil {
		return nil, ErrNotFound
	}

	mapping, err := s.SkinRepository.GetMapping(ctx, language)
	if errors.Is(err, skinrepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.memCache.Set(language, mapping, SkinMemoryCacheDuration)
	return &dto.SkinMapping{Language: language, Source: dto.SourcePostgres, Skins: mapping}, nil
}

// GetSkin returns the localized name of one skin.
func (s *SkinService) GetSkin(ctx context.Context, filters *filters.GetSkinFilter) (*dto.SkinName, error) {
	result := &dto.SkinName{Language: filters.Language, SkinID: filters.SkinID}

	if mapping, found := s.memCache.Get(filters.Language); found {
		name, ok := mapping[filters.SkinID]
		if !ok {
			return nil, ErrNotFound
		}
		result.Name, result.Source = name, dto.SourceMemory
		return result, nil
	}

	if name := s.getNameFromRedis(ctx, filters.Language, filters.SkinID); name != "" {
		result.Name, result.Source = name, dto.SourceRedis
		return result, nil
	}

	if s.SkinRepository == nil {
		return nil, ErrNotFound
	}

	name, err := s.SkinRepository.GetSkinName(ctx, filters.Language, filters.SkinID)
	if errors.Is(err, skinrepo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	result.Name, result.Source = name, dto.SourcePostgres
	return result, nil
}

// GetLanguages lists the known language codes, sorted.
func (s *SkinService) GetLanguages() []*dto.Language {
	languages := make([]*dto.Language, 0, len(skin.LanguageLocales))
	for code, locale := range skin.LanguageLocales {
		languages = append(languages, &dto.Language{Code: code, Locale: locale})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Code < languages[j].Code
	})
	return languages
}

// getFromRedis returns nil when Redis is missing, slow or has no hash for the language.
func (s *SkinService) getFromRedis(ctx context.Context, language string) map[string]string {
	if s.redis == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	mapping, err := s.redis.HGetAll(ctx, redis.SkinKey(language))
	if err != nil || len(mapping) == 0 {
		return nil
	}
	return mapping
}

func (s *SkinService) getNameFromRedis(ctx context.Context, language string, skinID string) string {
	if s.redis == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	// A missing field is redis.Nil, treated like any other miss.
	name, err := s.redis.HGet(ctx, redis.SkinKey(language), skinID)
	if err != nil {
		return ""
	}
	return name
}
