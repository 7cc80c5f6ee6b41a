package testutil

import (
	"context"
	"skinmapping/api/dto"
	"skinmapping/api/filters"
	"time"

	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mock Implementations used on the skin service tests.
// ============================================================================

type MockSkinRepository struct {
	mock.Mock
}

func (m *MockSkinRepository) GetMapping(ctx context.Context, language string) (map[string]string, error) {
	args := m.Called(ctx, language)
	mapping, _ := args.Get(0).(map[string]string)
	return mapping, args.Error(1)
}

func (m *MockSkinRepository) GetSkinName(ctx context.Context, language string, skinID string) (string, error) {
	args := m.Called(ctx, language, skinID)
	return args.String(0), args.Error(1)
}

type MockSkinRedisClient struct {
	mock.Mock
}

func (m *MockSkinRedisClient) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	args := m.Called(ctx, key)
	mapping, _ := args.Get(0).(map[string]string)
	return mapping, args.Error(1)
}

func (m *MockSkinRedisClient) HGet(ctx context.Context, key string, field string) (string, error) {
	args := m.Called(ctx, key, field)
	return args.String(0), args.Error(1)
}

type MockMemCache[T any] struct {
	mock.Mock
}

func (m *MockMemCache[T]) Get(key string) (T, bool) {
	args := m.Called(key)
	value, _ := args.Get(0).(T)
	return value, args.Bool(1)
}

func (m *MockMemCache[T]) Set(key string, value T, ttl time.Duration) {
	m.Called(key, value, ttl)
}

// ============================================================================
// Mock Implementations used on the handler tests.
// ============================================================================

type MockSkinService struct {
	mock.Mock
}

func (m *MockSkinService) GetMapping(ctx context.Context, filters *filters.GetSkinMappingFilter) (*dto.SkinMapping, error) {
	args := m.Called(ctx, filters)
	result, _ := args.Get(0).(*dto.SkinMapping)
	return result, args.Error(1)
}

func (m *MockSkinService) GetSkin(ctx context.Context, filters *filters.GetSkinFilter) (*dto.SkinName, error) {
	args := m.Called(ctx, filters)
	result, _ := args.Get(0).(*dto.SkinName)
	return result, args.Error(1)
}

func (m *MockSkinService) GetLanguages() []*dto.Language {
	args := m.Called()
	result, _ := args.Get(0).([]*dto.Language)
	return result
}
