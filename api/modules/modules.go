package modules

import (
	"skinmapping/api/cache"
	"skinmapping/api/handlers"
	skinservice "skinmapping/api/services/skin"
	"skinmapping/pkg/redis"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module containing the necessary handlers.
type Module struct {
	Router      *gin.Engine
	SkinHandler *handlers.SkinHandler
	memCache    *cache.MemCache[map[string]string]
}

// ModuleDependencies holds the optional backends, a nil backend is skipped.
type ModuleDependencies struct {
	DB    *gorm.DB
	Redis *redis.RedisClient
}

// Create a new module with all the necessary handlers initialized.
func NewModule(deps *ModuleDependencies) *Module {
	router := gin.Default()
	memCache := cache.NewMemCache[map[string]string](time.Minute)

	serviceDeps := &skinservice.SkinServiceDeps{
		DB:       deps.DB,
		MemCache: memCache,
	}
	// Avoid storing a typed nil in the interface.
	if deps.Redis != nil {
		serviceDeps.Redis = deps.Redis
	}

	skinHandler := handlers.NewSkinHandler(&handlers.SkinHandlerDependencies{
		SkinService: skinservice.NewSkinService(serviceDeps),
	})

	return &Module{
		Router:      router,
		SkinHandler: skinHandler,
		memCache:    memCache,
	}
}

// Close stops the memory cache worker.
func (m *Module) Close() {
	m.memCache.Close()
}
