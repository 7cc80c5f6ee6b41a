package routes

import (
	"net/http"
	"skinmapping/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	r.Engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.SkinHandler:
			r.registerSkinHandler(handler)
		}
	}
}

// Register the skin handler.
func (r *Router) registerSkinHandler(handler *handlers.SkinHandler) {
	skins := r.api.Group("/skins")
	{
		skins.GET("/:language", handler.GetSkinMapping)
		skins.GET("/:language/:skinId", handler.GetSkin)
	}
	r.api.GET("/languages", handler.GetLanguages)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
