package handlers

import (
	"context"
	"errors"
	"net/http"
	"skinmapping/api/dto"
	"skinmapping/api/filters"
	skinservice "skinmapping/api/services/skin"

	"github.com/gin-gonic/gin"
)

// SkinReader is what the handler needs from the skin service.
type SkinReader interface {
	GetMapping(ctx context.Context, filters *filters.GetSkinMappingFilter) (*dto.SkinMapping, error)
	GetSkin(ctx context.Context, filters *filters.GetSkinFilter) (*dto.SkinName, error)
	GetLanguages() []*dto.Language
}

// SkinHandler is the handler for the skin endpoints.
type SkinHandler struct {
	SkinService SkinReader
}

type SkinHandlerDependencies struct {
	SkinService SkinReader
}

// NewSkinHandler creates a new instance of the skin handler.
func NewSkinHandler(deps *SkinHandlerDependencies) *SkinHandler {
	return &SkinHandler{
		SkinService: deps.SkinService,
	}
}

// GetSkinMapping returns every skin name of a language.
func (h *SkinHandler) GetSkinMapping(c *gin.Context) {
	var pp filters.SkinMappingURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := h.SkinService.GetMapping(c, filters.NewGetSkinMappingFilter(&pp))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": mapping})
}

// GetSkin returns the name of one skin in a language.
func (h *SkinHandler) GetSkin(c *gin.Context) {
	var pp filters.SkinURIParams
	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	skinName, err := h.SkinService.GetSkin(c, filters.NewGetSkinFilter(&pp))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": skinName})
}

// GetLanguages returns the language codes and the locale each one is built from.
func (h *SkinHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": h.SkinService.GetLanguages()})
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, skinservice.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
