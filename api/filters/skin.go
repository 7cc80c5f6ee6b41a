package filters

import "strings"

// URI params for the mapping endpoint.
type SkinMappingURIParams struct {
	Language string `uri:"language" binding:"required,alpha,min=2,max=3"`
}

// URI params for the single skin endpoint.
type SkinURIParams struct {
	Language string `uri:"language" binding:"required,alpha,min=2,max=3"`
	SkinID   string `uri:"skinId" binding:"required,numeric"`
}

type GetSkinMappingFilter struct {
	Language string
}

type GetSkinFilter struct {
	Language string
	SkinID   string
}

// Language codes are stored lowercase.
func NewGetSkinMappingFilter(pp *SkinMappingURIParams) *GetSkinMappingFilter {
	return &GetSkinMappingFilter{
		Language: strings.ToLower(pp.Language),
	}
}

func NewGetSkinFilter(pp *SkinURIParams) *GetSkinFilter {
	return &GetSkinFilter{
		Language: strings.ToLower(pp.Language),
		SkinID:   pp.SkinID,
	}
}
