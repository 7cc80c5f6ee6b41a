package dto

// Where a response was read from.
const (
	SourceMemory   = "memory"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// Full mapping of a language.
type SkinMapping struct {
	Language string            `json:"language"`
	Source   string            `json:"source"`
	Skins    map[string]string `json:"skins"`
}

// A single skin name.
type SkinName struct {
	Language string `json:"language"`
	SkinID   string `json:"skinId"`
	Name     string `json:"name"`
	Source   string `json:"source"`
}

// Language code with the locale it's fetched with.
type Language struct {
	Code   string `json:"code"`
	Locale string `json:"locale"`
}
