package skin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Locale sentinel for the base en_US namespace.
const DefaultLocale = "default"

// Language code used for the default locale.
const DefaultLanguage = "en"

// A single skin or chroma entry.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Mapping of skin id to localized name for one language.
type Mapping map[string]string

// Merge the records into the mapping, later records overwrite earlier ones.
// Records with an empty id or name are ignored.
func (m Mapping) Merge(records []Record) {
	for _, record := range records {
		if record.ID == "" || record.Name == "" {
			continue
		}
		m[record.ID] = record.Name
	}
}

// Encode renders the mapping with two spaces of indentation.
// Non ASCII and HTML characters are written as they are.
func (m Mapping) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode the skin mapping: %w", err)
	}
	return buf.Bytes(), nil
}

// LanguageCode derives the two letter code from a locale.
// "default" maps to "en", anything else is cut at the first underscore.
func LanguageCode(locale string) string {
	if locale == DefaultLocale {
		return DefaultLanguage
	}
	code, _, _ := strings.Cut(locale, "_")
	return code
}

// EncodeLocale escapes the underscores the way CommunityDragon expects on its paths.
func EncodeLocale(locale string) string {
	return strings.ReplaceAll(locale, "_", "%5F")
}

// Primary locale for each language code.
// Regional variants (en_gb, es_mx, zh_tw...) are served by the locale listed here.
var LanguageLocales = map[string]string{
	"ar": "ar_ae",
	"cs": "cs_cz",
	"de": "de_de",
	"el": "el_gr",
	"en": DefaultLocale,
	"es": "es_es",
	"fr": "fr_fr",
	"hu": "hu_hu",
	"id": "id_id",
	"it": "it_it",
	"ja": "ja_jp",
	"ko": "ko_kr",
	"pl": "pl_pl",
	"pt": "pt_br",
	"ro": "ro_ro",
	"ru": "ru_ru",
	"th": "th_th",
	"tr": "tr_tr",
	"vi": "vi_vn",
	"zh": "zh_cn",
}
