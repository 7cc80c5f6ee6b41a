package assets

import (
	"fmt"
	"regexp"
	"skinmapping/pkg/models/skin"
)

// Consts used across the package.
const (
	// Ids at or above this are test champions (Doom Bots and friends).
	maxChampionID     = 10000
	unknownSkinName   = "Unknown"
	unknownChromaName = "Unknown Chroma"
	prestigeMarker    = "prestige"
)

// Matches the file names on the directory listing, e.g. `href="266.json"` or `>266.json<`.
var championFilePattern = regexp.MustCompile(`[">](\d+)\.json[<"]`)

// ChampionDirectoryURL is the listing of every champion file for a locale.
func ChampionDirectoryURL(baseURL string, locale string) string {
	return fmt.Sprintf("%s/%s/v1/champions/", baseURL, skin.EncodeLocale(locale))
}

// ChampionURL is the full data of a single champion for a locale.
func ChampionURL(baseURL string, locale string, championID int) string {
	return fmt.Sprintf("%s/%s/v1/champions/%d.json", baseURL, skin.EncodeLocale(locale), championID)
}
