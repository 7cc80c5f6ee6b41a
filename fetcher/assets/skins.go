package assets

import (
	"skinmapping/pkg/models/skin"
	"strings"
)

// ParseChampionSkins flattens the skins and chromas of a champion.
// Order is skin then its chromas. Prestige skins never have their chromas listed.
func ParseChampionSkins(champion map[string]any) []skin.Record {
	records := []skin.Record{}

	for _, skinData := range getObjectList(champion, "skins") {
		skinName := getStringOrDefault(skinData, "name", unknownSkinName)
		records = append(records, skin.Record{
			ID:   getIDString(skinData, "id"),
			Name: skinName,
		})

		if IsPrestige(skinName) {
			continue
		}

		for _, chroma := range getObjectList(skinData, "chromas") {
			records = append(records, skin.Record{
				ID:   getIDString(chroma, "id"),
				Name: getStringOrDefault(chroma, "name", unknownChromaName),
			})
		}
	}

	return records
}

// IsPrestige reports whether the skin name marks a prestige skin.
func IsPrestige(name string) bool {
	return strings.Contains(strings.ToLower(name), prestigeMarker)
}
