package assets

import (
	"context"
	"fmt"
	"skinmapping/fetcher/requests"
	"slices"
	"strconv"
)

// ChampionLister returns the champion ids available for a locale.
// An empty list means nothing could be listed.
type ChampionLister interface {
	ListChampionIDs(ctx context.Context, locale string) []int
}

// DirectoryLister scrapes the CommunityDragon directory listing.
type DirectoryLister struct {
	fetcher requests.Fetcher
	baseURL string
}

// NewDirectoryLister creates a lister for the given base url.
func NewDirectoryLister(fetcher requests.Fetcher, baseURL string) *DirectoryLister {
	return &DirectoryLister{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// ListChampionIDs returns the sorted unique champion ids of the locale.
func (d *DirectoryLister) ListChampionIDs(ctx context.Context, locale string) []int {
	listing, ok := d.fetcher.FetchText(ctx, ChampionDirectoryURL(d.baseURL, locale))
	if !ok {
		return []int{}
	}
	return ParseChampionIDs(listing)
}

// ParseChampionIDs extracts the ids from the listing body.
// Values outside (0, 10000) are dropped, the result is sorted and unique.
func ParseChampionIDs(listing string) []int {
	ids := []int{}
	for _, match := range championFilePattern.FindAllStringSubmatch(listing, -1) {
		id, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if id <= 0 || id >= maxChampionID {
			continue
		}
		ids = append(ids, id)
	}

	slices.Sort(ids)
	return slices.Compact(ids)
}

// FetchChampion gets the champion json object for the locale.
func FetchChampion(ctx context.Context, fetcher requests.Fetcher, baseURL string, locale string, championID int) (map[string]any, bool) {
	data, ok := fetcher.FetchJSON(ctx, ChampionURL(baseURL, locale, championID))
	if !ok {
		return nil, false
	}

	champion, ok := data.(map[string]any)
	if !ok || len(champion) == 0 {
		return nil, false
	}
	return champion, true
}

// ChampionName returns the display name, "Champion_<id>" when missing.
func ChampionName(champion map[string]any, championID int) string {
	return getStringOrDefault(champion, "name", fmt.Sprintf("Champion_%d", championID))
}
