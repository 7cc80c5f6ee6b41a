package assets

import (
	"context"
	"skinmapping/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://cdragon.test/global"

func TestChampionURLs(t *testing.T) {
	assert.Equal(t, baseURL+"/ja%5Fjp/v1/champions/", ChampionDirectoryURL(baseURL, "ja_jp"))
	assert.Equal(t, baseURL+"/default/v1/champions/", ChampionDirectoryURL(baseURL, "default"))
	assert.Equal(t, baseURL+"/ko%5Fkr/v1/champions/103.json", ChampionURL(baseURL, "ko_kr", 103))
}

func TestParseChampionIDs(t *testing.T) {
	tests := []struct {
		name     string
		listing  string
		expected []int
	}{
		{
			name: "html listing",
			listing: `<tr><td><a href="266.json" title="266.json">266.json</a></td></tr>
<tr><td><a href="1.json" title="1.json">1.json</a></td></tr>
<tr><td><a href="103.json" title="103.json">103.json</a></td></tr>`,
			expected: []int{1, 103, 266},
		},
		{
			name:     "filters out of range and negative ids",
			listing:  `"1.json" "2.json" "13000.json" "-1.json" "0.json" "10000.json" "9999.json"`,
			expected: []int{1, 2, 9999},
		},
		{
			name:     "unbounded names are ignored",
			listing:  `1.json summary.json <a>champion 5.json</a>`,
			expected: []int{},
		},
		{
			name:     "duplicates removed",
			listing:  `>7.json< "7.json" >3.json"`,
			expected: []int{3, 7},
		},
		{
			name:     "overflowing ids skipped",
			listing:  `"99999999999999999999999.json" "4.json"`,
			expected: []int{4},
		},
		{
			name:     "empty",
			listing:  "",
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseChampionIDs(tt.listing))
		})
	}
}

func TestDirectoryListerListChampionIDs(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.Text[ChampionDirectoryURL(baseURL, "ja_jp")] = `"2.json" "1.json" "13000.json" "-1.json" "1.json"`
	lister := NewDirectoryLister(fetcher, baseURL)

	ids := lister.ListChampionIDs(context.Background(), "ja_jp")
	assert.Equal(t, []int{1, 2}, ids)
	assert.Equal(t, 1, fetcher.CallCount(baseURL+"/ja%5Fjp/v1/champions/"))
}

func TestDirectoryListerFetchFailure(t *testing.T) {
	lister := NewDirectoryLister(testutil.NewFakeFetcher(), baseURL)

	ids := lister.ListChampionIDs(context.Background(), "ko_kr")
	require.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestFetchChampion(t *testing.T) {
	fetcher := testutil.NewFakeFetcher()
	fetcher.SetJSONString(ChampionURL(baseURL, "default", 1), `{"name": "Annie", "skins": []}`)
	fetcher.SetJSONString(ChampionURL(baseURL, "default", 2), `[1, 2]`)
	fetcher.SetJSONString(ChampionURL(baseURL, "default", 3), `{}`)

	champion, ok := FetchChampion(context.Background(), fetcher, baseURL, "default", 1)
	require.True(t, ok)
	assert.Equal(t, "Annie", ChampionName(champion, 1))

	_, ok = FetchChampion(context.Background(), fetcher, baseURL, "default", 2)
	assert.False(t, ok)

	_, ok = FetchChampion(context.Background(), fetcher, baseURL, "default", 3)
	assert.False(t, ok)

	_, ok = FetchChampion(context.Background(), fetcher, baseURL, "default", 4)
	assert.False(t, ok)
}

func TestChampionNameFallback(t *testing.T) {
	assert.Equal(t, "Champion_99", ChampionName(map[string]any{"skins": []any{}}, 99))
	assert.Equal(t, "Champion_99", ChampionName(map[string]any{"name": nil}, 99))
}
