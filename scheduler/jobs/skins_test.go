package jobs

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"skinmapping/pkg/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newConfig(t *testing.T, handler http.HandlerFunc) *config.Config {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &config.Config{
		Fetch: config.FetchConfiguration{
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
		Output: config.OutputConfiguration{
			Dir:     filepath.Join(t.TempDir(), "skinid_mapping"),
			Locales: []string{"default", "ko_kr"},
		},
		Monitoring: config.MonitoringConfiguration{LogLevel: "error"},
	}
}

func TestBuildSkinMappings(t *testing.T) {
	cfg := newConfig(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/default/v1/champions/", "/ko_kr/v1/champions/":
			w.Write([]byte(`"1.json"`))
		case "/default/v1/champions/1.json", "/ko_kr/v1/champions/1.json":
			w.Write([]byte(`{"skins": [{"id": 1000, "name": "Annie"}]}`))
		default:
			http.NotFound(w, r)
		}
	})

	assert.NoError(t, BuildSkinMappings(cfg))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "en", "skin_ids.json"))
	assert.FileExists(t, filepath.Join(cfg.Output.Dir, "ko", "skin_ids.json"))
}

func TestBuildSkinMappingsReportsFailedLanguages(t *testing.T) {
	cfg := newConfig(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	err := BuildSkinMappings(cfg)
	assert.EqualError(t, err, "2 languages failed: default -> en, ko_kr -> ko")
}
