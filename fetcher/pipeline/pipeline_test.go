package pipeline

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"skinmapping/pkg/config"
	"skinmapping/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	// Paths arrive decoded, ja%5Fjp is served as ja_jp.
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/global/default/v1/champions/":
			w.Write([]byte(`<a href="1.json">1.json</a> <a href="13000.json">13000.json</a>`))
		case "/global/default/v1/champions/1.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"name": "Annie", "skins": [{"id": 1000, "name": "Annie", "chromas": []}]}`))
		case "/global/ja_jp/v1/champions/":
			w.Write([]byte(`<html></html>`))
		default:
			http.NotFound(w, r)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()

	return &config.Config{
		Fetch: config.FetchConfiguration{
			BaseURL:   baseURL + "/global",
			Timeout:   5 * time.Second,
			UserAgent: "skinmapping-test",
		},
		Output: config.OutputConfiguration{
			Dir:     filepath.Join(dir, "skinid_mapping"),
			Locales: []string{"default", "ja_jp", "en_gb"},
		},
		Monitoring: config.MonitoringConfiguration{
			MetricsFile: filepath.Join(dir, "skinmapping.prom"),
		},
	}
}

func TestPipelineBuild(t *testing.T) {
	server := newUpstream(t)
	cfg := testConfig(t, server.URL)

	var logs bytes.Buffer
	p := New(context.Background(), cfg, logger.NewConsoleLogger(&logs, "info"))

	summary := p.Build(context.Background())
	p.Close(context.Background())

	assert.Equal(t, []string{"default -> en"}, summary.Successful)
	assert.Equal(t, []string{"ja_jp -> ja"}, summary.Failed)
	assert.Equal(t, []string{"en_gb -> en"}, summary.Skipped)

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "en", "skin_ids.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"1000\": \"Annie\"\n}\n", string(data))
	assert.NoFileExists(t, filepath.Join(cfg.Output.Dir, "ja", "skin_ids.json"))

	metricsFile, err := os.ReadFile(cfg.Monitoring.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metricsFile), `skinmapping_locale_runs_total{language="ja",status="failed"} 1`)
}

func TestPipelineRepublishWithoutSinks(t *testing.T) {
	server := newUpstream(t)
	cfg := testConfig(t, server.URL)
	cfg.Output.Locales = []string{"default"}

	var logs bytes.Buffer
	p := New(context.Background(), cfg, logger.NewConsoleLogger(&logs, "info"))
	p.Build(context.Background())

	summary := p.Republish(context.Background())
	p.Close(context.Background())

	assert.Empty(t, summary.Successful)
	assert.Equal(t, []string{"default -> en"}, summary.Failed)
	assert.Contains(t, logs.String(), "no sink is configured")
}

func TestPipelineUnreachableSinkIsSkipped(t *testing.T) {
	server := newUpstream(t)
	cfg := testConfig(t, server.URL)
	cfg.Output.Locales = []string{"default"}
	cfg.Redis = config.RedisConfiguration{Host: "127.0.0.1", Port: "1"}

	var logs bytes.Buffer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p := New(ctx, cfg, logger.NewConsoleLogger(&logs, "info"))
	summary := p.Build(ctx)
	p.Close(ctx)

	assert.Contains(t, logs.String(), "The redis sink is disabled for this run")
	assert.Equal(t, []string{"default -> en"}, summary.Successful)
}
