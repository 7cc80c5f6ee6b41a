package runner

import (
	"bytes"
	"context"
	"errors"
	"skinmapping/fetcher/assets"
	"skinmapping/fetcher/services/skins"
	"skinmapping/internal/testutil"
	"skinmapping/pkg/logger"
	"skinmapping/pkg/metrics"
	"testing"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	baseURL   = "https://cdragon.test/global"
	outputDir = "out"
)

// Builder mock.
type MockBuilder struct {
	mock.Mock
}

func (m *MockBuilder) BuildLocale(ctx context.Context, locale string) *skins.LocaleResult {
	args := m.Called(ctx, locale)
	result, _ := args.Get(0).(*skins.LocaleResult)
	return result
}

func setupRunner(builder LocaleBuilder, locales []string) (*Runner, *bytes.Buffer, *metrics.RunMetrics) {
	var logs bytes.Buffer
	m := metrics.NewRunMetrics()
	r := NewRunner(&RunnerDeps{
		Builder:   builder,
		Locales:   locales,
		OutputDir: outputDir,
		Fs:        afero.NewMemMapFs(),
		Logger:    logger.NewConsoleLogger(&logs, "info"),
		Metrics:   m,
	})
	return r, &logs, m
}

func success(locale, language string) *skins.LocaleResult {
	return &skins.LocaleResult{Locale: locale, Language: language, Success: true}
}

func TestRunDeduplicatesLanguageCodes(t *testing.T) {
	builder := new(MockBuilder)
	builder.On("BuildLocale", mock.Anything, "default").Return(success("default", "en")).Once()
	builder.On("BuildLocale", mock.Anything, "es_es").Return(success("es_es", "es")).Once()
	builder.On("BuildLocale", mock.Anything, "zh_cn").Return(success("zh_cn", "zh")).Once()

	r, logs, _ := setupRunner(builder, []string{"default", "en_gb", "es_es", "es_mx", "en_au", "zh_cn", "zh_tw"})
	summary := r.Run(context.Background())

	assert.Equal(t, []string{"default -> en", "es_es -> es", "zh_cn -> zh"}, summary.Successful)
	assert.Empty(t, summary.Failed)
	assert.Equal(t, []string{"en_gb -> en", "es_mx -> es", "en_au -> en", "zh_tw -> zh"}, summary.Skipped)
	assert.Len(t, summary.Results, 3)
	assert.Contains(t, logs.String(), "[Skipping] en_gb -> en (already processed)")
	assert.Contains(t, logs.String(), "Successfully processed: 3 unique language codes")

	testutil.VerifyAllMocks(t, builder)
	builder.AssertNumberOfCalls(t, "BuildLocale", 3)
}

func TestRunFailedLanguageIsNotRetried(t *testing.T) {
	builder := new(MockBuilder)
	builder.On("BuildLocale", mock.Anything, "pt_br").Return(&skins.LocaleResult{
		Locale:   "pt_br",
		Language: "pt",
		Err:      errors.New("no champion IDs found for pt"),
	}).Once()

	r, _, m := setupRunner(builder, []string{"pt_br", "pt_pt"})
	summary := r.Run(context.Background())

	assert.Empty(t, summary.Successful)
	assert.Equal(t, []string{"pt_br -> pt"}, summary.Failed)
	assert.Equal(t, []string{"pt_pt -> pt"}, summary.Skipped)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.LocaleRuns.WithLabelValues("pt", "failed")))
	builder.AssertNumberOfCalls(t, "BuildLocale", 1)
}

func TestRunRecoversFromPanics(t *testing.T) {
	builder := new(MockBuilder)
	builder.On("BuildLocale", mock.Anything, "ru_ru").Run(func(args mock.Arguments) {
		panic("boom")
	}).Return(nil).Once()
	builder.On("BuildLocale", mock.Anything, "tr_tr").Return(nil).Once()
	builder.On("BuildLocale", mock.Anything, "vi_vn").Return(success("vi_vn", "vi")).Once()

	r, logs, _ := setupRunner(builder, []string{"ru_ru", "tr_tr", "vi_vn"})
	summary := r.Run(context.Background())

	assert.Equal(t, []string{"ru_ru -> ru", "tr_tr -> tr"}, summary.Failed)
	assert.Equal(t, []string{"vi_vn -> vi"}, summary.Successful)
	assert.Contains(t, logs.String(), "Fatal error processing ru_ru: boom")

	require.Len(t, summary.Results, 3)
	assert.ErrorContains(t, summary.Results[0].Err, "boom")
	testutil.VerifyAllMocks(t, builder)
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := NewRunner(&RunnerDeps{
		Builder:   new(MockBuilder),
		Locales:   []string{},
		OutputDir: "resources/skinid_mapping",
		Fs:        fs,
		Logger:    logger.NewConsoleLogger(&bytes.Buffer{}, "info"),
	})

	summary := r.Run(context.Background())
	assert.Empty(t, summary.Successful)

	exists, err := afero.DirExists(fs, "resources/skinid_mapping")
	require.NoError(t, err)
	assert.True(t, exists)
}

// Full pipeline over canned upstream data.
func TestRunEndToEnd(t *testing.T) {
	var logs bytes.Buffer
	log := logger.NewConsoleLogger(&logs, "info")
	fs := afero.NewMemMapFs()

	fetcher := testutil.NewFakeFetcher()
	fetcher.Text[assets.ChampionDirectoryURL(baseURL, "default")] = `"1.json" "2.json" "13000.json" "-1.json"`
	fetcher.SetJSONString(assets.ChampionURL(baseURL, "default", 1), `{"name": "Annie", "skins": [{"id": 1000, "name": "Annie"}]}`)
	fetcher.SetJSONString(assets.ChampionURL(baseURL, "default", 2), `{"name": "Olaf", "skins": [{"id": 2000, "name": "Olaf"}]}`)
	fetcher.Text[assets.ChampionDirectoryURL(baseURL, "ja_jp")] = ``

	service := skins.NewSkinService(&skins.SkinServiceDeps{
		Fetcher:   fetcher,
		Fs:        fs,
		BaseURL:   baseURL,
		OutputDir: outputDir,
		Logger:    log,
	})

	r := NewRunner(&RunnerDeps{
		Builder:   service,
		Locales:   []string{"default", "ja_jp", "en_gb"},
		OutputDir: outputDir,
		Fs:        fs,
		Logger:    log,
	})
	summary := r.Run(context.Background())

	assert.Equal(t, []string{"default -> en"}, summary.Successful)
	assert.Equal(t, []string{"ja_jp -> ja"}, summary.Failed)
	assert.Equal(t, []string{"en_gb -> en"}, summary.Skipped)

	// Only the filtered ids were requested.
	assert.Equal(t, 1, fetcher.CallCount(assets.ChampionURL(baseURL, "default", 1)))
	assert.Equal(t, 1, fetcher.CallCount(assets.ChampionURL(baseURL, "default", 2)))
	assert.Zero(t, fetcher.CallCount(assets.ChampionURL(baseURL, "default", 13000)))
	assert.Equal(t, 1, fetcher.CallCount(assets.ChampionDirectoryURL(baseURL, "default")))

	english, err := afero.ReadFile(fs, "out/en/skin_ids.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"1000": "Annie", "2000": "Olaf"}`, string(english))

	exists, err := afero.Exists(fs, "out/ja/skin_ids.json")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Contains(t, logs.String(), "Failed languages: 1")
	assert.Contains(t, logs.String(), "  - ja_jp -> ja")
}
