package skins

import (
	"context"
	"fmt"
	"path/filepath"
	"skinmapping/fetcher/assets"
	"skinmapping/fetcher/requests"
	"skinmapping/pkg/logger"
	"skinmapping/pkg/messages"
	"skinmapping/pkg/metrics"
	"skinmapping/pkg/models/skin"
	"skinmapping/pkg/reporter"
	"strings"

	"github.com/spf13/afero"
)

// How many failed ids are printed on the locale summary.
const maxFailedIdsShown = 10

// Publisher receives every mapping once its file is written.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, language string, mapping skin.Mapping) error
}

// LocaleResult is the outcome of a single locale build.
type LocaleResult struct {
	Locale             string
	Language           string
	Success            bool
	ChampionsProcessed int
	SkinsCollected     int
	FailedChampions    []int
	OutputFile         string
	Err                error
}

// SkinService builds the skin mapping of a locale.
type SkinService struct {
	fetcher    requests.Fetcher
	lister     assets.ChampionLister
	fs         afero.Fs
	baseURL    string
	outputDir  string
	log        *logger.Logger
	metrics    *metrics.RunMetrics
	publishers []Publisher
}

// SkinServiceDeps is the dependency list for the skin service.
type SkinServiceDeps struct {
	Fetcher   requests.Fetcher
	Lister    assets.ChampionLister
	Fs        afero.Fs
	BaseURL   string
	OutputDir string
	Logger    *logger.Logger
	Metrics   *metrics.RunMetrics

	// Optional sinks, called in order after the file is written.
	Publishers []Publisher
}

// NewSkinService creates a skin service.
// Without a lister the directory listing of the base url is scraped.
func NewSkinService(deps *SkinServiceDeps) *SkinService {
	lister := deps.Lister
	if lister == nil {
		lister = assets.NewDirectoryLister(deps.Fetcher, deps.BaseURL)
	}

	fs := deps.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &SkinService{
		fetcher:    deps.Fetcher,
		lister:     lister,
		fs:         fs,
		baseURL:    deps.BaseURL,
		outputDir:  deps.OutputDir,
		log:        deps.Logger,
		metrics:    deps.Metrics,
		publishers: deps.Publishers,
	}
}

// BuildLocale fetches every champion of the locale and writes the mapping of its language.
func (s *SkinService) BuildLocale(ctx context.Context, locale string) *LocaleResult {
	language := skin.LanguageCode(locale)
	result := &LocaleResult{
		Locale:          locale,
		Language:        language,
		FailedChampions: []int{},
	}

	s.log.EmptyLine()
	s.log.Infof("%s", strings.Repeat("=", 70))
	s.log.Infof("Processing locale: %s", locale)
	s.log.Infof("%s", strings.Repeat("=", 70))

	// The directory uses the language code, the requests use the full locale.
	languageDir := filepath.Join(s.outputDir, language)
	if err := s.fs.MkdirAll(languageDir, 0o755); err != nil {
		result.Err = fmt.Errorf("couldn't create the output directory %s: %w", languageDir, err)
		s.log.Errorf("%v", result.Err)
		return result
	}

	s.log.Infof("Fetching champion IDs...")
	championIds := s.lister.ListChampionIDs(ctx, locale)
	if len(championIds) == 0 {
		result.Err = fmt.Errorf(messages.NoChampionIdsMsg, language)
		s.log.Errorf("%v", result.Err)
		return result
	}
	s.log.Infof("Found %d champions", len(championIds))

	mapping := skin.Mapping{}

	s.log.Infof("Processing champions...")
	for _, championId := range championIds {
		skinCount, ok := s.processChampion(ctx, locale, championId, mapping)
		if !ok {
			result.FailedChampions = append(result.FailedChampions, championId)
			s.metrics.ChampionFailed(language)
			continue
		}
		if skinCount == 0 {
			continue
		}

		result.ChampionsProcessed++
		result.SkinsCollected += skinCount
		s.metrics.ObserveChampion(language, skinCount)
	}

	outputFile := OutputPath(s.outputDir, language)
	s.log.Infof("Writing skin mappings to: %s", outputFile)
	if err := writeMapping(s.fs, outputFile, mapping); err != nil {
		result.Err = err
		s.log.Errorf("Writing output file for %s: %v", language, err)
		return result
	}

	result.Success = true
	result.OutputFile = outputFile
	s.logResult(result)

	s.publish(ctx, language, mapping)

	return result
}

// Fetch, parse and merge a single champion.
// A panic is recovered and reported as a failed champion.
func (s *SkinService) processChampion(ctx context.Context, locale string, championId int, mapping skin.Mapping) (skinCount int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("Processing champion ID %d: %v", championId, r)
			reporter.CapturePanic(r, map[string]string{"locale": locale, "champion_id": fmt.Sprint(championId)})
			skinCount, ok = 0, false
		}
	}()

	champion, found := assets.FetchChampion(ctx, s.fetcher, s.baseURL, locale, championId)
	if !found {
		return 0, false
	}

	championName := assets.ChampionName(champion, championId)
	records := assets.ParseChampionSkins(champion)
	if len(records) == 0 {
		s.log.Warnf("%-20s No skins found", championName)
		return 0, true
	}

	mapping.Merge(records)
	s.log.Infof("%-20s %3d skins", championName, len(records))
	return len(records), true
}

func (s *SkinService) logResult(result *LocaleResult) {
	s.log.Infof("[SUCCESS] %s", result.Language)
	s.log.Infof("  - Total champions: %d", result.ChampionsProcessed)
	s.log.Infof("  - Total skins: %d", result.SkinsCollected)
	s.log.Infof("  - Failed champions: %d", len(result.FailedChampions))
	if len(result.FailedChampions) > 0 {
		s.log.Infof("  - Failed IDs: %s", formatFailedIds(result.FailedChampions))
	}
	s.log.Infof("  - Output file: %s", result.OutputFile)
}

// Send the mapping to every sink and return the failures.
// On a build they don't fail the locale, the file is already written.
func (s *SkinService) publish(ctx context.Context, language string, mapping skin.Mapping) []error {
	var errs []error
	for _, publisher := range s.publishers {
		if err := publisher.Publish(ctx, language, mapping); err != nil {
			s.log.Errorf("Publishing %s to %s: %v", language, publisher.Name(), err)
			reporter.CaptureError(err, map[string]string{"language": language, "sink": publisher.Name()})
			errs = append(errs, err)
			continue
		}
		s.log.Infof("  - Published to %s", publisher.Name())
	}
	return errs
}

// Print the first ids, with a trailing "..." when there are more.
func formatFailedIds(ids []int) string {
	shown := ids
	suffix := ""
	if len(ids) > maxFailedIdsShown {
		shown = ids[:maxFailedIdsShown]
		suffix = "..."
	}
	return fmt.Sprintf("%v%s", shown, suffix)
}
