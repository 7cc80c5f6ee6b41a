package runner

import (
	"context"
	"errors"
	"fmt"
	"skinmapping/fetcher/services/skins"
	"skinmapping/pkg/logger"
	"skinmapping/pkg/messages"
	"skinmapping/pkg/metrics"
	"skinmapping/pkg/models/skin"
	"skinmapping/pkg/reporter"
	"strings"

	"github.com/spf13/afero"
)

// LocaleBuilder builds the mapping of one locale.
type LocaleBuilder interface {
	BuildLocale(ctx context.Context, locale string) *skins.LocaleResult
}

// Summary of a full run. Entries are formatted as "<locale> -> <language>".
type Summary struct {
	Successful []string
	Failed     []string
	Skipped    []string
	Results    []*skins.LocaleResult
}

// Runner walks the locale list, building each language once.
type Runner struct {
	builder   LocaleBuilder
	locales   []string
	outputDir string
	fs        afero.Fs
	log       *logger.Logger
	metrics   *metrics.RunMetrics
}

// RunnerDeps is the dependency list for the runner.
type RunnerDeps struct {
	Builder   LocaleBuilder
	Locales   []string
	OutputDir string
	Fs        afero.Fs
	Logger    *logger.Logger
	Metrics   *metrics.RunMetrics
}

// NewRunner creates a runner over the given locales, in order.
func NewRunner(deps *RunnerDeps) *Runner {
	fs := deps.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Runner{
		builder:   deps.Builder,
		locales:   deps.Locales,
		outputDir: deps.OutputDir,
		fs:        fs,
		log:       deps.Logger,
		metrics:   deps.Metrics,
	}
}

// Run builds every language once and prints the summary.
// Failures never stop the remaining locales.
func (r *Runner) Run(ctx context.Context) *Summary {
	banner := strings.Repeat("=", 70)
	r.log.Infof("%s", banner)
	r.log.Infof("Building Multi-Language Skin IDs Mapping")
	r.log.Infof("%s", banner)
	r.log.Infof("Note: All variants of the same language use the same mapping")
	r.log.Infof("      Files are saved using language codes (ll) instead of locales (ll_ll)")
	r.log.Infof("%s", banner)

	if err := r.fs.MkdirAll(r.outputDir, 0o755); err != nil {
		r.log.Errorf("Couldn't create the output directory %s: %v", r.outputDir, err)
	}

	summary := &Summary{
		Successful: []string{},
		Failed:     []string{},
		Skipped:    []string{},
	}

	// Languages already handled on this run, whatever the outcome.
	handled := make(map[string]bool)

	for _, locale := range r.locales {
		language := skin.LanguageCode(locale)
		entry := fmt.Sprintf("%s -> %s", locale, language)

		if handled[language] {
			r.log.EmptyLine()
			r.log.Infof(messages.AlreadyProcessedMsg, entry)
			summary.Skipped = append(summary.Skipped, entry)
			continue
		}
		handled[language] = true

		result := r.buildLocale(ctx, locale)
		summary.Results = append(summary.Results, result)
		r.metrics.LocaleFinished(language, result.Success)

		if result.Success {
			summary.Successful = append(summary.Successful, entry)
			continue
		}

		summary.Failed = append(summary.Failed, entry)
		reporter.CaptureError(result.Err, map[string]string{"locale": locale, "language": language})
	}

	r.printSummary(summary)
	return summary
}

// Build a single locale, turning a panic into a failed result.
func (r *Runner) buildLocale(ctx context.Context, locale string) (result *skins.LocaleResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.log.EmptyLine()
			r.log.Errorf("Fatal error processing %s: %v", locale, recovered)
			result = &skins.LocaleResult{
				Locale:   locale,
				Language: skin.LanguageCode(locale),
				Err:      fmt.Errorf("panic while processing %s: %v", locale, recovered),
			}
		}
	}()

	result = r.builder.BuildLocale(ctx, locale)
	if result == nil {
		result = &skins.LocaleResult{
			Locale:   locale,
			Language: skin.LanguageCode(locale),
			Err:      errors.New("builder returned no result"),
		}
	}
	return result
}

func (r *Runner) printSummary(summary *Summary) {
	banner := strings.Repeat("=", 70)

	r.log.EmptyLine()
	r.log.Infof("%s", banner)
	r.log.Infof("Processing Complete!")
	r.log.Infof("%s", banner)
	r.log.Infof("Successfully processed: %d unique language codes", len(summary.Successful))
	r.log.Infof("Failed languages: %d", len(summary.Failed))

	if len(summary.Successful) > 0 {
		r.log.EmptyLine()
		r.log.Infof("Successful languages:")
		for _, entry := range summary.Successful {
			r.log.Infof("  - %s", entry)
		}
	}

	if len(summary.Failed) > 0 {
		r.log.EmptyLine()
		r.log.Infof("Failed languages:")
		for _, entry := range summary.Failed {
			r.log.Infof("  - %s", entry)
		}
	}

	r.log.EmptyLine()
	r.log.Infof("Output directory: %s", r.outputDir)
	r.log.Infof("%s", banner)
}
