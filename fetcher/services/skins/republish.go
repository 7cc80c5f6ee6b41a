package skins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"skinmapping/pkg/models/skin"

	"github.com/spf13/afero"
)

// Republisher sends the mapping files already on disk to the sinks, without fetching anything.
// It fits in the runner like a builder, so every language is handled once.
type Republisher struct {
	service *SkinService
}

// NewRepublisher reuses the file system, output directory and sinks of the service.
func NewRepublisher(service *SkinService) *Republisher {
	return &Republisher{service: service}
}

// BuildLocale republishes the file of the locale's language.
// A missing file, an unreadable file or any failing sink fails the locale.
func (r *Republisher) BuildLocale(ctx context.Context, locale string) *LocaleResult {
	s := r.service
	language := skin.LanguageCode(locale)
	outputFile := OutputPath(s.outputDir, language)
	result := &LocaleResult{
		Locale:          locale,
		Language:        language,
		FailedChampions: []int{},
		OutputFile:      outputFile,
	}

	s.log.EmptyLine()
	s.log.Infof("Republishing %s from %s", language, outputFile)

	mapping, err := readMapping(s.fs, outputFile)
	if err != nil {
		result.Err = err
		s.log.Errorf("%v", err)
		return result
	}

	if len(s.publishers) == 0 {
		result.Err = errors.New("no sink is configured")
		s.log.Errorf("Nothing to republish %s to, no sink is configured", language)
		return result
	}

	if errs := s.publish(ctx, language, mapping); len(errs) > 0 {
		result.Err = errors.Join(errs...)
		return result
	}

	result.Success = true
	result.SkinsCollected = len(mapping)
	s.log.Infof("[SUCCESS] %s (%d skins)", language, len(mapping))
	return result
}

// Read back a mapping file written by a previous build.
func readMapping(fs afero.Fs, path string) (skin.Mapping, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", path, err)
	}

	mapping := skin.Mapping{}
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("couldn't decode %s: %w", path, err)
	}
	return mapping, nil
}
