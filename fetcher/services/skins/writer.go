package skins

import (
	"fmt"
	"path/filepath"
	"skinmapping/pkg/models/skin"

	"github.com/spf13/afero"
)

// Name of the mapping file inside each language directory.
const OutputFileName = "skin_ids.json"

// OutputPath returns <dir>/<language>/skin_ids.json.
func OutputPath(outputDir string, language string) string {
	return filepath.Join(outputDir, language, OutputFileName)
}

// writeMapping writes the mapping file, the directory must already exist.
func writeMapping(fs afero.Fs, path string, mapping skin.Mapping) error {
	data, err := mapping.Encode()
	if err != nil {
		return err
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
