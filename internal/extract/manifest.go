// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/fredrickburns/sas-tools/pkg/types"
)

// Manifest is the on-disk record of one extraction run. The operator can
// keep it next to the transcript to see what a given session produced,
// instead of scrolling back through console output.
type Manifest struct {
	Transcript string          `yaml:"transcript"`
	OutputDir  string          `yaml:"output_dir"`
	Files      []ManifestFile  `yaml:"files"`
	Summary    ManifestSummary `yaml:"summary"`
}

// ManifestFile records one extracted file.
type ManifestFile struct {
	Path  string `yaml:"path"`
	Bytes int    `yaml:"bytes"`
}

// ManifestSummary stores run counts and a timestamp.
type ManifestSummary struct {
	Written   int       `yaml:"written"`
	Failed    int       `yaml:"failed,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteManifest saves a YAML record of the run to path.
func WriteManifest(path string, cfg types.ExtractConfig, entries []types.Entry, summary Summary) error {
	m := Manifest{
		Transcript: cfg.Transcript,
		OutputDir:  cfg.OutputDir,
		Summary: ManifestSummary{
			Written:   summary.Written,
			Failed:    summary.Failed,
			Timestamp: time.Now().UTC(),
		},
	}
	for _, e := range entries {
		m.Files = append(m.Files, ManifestFile{Path: e.Path, Bytes: len(e.Content)})
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
