// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract scans a transcript document for fenced source-file
// sections and materializes each one on disk under a base directory.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fredrickburns/sas-tools/pkg/types"
)

// Summary holds the outcome of an extraction run.
type Summary struct {
	Written int
	Failed  int
}

// Total returns the number of entries processed.
func (s Summary) Total() int {
	return s.Written + s.Failed
}

// HasFailures reports whether any entries failed to write.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// WriteEntry writes a single entry under baseDir, creating intermediate
// directories as needed. An existing file at the destination is overwritten.
// The entry path must stay inside baseDir; absolute paths and paths that
// climb out with ".." are rejected.
func WriteEntry(entry types.Entry, baseDir string) error {
	if !filepath.IsLocal(entry.Path) {
		return fmt.Errorf("path %s escapes the output directory", entry.Path)
	}

	dest := filepath.Join(baseDir, entry.Path)

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", entry.Path, err)
		}
	}

	if err := os.WriteFile(dest, []byte(entry.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", entry.Path, err)
	}
	return nil
}

// WriteAll writes entries in document order, printing one status line per
// entry to w. A failing entry is reported and counted; entries already on
// disk stay there.
func WriteAll(entries []types.Entry, baseDir string, w io.Writer) Summary {
	var summary Summary
	for _, e := range entries {
		if err := WriteEntry(e, baseDir); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", e.Path, err)
			summary.Failed++
			continue
		}
		fmt.Fprintf(w, "Written: %s\n", e.Path)
		summary.Written++
	}
	return summary
}

// Run reads the transcript named by cfg, scans it with the configured
// rules, and writes every matched section under cfg.OutputDir. The scanned
// entries are returned alongside the summary so callers can record the run.
// A transcript with no matching sections writes nothing and is not an error.
func Run(cfg types.ExtractConfig, w io.Writer) (Summary, []types.Entry, error) {
	data, err := os.ReadFile(cfg.Transcript)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("reading transcript %s: %w", cfg.Transcript, err)
	}

	rules := make([]Rule, 0, len(cfg.Languages))
	for _, lang := range cfg.Languages {
		rules = append(rules, RuleForLang(lang))
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	entries := Scan(string(data), rules)
	summary := WriteAll(entries, cfg.OutputDir, w)
	return summary, entries, nil
}
