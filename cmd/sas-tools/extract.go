package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fredrickburns/sas-tools/internal/extract"
	"github.com/fredrickburns/sas-tools/pkg/types"
)

// defaultTranscript is the filename the session workflow saves transcripts to.
const defaultTranscript = "remaining_files.txt"

var extractCmd = &cobra.Command{
	Use:   "extract [transcript]",
	Short: "Extract fenced source files from a saved transcript",
	Long: `Extract scans a transcript document for sections of the form

    ### **Sources/App/SomeFile.swift**
    ` + "```swift" + `
    ...
    ` + "```" + `

and writes each block's content to its named path under the output
directory, creating intermediate directories as needed. Existing files are
overwritten. A transcript with no matching sections writes nothing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractConfig(cmd, args)

	summary, entries, err := extract.Run(cfg, os.Stdout)
	if err != nil {
		return err
	}

	if cfg.ManifestPath != "" {
		if err := extract.WriteManifest(cfg.ManifestPath, cfg, entries, summary); err != nil {
			return err
		}
	}

	fmt.Println("\nExtraction complete!")

	if summary.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", summary.Failed)
	}
	return nil
}

// extractConfig assembles the stage config from the positional argument,
// flags, and the config file, in that order of precedence.
func extractConfig(cmd *cobra.Command, args []string) types.ExtractConfig {
	cfg := types.ExtractConfig{
		Transcript:   defaultTranscript,
		OutputDir:    viper.GetString("extract.output_dir"),
		Languages:    viper.GetStringSlice("extract.languages"),
		ManifestPath: viper.GetString("extract.manifest"),
	}

	if len(args) > 0 {
		cfg.Transcript = args[0]
	}
	if out, _ := cmd.Flags().GetString("output-dir"); out != "" {
		cfg.OutputDir = out
	}
	if langs, _ := cmd.Flags().GetString("lang"); langs != "" {
		cfg.Languages = strings.Split(langs, ",")
	}
	if manifest, _ := cmd.Flags().GetString("manifest"); manifest != "" {
		cfg.ManifestPath = manifest
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return cfg
}

func init() {
	extractCmd.Flags().String("output-dir", "", "base directory for extracted files (default: current directory)")
	extractCmd.Flags().String("lang", "", "fence language(s) to recognize, comma-separated (default: swift)")
	extractCmd.Flags().String("manifest", "", "write a YAML manifest of the run to this path")

	rootCmd.AddCommand(extractCmd)
}
