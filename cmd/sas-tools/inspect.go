package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fredrickburns/sas-tools/internal/inspect"
	"github.com/fredrickburns/sas-tools/pkg/types"
)

// defaultDataFile points at the current MAAP test-data drop.
const defaultDataFile = "Data/MAAP_Test_Data/2025_SPRING_3-8_EOC_2520.csv"

var inspectCmd = &cobra.Command{
	Use:   "inspect [csv]",
	Short: "Preview an assessment data file",
	Long: `Inspect streams a MAAP assessment CSV and prints the student identifier,
operational codes, and scale score for the first few rows, followed by the
total row count. The file is read once; nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := inspectConfig(cmd, args)

	_, err := inspect.Preview(cfg, os.Stdout)
	return err
}

// inspectConfig assembles the stage config from the positional argument,
// flags, and the config file, in that order of precedence.
func inspectConfig(cmd *cobra.Command, args []string) types.InspectConfig {
	cfg := types.InspectConfig{
		DataFile: viper.GetString("inspect.data_file"),
		Columns:  viper.GetStringSlice("inspect.columns"),
		Rows:     viper.GetInt("inspect.rows"),
		Encoding: viper.GetString("inspect.encoding"),
	}

	if cfg.DataFile == "" {
		cfg.DataFile = defaultDataFile
	}
	if len(args) > 0 {
		cfg.DataFile = args[0]
	}
	if cols, _ := cmd.Flags().GetString("columns"); cols != "" {
		cfg.Columns = strings.Split(cols, ",")
	}
	if cmd.Flags().Changed("rows") {
		cfg.Rows, _ = cmd.Flags().GetInt("rows")
	}
	if enc, _ := cmd.Flags().GetString("encoding"); enc != "" {
		cfg.Encoding = enc
	}
	return cfg
}

func init() {
	inspectCmd.Flags().String("columns", "", "comma-separated preview columns (default: MSIS,D1OP,DTOP,SCALE_SCORE)")
	inspectCmd.Flags().Int("rows", inspect.DefaultRows, "number of rows to preview")
	inspectCmd.Flags().String("encoding", "", "source encoding: utf-8, utf-8-bom, windows-1252, latin-1 (default: utf-8)")

	rootCmd.AddCommand(inspectCmd)
}
