// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sas-tools CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the sas-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "sas-tools",
	Short: "Operator tooling for the Student Analysis System",
	Long: `sas-tools bundles the file utilities used while assembling the Student
Analysis System: extract materializes generated Swift sources from a saved
LLM transcript, and inspect previews MAAP assessment data files before a
load.

Each utility is a subcommand and runs one linear pass; there is no shared
state between them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sas-tools.yaml or ~/.config/sas-tools/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sas-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sas-tools"))
		}
	}

	viper.SetEnvPrefix("SAS_TOOLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
