package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/florette/internal/config"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "florette",
	Short:         "florette tracks daily symptoms and predicts tomorrow's",
	Long:          "florette is a self-hosted symptom log API with an offline predictor and maintenance commands.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $DB_PATH or data/florette.db)")
}

// resolveDBPath prefers the --db flag over the environment.
func resolveDBPath(cfg *config.Config) string {
	if path := strings.TrimSpace(dbPath); path != "" {
		return path
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath
	}
	return config.ResolveDBPath()
}
