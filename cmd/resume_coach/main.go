// Package main provides the entry point for the resume_coach CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/config"
	"github.com/jonathan/resume-coach/internal/observability"
)

var (
	configPath string
	verbose    bool

	// appConfig is loaded once per invocation before any subcommand runs.
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "resume_coach",
	Short: "Rule-based resume recommendations",
	Long: "Resume Coach suggests skills, achievement bullet points and hobbies for a target role " +
		"and reviews resumes for completeness and quality. Everything runs offline against " +
		"built-in knowledge tables.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted summaries and debug logs")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Only the server logs by default; one-shot commands stay quiet unless verbose.
	level := cfg.Log.Level
	switch {
	case verbose:
		level = "debug"
	case cmd.Name() != "serve":
		level = "error"
	}
	if _, err := observability.SetupLogger(level, cfg.Log.Format); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
