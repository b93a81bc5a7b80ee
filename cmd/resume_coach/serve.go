package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/observability"
	"github.com/jonathan/resume-coach/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the recommenders, feedback analyzer and resume validation as JSON endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	shutdown, err := observability.SetupTracing(cfg.Tracing.Enabled, cfg.Tracing.ServiceName, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdown(cmd.Context()); err != nil {
			slog.Error("failed to flush traces", "error", err)
		}
	}()

	srv := server.New(cfg, newEngine(), slog.Default())
	return srv.Start(cmd.Context())
}
