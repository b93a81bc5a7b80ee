package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/engine"
	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/observability"
	"github.com/jonathan/resume-coach/internal/types"
)

func newEngine() *engine.RuleBased {
	cfg := engine.DefaultConfig()
	if appConfig != nil {
		cfg = appConfig.Engine
	}
	return engine.New(knowledge.Default(), cfg)
}

// newPrinter returns the verbose-mode printer. Summaries go to stderr so JSON on
// stdout stays machine readable.
func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}

// suggestFlags are the per-call engine overrides shared by the recommender commands.
type suggestFlags struct {
	max       int
	minScore  int
	threshold string
}

func (f *suggestFlags) register(cmd *cobra.Command, withMinScore bool) {
	cmd.Flags().IntVarP(&f.max, "max", "m", 10, "Maximum number of suggestions")
	cmd.Flags().StringVar(&f.threshold, "threshold", "", "Lowest priority to keep (high, medium, low)")
	if withMinScore {
		cmd.Flags().IntVar(&f.minScore, "min-score", 30, "Minimum relevance score (0-100)")
	}
}

// options converts the flags the user actually set into engine options so unset
// flags fall through to the configured defaults.
func (f *suggestFlags) options(cmd *cobra.Command) ([]engine.Option, error) {
	var opts []engine.Option
	flags := cmd.Flags()

	if flags.Changed("max") {
		opts = append(opts, engine.WithMaxSuggestions(f.max))
	}
	if flags.Lookup("min-score") != nil && flags.Changed("min-score") {
		if f.minScore < 0 || f.minScore > 100 {
			return nil, fmt.Errorf("--min-score must be between 0 and 100, got %d", f.minScore)
		}
		opts = append(opts, engine.WithMinRelevanceScore(f.minScore))
	}
	if flags.Changed("threshold") {
		p := types.Priority(strings.ToLower(strings.TrimSpace(f.threshold)))
		if !p.Valid() {
			return nil, fmt.Errorf("--threshold must be one of high, medium, low, got %q", f.threshold)
		}
		opts = append(opts, engine.WithPriorityThreshold(p))
	}
	return opts, nil
}

func parseLevel(raw string) (types.ExperienceLevel, error) {
	level := types.ExperienceLevel(strings.ToLower(strings.TrimSpace(raw)))
	if level != "" && level.Index() < 0 {
		return "", fmt.Errorf("--level must be one of entry, junior, mid, senior, lead, got %q", raw)
	}
	return level, nil
}
