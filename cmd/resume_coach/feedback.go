package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-coach/internal/engine"
	"github.com/jonathan/resume-coach/internal/feedback"
	"github.com/jonathan/resume-coach/internal/types"
	"github.com/jonathan/resume-coach/internal/validation"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Review one or more resume files",
	Long:  "Checks each resume for missing sections, weak bullet points, skill gaps and weak hobbies. Files are analyzed concurrently.",
	RunE:  runFeedback,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run every recommender against a resume",
	Long:  "Derives the job and profile context from the resume metadata and returns skill, bullet point and hobby suggestions together with feedback and a completeness score.",
	RunE:  runRecommend,
}

var (
	feedbackResumes []string
	feedbackJobs    int
	feedbackOutput  string

	recommendResume string
	recommendOutput string
	recommendFlags  suggestFlags
)

func init() {
	feedbackCmd.Flags().StringSliceVarP(&feedbackResumes, "resume", "r", nil, "Path to resume JSON file (repeatable, required)")
	feedbackCmd.Flags().IntVarP(&feedbackJobs, "jobs", "j", runtime.NumCPU(), "Number of files analyzed in parallel")
	feedbackCmd.Flags().StringVarP(&feedbackOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	markRequired(feedbackCmd, "resume")

	recommendCmd.Flags().StringVarP(&recommendResume, "resume", "r", "", "Path to resume JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	recommendFlags.register(recommendCmd, true)
	markRequired(recommendCmd, "resume")

	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(recommendCmd)
}

// FileFeedback is the review of a single resume file.
type FileFeedback struct {
	File         string               `json:"file"`
	Feedback     []types.FeedbackItem `json:"feedback"`
	Completeness int                  `json:"completeness_score"`
}

// loadResume reads a resume file and checks it against the resume schema. Field-level
// problems are left for the feedback analyzer to report.
func loadResume(path string) (*types.Resume, error) {
	resume, _, err := validation.ValidateFile(path)
	if err != nil {
		return nil, err
	}
	return resume, nil
}

// analyzeFiles reviews every path with at most jobs files in flight. Results keep
// the order of paths; the first failure cancels the remaining work.
func analyzeFiles(ctx context.Context, eng *engine.RuleBased, paths []string, jobs int) ([]FileFeedback, error) {
	results := make([]FileFeedback, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			resume, err := loadResume(path)
			if err != nil {
				return fmt.Errorf("failed to load resume %s: %w", path, err)
			}
			results[i] = FileFeedback{
				File:         path,
				Feedback:     eng.AnalyzeFeedback(resume),
				Completeness: feedback.CompletenessScore(resume),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runFeedback(cmd *cobra.Command, _ []string) error {
	results, err := analyzeFiles(cmd.Context(), newEngine(), feedbackResumes, feedbackJobs)
	if err != nil {
		return err
	}

	if verbose {
		p := newPrinter(cmd)
		for _, r := range results {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s (completeness %d/100)\n", r.File, r.Completeness)
			p.PrintFeedback(r.Feedback)
		}
	}
	return writeJSON(cmd.OutOrStdout(), feedbackOutput, results)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	opts, err := recommendFlags.options(cmd)
	if err != nil {
		return err
	}

	resume, err := loadResume(recommendResume)
	if err != nil {
		return fmt.Errorf("failed to load resume %s: %w", recommendResume, err)
	}

	result := newEngine().GetAllRecommendations(resume, opts...)
	if verbose {
		newPrinter(cmd).PrintRecommendations(result)
	}
	return writeJSON(cmd.OutOrStdout(), recommendOutput, result)
}
