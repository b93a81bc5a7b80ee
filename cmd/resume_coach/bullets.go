package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/experience"
	"github.com/jonathan/resume-coach/internal/types"
)

var generateBulletsCmd = &cobra.Command{
	Use:   "generate-bullets",
	Short: "Generate achievement bullet points for a role",
	Long:  "Fills the bullet templates that apply to the target role with placeholder values drawn from the given skills.",
	RunE:  runGenerateBullets,
}

var analyzeBulletsCmd = &cobra.Command{
	Use:   "analyze-bullets",
	Short: "Check existing bullet points for metrics and action verbs",
	Long:  "Reports whether existing bullet points quantify results and open with action verbs. Bullets come from repeated --bullet flags or from an experience JSON file.",
	RunE:  runAnalyzeBullets,
}

var (
	generateBulletsRole     string
	generateBulletsSkills   []string
	generateBulletsPosition string
	generateBulletsCompany  string
	generateBulletsOutput   string
	generateBulletsFlags    suggestFlags

	analyzeBulletsBullets    []string
	analyzeBulletsExperience string
	analyzeBulletsOutput     string
)

func init() {
	generateBulletsCmd.Flags().StringVarP(&generateBulletsRole, "role", "r", "", "Target role id or title (required)")
	generateBulletsCmd.Flags().StringSliceVarP(&generateBulletsSkills, "skill", "s", nil, "Skill to weave into the bullets (repeatable)")
	generateBulletsCmd.Flags().StringVar(&generateBulletsPosition, "position", "", "Position held")
	generateBulletsCmd.Flags().StringVar(&generateBulletsCompany, "company", "", "Company name")
	generateBulletsCmd.Flags().StringVarP(&generateBulletsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	generateBulletsFlags.register(generateBulletsCmd, false)
	markRequired(generateBulletsCmd, "role")

	analyzeBulletsCmd.Flags().StringArrayVarP(&analyzeBulletsBullets, "bullet", "b", nil, "Bullet point to analyze (repeatable)")
	analyzeBulletsCmd.Flags().StringVarP(&analyzeBulletsExperience, "experience", "e", "", "Path to experience JSON file (array of entries or a resume)")
	analyzeBulletsCmd.Flags().StringVarP(&analyzeBulletsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	analyzeBulletsCmd.MarkFlagsMutuallyExclusive("bullet", "experience")
	analyzeBulletsCmd.MarkFlagsOneRequired("bullet", "experience")

	rootCmd.AddCommand(generateBulletsCmd)
	rootCmd.AddCommand(analyzeBulletsCmd)
}

func runGenerateBullets(cmd *cobra.Command, _ []string) error {
	opts, err := generateBulletsFlags.options(cmd)
	if err != nil {
		return err
	}

	exp := types.Experience{
		ID:       "cli",
		Company:  generateBulletsCompany,
		Position: generateBulletsPosition,
	}
	ctx := types.JobContext{TargetRole: generateBulletsRole, CurrentSkills: generateBulletsSkills}

	bullets := newEngine().GenerateBulletPoints(exp, ctx, opts...)
	if verbose {
		newPrinter(cmd).PrintBulletPoints(bullets)
	}
	return writeJSON(cmd.OutOrStdout(), generateBulletsOutput, bullets)
}

func runAnalyzeBullets(cmd *cobra.Command, _ []string) error {
	bullets := experience.NormalizeBullets(analyzeBulletsBullets)
	if analyzeBulletsExperience != "" {
		entries, err := experience.LoadEntries(analyzeBulletsExperience)
		if err != nil {
			return fmt.Errorf("failed to load experience: %w", err)
		}
		for _, entry := range entries {
			bullets = append(bullets, entry.BulletPoints...)
		}
	}
	if len(bullets) == 0 {
		return fmt.Errorf("no bullet points to analyze")
	}

	analysis := experience.AnalyzeBullets(bullets)
	if verbose {
		newPrinter(cmd).PrintBulletAnalysis(analysis)
	}
	return writeJSON(cmd.OutOrStdout(), analyzeBulletsOutput, analysis)
}
