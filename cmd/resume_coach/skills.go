package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/types"
)

var suggestSkillsCmd = &cobra.Command{
	Use:   "suggest-skills",
	Short: "Suggest skills to add for a target role",
	Long:  "Scores the role's primary, secondary and complementary skills against the current skill set and prints the ranked suggestions as JSON.",
	RunE:  runSuggestSkills,
}

var (
	suggestSkillsRole     string
	suggestSkillsLevel    string
	suggestSkillsIndustry string
	suggestSkillsSkills   []string
	suggestSkillsOutput   string
	suggestSkillsFlags    suggestFlags
)

func init() {
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsRole, "role", "r", "", "Target role id or title (required)")
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsLevel, "level", "l", "", "Experience level (entry, junior, mid, senior, lead)")
	suggestSkillsCmd.Flags().StringVar(&suggestSkillsIndustry, "industry", "", "Target industry")
	suggestSkillsCmd.Flags().StringSliceVarP(&suggestSkillsSkills, "skill", "s", nil, "Skill already on the resume (repeatable)")
	suggestSkillsCmd.Flags().StringVarP(&suggestSkillsOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	suggestSkillsFlags.register(suggestSkillsCmd, true)
	markRequired(suggestSkillsCmd, "role")

	rootCmd.AddCommand(suggestSkillsCmd)
}

func runSuggestSkills(cmd *cobra.Command, _ []string) error {
	level, err := parseLevel(suggestSkillsLevel)
	if err != nil {
		return err
	}
	opts, err := suggestSkillsFlags.options(cmd)
	if err != nil {
		return err
	}

	ctx := types.JobContext{
		TargetRole:      suggestSkillsRole,
		TargetIndustry:  suggestSkillsIndustry,
		ExperienceLevel: level,
		CurrentSkills:   suggestSkillsSkills,
	}
	if err := ctx.Validate(); err != nil {
		return fmt.Errorf("invalid job context: %w", err)
	}

	suggestions := newEngine().SuggestSkills(ctx, opts...)
	if verbose {
		newPrinter(cmd).PrintSkillSuggestions(suggestions)
	}
	return writeJSON(cmd.OutOrStdout(), suggestSkillsOutput, suggestions)
}
