package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/hobbies"
	"github.com/jonathan/resume-coach/internal/types"
)

var recommendHobbiesCmd = &cobra.Command{
	Use:   "recommend-hobbies",
	Short: "Recommend hobbies that align with a target role",
	Long:  "Matches hobby traits against the role's desired traits. Without a known role the most popular hobbies are returned.",
	RunE:  runRecommendHobbies,
}

var analyzeHobbyCmd = &cobra.Command{
	Use:   "analyze-hobby",
	Short: "Rate how relevant a single hobby is for a role",
	RunE:  runAnalyzeHobby,
}

var detectWeakHobbiesCmd = &cobra.Command{
	Use:   "detect-weak-hobbies",
	Short: "Flag passive, vague or overly short hobbies",
	RunE:  runDetectWeakHobbies,
}

var (
	recommendHobbiesRole      string
	recommendHobbiesLevel     string
	recommendHobbiesSkills    []string
	recommendHobbiesInterests []string
	recommendHobbiesCategory  string
	recommendHobbiesOutput    string
	recommendHobbiesFlags     suggestFlags

	analyzeHobbyName string
	analyzeHobbyRole string

	detectWeakHobbies []string
)

func init() {
	recommendHobbiesCmd.Flags().StringVarP(&recommendHobbiesRole, "role", "r", "", "Target role id or title")
	recommendHobbiesCmd.Flags().StringVarP(&recommendHobbiesLevel, "level", "l", "", "Experience level (entry, junior, mid, senior, lead)")
	recommendHobbiesCmd.Flags().StringSliceVarP(&recommendHobbiesSkills, "skill", "s", nil, "Skill on the resume (repeatable)")
	recommendHobbiesCmd.Flags().StringSliceVar(&recommendHobbiesInterests, "interest", nil, "Existing interest (repeatable)")
	recommendHobbiesCmd.Flags().StringVar(&recommendHobbiesCategory, "category", "", "Only suggest popular hobbies from this category (ignores role matching)")
	recommendHobbiesCmd.Flags().StringVarP(&recommendHobbiesOutput, "out", "o", "", "Path to output JSON file (default stdout)")
	recommendHobbiesFlags.register(recommendHobbiesCmd, false)

	analyzeHobbyCmd.Flags().StringVar(&analyzeHobbyName, "hobby", "", "Hobby to analyze (required)")
	analyzeHobbyCmd.Flags().StringVarP(&analyzeHobbyRole, "role", "r", "", "Target role id or title")
	markRequired(analyzeHobbyCmd, "hobby")

	detectWeakHobbiesCmd.Flags().StringArrayVar(&detectWeakHobbies, "hobby", nil, "Hobby to check (repeatable, required)")
	markRequired(detectWeakHobbiesCmd, "hobby")

	rootCmd.AddCommand(recommendHobbiesCmd)
	rootCmd.AddCommand(analyzeHobbyCmd)
	rootCmd.AddCommand(detectWeakHobbiesCmd)
}

var validHobbyCategories = map[types.HobbyCategory]bool{
	types.HobbySports:     true,
	types.HobbyCreative:   true,
	types.HobbyTechnical:  true,
	types.HobbyCommunity:  true,
	types.HobbyLeadership: true,
	types.HobbyOther:      true,
}

func runRecommendHobbies(cmd *cobra.Command, _ []string) error {
	level, err := parseLevel(recommendHobbiesLevel)
	if err != nil {
		return err
	}
	opts, err := recommendHobbiesFlags.options(cmd)
	if err != nil {
		return err
	}

	ctx := types.ProfileContext{
		TargetRole:      recommendHobbiesRole,
		ExperienceLevel: level,
		Skills:          recommendHobbiesSkills,
		Interests:       recommendHobbiesInterests,
	}
	if err := ctx.Validate(); err != nil {
		return fmt.Errorf("invalid profile context: %w", err)
	}

	eng := newEngine()
	var suggestions []types.HobbySuggestion
	if recommendHobbiesCategory != "" {
		category := types.HobbyCategory(strings.ToLower(strings.TrimSpace(recommendHobbiesCategory)))
		if !validHobbyCategories[category] {
			return fmt.Errorf("unknown hobby category %q", recommendHobbiesCategory)
		}
		limit := eng.Config().MaxSuggestions
		if cmd.Flags().Changed("max") {
			limit = recommendHobbiesFlags.max
		}
		suggestions = eng.Hobbies().SuggestByCategory(category, limit)
	} else {
		suggestions = eng.RecommendHobbies(ctx, opts...)
	}
	if verbose {
		newPrinter(cmd).PrintHobbySuggestions(suggestions)
	}
	return writeJSON(cmd.OutOrStdout(), recommendHobbiesOutput, suggestions)
}

func runAnalyzeHobby(cmd *cobra.Command, _ []string) error {
	relevance := newEngine().Hobbies().AnalyzeRelevance(analyzeHobbyName, analyzeHobbyRole)
	return writeJSON(cmd.OutOrStdout(), "", relevance)
}

func runDetectWeakHobbies(cmd *cobra.Command, _ []string) error {
	report := hobbies.DetectWeak(detectWeakHobbies)
	if verbose {
		newPrinter(cmd).PrintWeakHobbies(report)
	}
	return writeJSON(cmd.OutOrStdout(), "", report)
}
