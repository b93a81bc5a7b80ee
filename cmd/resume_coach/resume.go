package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/types"
	"github.com/jonathan/resume-coach/internal/validation"
)

var validateResumeCmd = &cobra.Command{
	Use:   "validate-resume",
	Short: "Validate a resume file",
	Long:  "Checks a resume JSON file against the resume schema, then validates every field. Exits non-zero when any field is invalid.",
	RunE:  runValidateResume,
}

var newResumeCmd = &cobra.Command{
	Use:   "new-resume",
	Short: "Create an empty resume file",
	RunE:  runNewResume,
}

var (
	validateResumePath string

	newResumeOutput string
	newResumeName   string
	newResumeRole   string
	newResumeLevel  string
)

func init() {
	validateResumeCmd.Flags().StringVarP(&validateResumePath, "resume", "r", "", "Path to resume JSON file (required)")
	markRequired(validateResumeCmd, "resume")

	newResumeCmd.Flags().StringVarP(&newResumeOutput, "out", "o", "", "Path to output resume JSON file (required)")
	newResumeCmd.Flags().StringVar(&newResumeName, "name", "", "Full name")
	newResumeCmd.Flags().StringVar(&newResumeRole, "role", "", "Target role")
	newResumeCmd.Flags().StringVarP(&newResumeLevel, "level", "l", "", "Experience level (entry, junior, mid, senior, lead)")
	markRequired(newResumeCmd, "out")

	rootCmd.AddCommand(validateResumeCmd)
	rootCmd.AddCommand(newResumeCmd)
}

func runValidateResume(cmd *cobra.Command, _ []string) error {
	_, report, err := validation.ValidateFile(validateResumePath)
	if err != nil {
		return err
	}

	if err := writeJSON(cmd.OutOrStdout(), "", report); err != nil {
		return err
	}
	if !report.Valid {
		return fmt.Errorf("validation failed: %d field errors", len(report.Errors))
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Validation passed")
	return nil
}

// scaffoldResume returns an empty resume with a fresh id and creation timestamps.
func scaffoldResume(name, role string, level types.ExperienceLevel, now time.Time) types.Resume {
	stamp := now.UTC().Format(time.RFC3339)
	return types.Resume{
		ID:           uuid.NewString(),
		PersonalInfo: types.PersonalInfo{FullName: name},
		Experience:   []types.Experience{},
		Skills:       []types.Skill{},
		Projects:     []types.Project{},
		Hobbies:      []types.Hobby{},
		References:   []types.Reference{},
		Metadata: types.Metadata{
			TargetRole:      role,
			ExperienceLevel: level,
			CreatedAt:       stamp,
			LastModified:    stamp,
		},
	}
}

func runNewResume(cmd *cobra.Command, _ []string) error {
	level, err := parseLevel(newResumeLevel)
	if err != nil {
		return err
	}

	resume := scaffoldResume(newResumeName, newResumeRole, level, time.Now())
	if err := writeJSON(cmd.OutOrStdout(), newResumeOutput, resume); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Created resume %s at %s\n", resume.ID, newResumeOutput)
	return nil
}
