package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/types"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the known job roles",
	RunE:  runRoles,
}

var rolesCategory string

func init() {
	rolesCmd.Flags().StringVar(&rolesCategory, "category", "", "Only list roles in this job category")
	rootCmd.AddCommand(rolesCmd)
}

// roleSummary is the short form of a role printed by the roles command.
type roleSummary struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Category types.JobCategory `json:"category"`
}

func summarizeRoles(roles []types.JobRole) []roleSummary {
	out := make([]roleSummary, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleSummary{ID: r.ID, Title: r.Title, Category: r.Category})
	}
	return out
}

func runRoles(cmd *cobra.Command, _ []string) error {
	kb := knowledge.Default()

	roles := kb.Roles()
	if rolesCategory != "" {
		roles = kb.RolesByCategory(types.JobCategory(rolesCategory))
		if len(roles) == 0 {
			return fmt.Errorf("no roles in category %q", rolesCategory)
		}
	}
	return writeJSON(cmd.OutOrStdout(), "", summarizeRoles(roles))
}
