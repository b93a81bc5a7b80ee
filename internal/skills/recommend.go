// Package skills provides skill suggestions for a target job role.
package skills

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/scoring"
	"github.com/jonathan/resume-coach/internal/types"
)

const (
	// complementaryRelevanceFloor is the industry relevance a related skill must exceed
	// to be proposed as complementary.
	complementaryRelevanceFloor = 30
	// maxComplementary bounds how many complementary candidates are considered.
	maxComplementary = 5
	// categoryRelevanceFloor is the minimum industry relevance for category suggestions.
	categoryRelevanceFloor = 30
)

// Recommender suggests skills from the knowledge base.
type Recommender struct {
	kb      *knowledge.Base
	weights scoring.SkillWeights
}

// NewRecommender creates a Recommender with the given weights.
func NewRecommender(kb *knowledge.Base, weights scoring.SkillWeights) *Recommender {
	return &Recommender{kb: kb, weights: weights}
}

// heldSet holds the candidate's skills, lower-cased.
type heldSet map[string]bool

func newHeldSet(skills []string) heldSet {
	held := make(heldSet, len(skills))
	for _, s := range skills {
		held[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return held
}

func (h heldSet) has(name string) bool {
	return h[strings.ToLower(strings.TrimSpace(name))]
}

// Suggest returns up to max skill suggestions for the job context.
// An unresolved role yields no suggestions.
func (r *Recommender) Suggest(ctx types.JobContext, max int) []types.SkillSuggestion {
	max = scoring.Limit(max)
	role, ok := r.kb.Role(ctx.TargetRole)
	if !ok || max == 0 {
		return []types.SkillSuggestion{}
	}

	held := newHeldSet(ctx.CurrentSkills)
	suggested := make(map[string]bool)
	var suggestions []types.SkillSuggestion

	addRoleSkills := func(names []string, priority types.Priority, reason string, primary bool) {
		for _, name := range names {
			if held.has(name) {
				continue
			}
			record, found := r.kb.Skill(name)
			if !found || !record.SupportsLevel(ctx.ExperienceLevel) {
				continue
			}
			key := strings.ToLower(record.Name)
			if suggested[key] {
				continue
			}
			suggested[key] = true

			suggestions = append(suggestions, types.SkillSuggestion{
				Suggestion: types.Suggestion{
					ID:       suggestionID(record.Name),
					Type:     types.SuggestionSkill,
					Priority: priority,
					Reason:   reason,
					Metadata: map[string]any{
						"popularity": record.Popularity,
						"isPrimary":  primary,
					},
				},
				SkillName:      record.Name,
				Category:       record.Category,
				RelevanceScore: r.relevance(record, role.ID, ctx.ExperienceLevel, held),
				Reasoning:      record.Description,
				RelatedSkills:  heldRelated(record, held),
			})
		}
	}

	addRoleSkills(role.PrimarySkills, types.PriorityHigh, fmt.Sprintf("Essential skill for %s", role.Title), true)
	addRoleSkills(role.SecondarySkills, types.PriorityMedium, fmt.Sprintf("Commonly used in %s roles", role.Title), false)

	for _, record := range r.complementary(ctx.CurrentSkills, role.ID) {
		key := strings.ToLower(record.Name)
		if held.has(record.Name) || suggested[key] {
			continue
		}
		suggested[key] = true

		suggestions = append(suggestions, types.SkillSuggestion{
			Suggestion: types.Suggestion{
				ID:       suggestionID(record.Name),
				Type:     types.SuggestionSkill,
				Priority: types.PriorityLow,
				Reason:   "Complements your existing skills",
				Metadata: map[string]any{
					"popularity":      record.Popularity,
					"isComplementary": true,
				},
			},
			SkillName:      record.Name,
			Category:       record.Category,
			RelevanceScore: r.relevance(record, role.ID, ctx.ExperienceLevel, held),
			Reasoning:      worksWellWith(record.RelatedSkills),
			RelatedSkills:  append([]string(nil), record.RelatedSkills...),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return scoring.ByPriorityThenScore(
			suggestions[i].Priority, suggestions[j].Priority,
			suggestions[i].RelevanceScore, suggestions[j].RelevanceScore,
		)
	})

	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	if suggestions == nil {
		suggestions = []types.SkillSuggestion{}
	}
	return suggestions
}

// complementary collects related skills of the candidate's skills whose relevance for
// the role exceeds the floor, most popular first, capped at maxComplementary.
func (r *Recommender) complementary(current []string, roleID string) []types.SkillRecord {
	seen := make(map[string]bool)
	var out []types.SkillRecord

	for _, name := range current {
		record, ok := r.kb.Skill(name)
		if !ok {
			continue
		}
		for _, relatedName := range record.RelatedSkills {
			key := strings.ToLower(relatedName)
			if seen[key] {
				continue
			}
			related, ok := r.kb.Skill(relatedName)
			if !ok {
				continue
			}
			if related.IndustryRelevance[roleID] > complementaryRelevanceFloor {
				out = append(out, related)
				seen[key] = true
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	if len(out) > maxComplementary {
		out = out[:maxComplementary]
	}
	return out
}

func (r *Recommender) relevance(record types.SkillRecord, roleID string, level types.ExperienceLevel, held heldSet) int {
	return r.weights.SkillRelevance(
		record.IndustryRelevance[roleID],
		record.Popularity,
		len(heldRelated(record, held)),
		scoring.MatchLevel(record.ExperienceLevels, level),
	)
}

// SuggestByCategory returns skills in a category that the candidate does not hold and
// whose relevance for the role is at least 30, highest relevance first.
func (r *Recommender) SuggestByCategory(category types.SkillCategory, roleID string, current []string, max int) []types.SkillSuggestion {
	max = scoring.Limit(max)
	held := newHeldSet(current)
	suggestions := []types.SkillSuggestion{}

	for _, record := range r.kb.SkillsByCategory(category) {
		if held.has(record.Name) {
			continue
		}
		relevance := record.IndustryRelevance[roleID]
		if relevance < categoryRelevanceFloor {
			continue
		}
		suggestions = append(suggestions, types.SkillSuggestion{
			Suggestion: types.Suggestion{
				ID:       suggestionID(record.Name),
				Type:     types.SuggestionSkill,
				Priority: scoring.Tier(relevance, 70, 50),
				Reason:   fmt.Sprintf("Popular %s skill", category),
				Metadata: map[string]any{"popularity": record.Popularity},
			},
			SkillName:      record.Name,
			Category:       record.Category,
			RelevanceScore: scoring.Clamp(relevance),
			Reasoning:      record.Description,
			RelatedSkills:  append([]string(nil), record.RelatedSkills...),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].RelevanceScore > suggestions[j].RelevanceScore
	})
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

func suggestionID(name string) string {
	return "skill-" + knowledge.Slug(name)
}

// heldRelated returns the record's related skills that the candidate already holds.
func heldRelated(record types.SkillRecord, held heldSet) []string {
	out := []string{}
	for _, related := range record.RelatedSkills {
		if held.has(related) {
			out = append(out, related)
		}
	}
	return out
}

func worksWellWith(related []string) string {
	if len(related) > 2 {
		related = related[:2]
	}
	return "Works well with " + strings.Join(related, " and ")
}
