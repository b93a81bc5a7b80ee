// Package hobbies recommends hobbies that support a target role and reviews the ones a
// candidate already lists.
package hobbies

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/scoring"
	"github.com/jonathan/resume-coach/internal/types"
)

// popularFloor is the minimum popularity of a hobby in the generic fallback list.
const popularFloor = 70

// technicalKeywords are the skills that earn technical hobbies extra alignment.
var technicalKeywords = []string{"javascript", "python", "react", "node.js"}

// Recommender ranks hobbies against a candidate profile.
type Recommender struct {
	kb      *knowledge.Base
	weights scoring.HobbyWeights
}

// NewRecommender creates a Recommender with the given weights.
func NewRecommender(kb *knowledge.Base, weights scoring.HobbyWeights) *Recommender {
	return &Recommender{kb: kb, weights: weights}
}

// Recommend returns up to max hobby suggestions for the profile.
// Without a resolvable target role it falls back to the most popular hobbies.
func (r *Recommender) Recommend(ctx types.ProfileContext, max int) []types.HobbySuggestion {
	max = scoring.Limit(max)

	role, ok := r.kb.Role(ctx.TargetRole)
	if !ok {
		return r.popular(max)
	}

	suggestions := []types.HobbySuggestion{}
	for _, hobby := range r.kb.HobbiesByRole(role.ID) {
		matched := matchingTraits(hobby.Traits, role.DesiredTraits)
		score := r.alignment(hobby, len(matched), ctx)

		suggestions = append(suggestions, types.HobbySuggestion{
			Suggestion: types.Suggestion{
				ID:       suggestionID(hobby.Name),
				Type:     types.SuggestionHobby,
				Priority: scoring.Tier(score, 70, 50),
				Reason:   fmt.Sprintf("Aligns with %s role", role.Title),
				Metadata: map[string]any{
					"alignmentScore": score,
					"popularity":     hobby.Popularity,
					"traits":         append([]string(nil), hobby.Traits...),
				},
			},
			HobbyName:           hobby.Name,
			Description:         hobby.Description,
			Category:            hobby.Category,
			AlignmentReason:     alignmentReason(hobby.Traits, matched),
			ProfessionalBenefit: hobby.ProfessionalBenefit,
			AlignmentScore:      score,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return scoring.ByPriorityThenScore(
			suggestions[i].Priority, suggestions[j].Priority,
			suggestions[i].AlignmentScore, suggestions[j].AlignmentScore,
		)
	})
	if len(suggestions) > max {
		suggestions = suggestions[:max]
	}
	return suggestions
}

func (r *Recommender) alignment(hobby types.HobbyRecord, traitMatches int, ctx types.ProfileContext) int {
	technical := 0
	if hobby.Category == types.HobbyTechnical {
		technical = countTechnicalSkills(ctx.Skills)
	}
	senior := (ctx.ExperienceLevel == types.LevelSenior || ctx.ExperienceLevel == types.LevelLead) &&
		(hobby.Category == types.HobbyLeadership || hobby.Category == types.HobbyCommunity)

	return r.weights.HobbyAlignment(traitMatches, hobby.Popularity, technical, senior)
}

func (r *Recommender) popular(max int) []types.HobbySuggestion {
	suggestions := []types.HobbySuggestion{}
	for _, hobby := range r.kb.PopularHobbies(popularFloor) {
		if len(suggestions) == max {
			break
		}
		suggestions = append(suggestions, types.HobbySuggestion{
			Suggestion: types.Suggestion{
				ID:       suggestionID(hobby.Name),
				Type:     types.SuggestionHobby,
				Priority: types.PriorityMedium,
				Reason:   "Popular and professionally relevant",
				Metadata: map[string]any{"popularity": hobby.Popularity},
			},
			HobbyName:           hobby.Name,
			Description:         hobby.Description,
			Category:            hobby.Category,
			AlignmentReason:     "Widely appreciated by employers",
			ProfessionalBenefit: hobby.ProfessionalBenefit,
		})
	}
	return suggestions
}

// SuggestByCategory returns the most popular hobbies of a category.
func (r *Recommender) SuggestByCategory(category types.HobbyCategory, max int) []types.HobbySuggestion {
	max = scoring.Limit(max)

	hobbies := r.kb.HobbiesByCategory(category)
	sort.SliceStable(hobbies, func(i, j int) bool {
		return hobbies[i].Popularity > hobbies[j].Popularity
	})
	if len(hobbies) > max {
		hobbies = hobbies[:max]
	}

	suggestions := make([]types.HobbySuggestion, 0, len(hobbies))
	for _, hobby := range hobbies {
		priority := types.PriorityMedium
		if hobby.Popularity > 75 {
			priority = types.PriorityHigh
		}
		suggestions = append(suggestions, types.HobbySuggestion{
			Suggestion: types.Suggestion{
				ID:       suggestionID(hobby.Name),
				Type:     types.SuggestionHobby,
				Priority: priority,
				Reason:   fmt.Sprintf("Popular %s hobby", category),
				Metadata: map[string]any{"popularity": hobby.Popularity},
			},
			HobbyName:           hobby.Name,
			Description:         hobby.Description,
			Category:            hobby.Category,
			AlignmentReason:     hobby.ProfessionalBenefit,
			ProfessionalBenefit: hobby.ProfessionalBenefit,
		})
	}
	return suggestions
}

// AnalyzeRelevance classifies a freeform hobby against the knowledge base.
// Unknown hobbies score 50 and are reported as not relevant. Known hobbies that are not
// aligned with a given target role score 70% of their popularity.
func (r *Recommender) AnalyzeRelevance(hobbyName, targetRole string) types.HobbyRelevance {
	hobby, ok := r.kb.Hobby(hobbyName)
	if !ok {
		return types.HobbyRelevance{
			IsRelevant: false,
			Score:      50,
			Feedback:   "Consider adding more context or choosing a hobby with clear professional benefits",
		}
	}

	if strings.TrimSpace(targetRole) == "" {
		return types.HobbyRelevance{IsRelevant: true, Score: hobby.Popularity, Feedback: hobby.ProfessionalBenefit}
	}

	if role, found := r.kb.Role(targetRole); found && hobby.AlignedWith(role.ID) {
		return types.HobbyRelevance{
			IsRelevant: true,
			Score:      hobby.Popularity,
			Feedback:   "Great choice! " + hobby.ProfessionalBenefit,
		}
	}

	return types.HobbyRelevance{
		IsRelevant: true,
		Score:      scoring.Clamp(int(math.Round(float64(hobby.Popularity) * 0.7))),
		Feedback:   "This hobby is valid but may be more relevant for other roles. " + hobby.ProfessionalBenefit,
	}
}

// matchingTraits returns the hobby traits contained in some desired trait.
func matchingTraits(traits, desired []string) []string {
	matched := []string{}
	for _, trait := range traits {
		t := normalizeTrait(trait)
		for _, d := range desired {
			if strings.Contains(normalizeTrait(d), t) {
				matched = append(matched, trait)
				break
			}
		}
	}
	return matched
}

// normalizeTrait lower-cases a trait and treats hyphens as spaces.
func normalizeTrait(trait string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(trait)), "-", " ")
}

func alignmentReason(traits, matched []string) string {
	if len(matched) > 0 {
		return "Demonstrates " + strings.Join(matched[:min(2, len(matched))], " and ")
	}
	if len(traits) > 0 {
		return "Shows " + traits[0]
	}
	return "Shows valuable qualities"
}

func countTechnicalSkills(skills []string) int {
	n := 0
	for _, s := range skills {
		lower := strings.ToLower(s)
		for _, kw := range technicalKeywords {
			if strings.Contains(lower, kw) {
				n++
				break
			}
		}
	}
	return n
}

func suggestionID(name string) string {
	return "hobby-" + knowledge.Slug(name)
}
