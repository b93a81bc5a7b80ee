package hobbies

import (
	"testing"

	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/scoring"
	"github.com/jonathan/resume-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecommender() *Recommender {
	return NewRecommender(knowledge.Default(), scoring.DefaultHobbyWeights())
}

func hobbyNames(suggestions []types.HobbySuggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.HobbyName)
	}
	return out
}

func TestRecommend_FrontendDeveloper(t *testing.T) {
	r := newTestRecommender()

	got := r.Recommend(types.ProfileContext{
		TargetRole:      "frontend-developer",
		ExperienceLevel: types.LevelMid,
		Skills:          []string{"JavaScript", "React"},
	}, 4)

	require.Equal(t, []string{"Photography", "Cooking/Baking", "Game Development", "Personal Coding Projects"}, hobbyNames(got))

	photo := got[0]
	assert.Equal(t, "hobby-photography", photo.ID)
	assert.Equal(t, types.SuggestionHobby, photo.Type)
	assert.Equal(t, 50, photo.AlignmentScore)
	assert.Equal(t, types.PriorityLow, photo.Priority)
	assert.Equal(t, "Aligns with Frontend Developer role", photo.Reason)
	assert.Equal(t, "Demonstrates creativity and attention-to-detail", photo.AlignmentReason)
	assert.Equal(t, 50, photo.Metadata["alignmentScore"])

	// Technical hobbies gain 5 points per recognized skill.
	assert.Equal(t, 44, got[2].AlignmentScore)
	assert.Equal(t, 37, got[3].AlignmentScore)
	assert.Equal(t, "Shows passion", got[3].AlignmentReason)
}

func TestRecommend_SeniorCommunityBonus(t *testing.T) {
	r := newTestRecommender()

	got := r.Recommend(types.ProfileContext{
		TargetRole:      "Product Manager",
		ExperienceLevel: types.LevelSenior,
	}, 10)

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "Mentoring/Teaching", got[0].HobbyName)
	assert.Equal(t, 60, got[0].AlignmentScore)
	assert.Equal(t, types.PriorityMedium, got[0].Priority)
	assert.Equal(t, "Demonstrates leadership and communication", got[0].AlignmentReason)
	assert.Equal(t, "Public Speaking/Conferences", got[1].HobbyName)
	assert.Equal(t, 57, got[1].AlignmentScore)

	junior := r.Recommend(types.ProfileContext{TargetRole: "product-manager", ExperienceLevel: types.LevelJunior}, 10)
	for _, s := range junior {
		if s.HobbyName == "Mentoring/Teaching" {
			assert.Equal(t, 50, s.AlignmentScore)
		}
	}
}

func TestRecommend_RoleMissFallsBackToPopular(t *testing.T) {
	r := newTestRecommender()

	for _, role := range []string{"", "not-a-real-role-xyz"} {
		got := r.Recommend(types.ProfileContext{TargetRole: role}, 3)

		assert.Equal(t, []string{"Personal Coding Projects", "Open Source Contributions", "Traveling"}, hobbyNames(got))
		for _, s := range got {
			assert.Equal(t, types.PriorityMedium, s.Priority)
			assert.Equal(t, "Popular and professionally relevant", s.Reason)
			assert.Equal(t, "Widely appreciated by employers", s.AlignmentReason)
		}
	}

	all := r.Recommend(types.ProfileContext{TargetRole: "not-a-real-role-xyz"}, 100)
	assert.Len(t, all, 17)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Metadata["popularity"].(int), all[i].Metadata["popularity"].(int))
	}
}

func TestRecommend_Properties(t *testing.T) {
	r := newTestRecommender()
	skillSets := [][]string{nil, {"JavaScript", "Python", "React", "Node.js", "TypeScript"}}

	for _, role := range knowledge.Default().Roles() {
		for _, level := range types.ExperienceLevels {
			for _, skills := range skillSets {
				ctx := types.ProfileContext{TargetRole: role.ID, ExperienceLevel: level, Skills: skills}
				got := r.Recommend(ctx, 5)

				assert.LessOrEqual(t, len(got), 5)
				assert.Equal(t, got, r.Recommend(ctx, 5))
				for i, s := range got {
					assert.GreaterOrEqual(t, s.AlignmentScore, 0)
					assert.LessOrEqual(t, s.AlignmentScore, 100)
					assert.Equal(t, scoring.Tier(s.AlignmentScore, 70, 50), s.Priority)
					if i > 0 {
						prev := got[i-1]
						assert.GreaterOrEqual(t, prev.Priority.Weight(), s.Priority.Weight())
						if prev.Priority == s.Priority {
							assert.GreaterOrEqual(t, prev.AlignmentScore, s.AlignmentScore)
						}
					}
				}
			}
		}
	}
}

func TestRecommend_ZeroAndNegativeMax(t *testing.T) {
	r := newTestRecommender()

	assert.Empty(t, r.Recommend(types.ProfileContext{TargetRole: "frontend-developer"}, 0))
	assert.Empty(t, r.Recommend(types.ProfileContext{TargetRole: "frontend-developer"}, -2))
	assert.Empty(t, r.Recommend(types.ProfileContext{}, -2))
}

func TestSuggestByCategory(t *testing.T) {
	r := newTestRecommender()

	got := r.SuggestByCategory(types.HobbyTechnical, 4)

	assert.Equal(t, []string{"Personal Coding Projects", "Open Source Contributions", "Hackathons", "Game Development"}, hobbyNames(got))
	assert.Equal(t, types.PriorityHigh, got[0].Priority)
	assert.Equal(t, types.PriorityHigh, got[1].Priority)
	assert.Equal(t, types.PriorityMedium, got[2].Priority)
	assert.Equal(t, "Popular technical hobby", got[0].Reason)
	assert.Equal(t, got[0].ProfessionalBenefit, got[0].AlignmentReason)

	assert.Empty(t, r.SuggestByCategory("underwater", 5))
}

func TestAnalyzeRelevance(t *testing.T) {
	r := newTestRecommender()
	photo, ok := knowledge.Default().Hobby("Photography")
	require.True(t, ok)

	tests := []struct {
		name       string
		hobby      string
		role       string
		want       int
		relevant   bool
		feedbackOf string
	}{
		{"aligned role", "photography", "frontend-developer", 80, true, "Great choice! " + photo.ProfessionalBenefit},
		{"other role", "Photography", "backend-developer", 56, true, "This hobby is valid but may be more relevant for other roles. " + photo.ProfessionalBenefit},
		{"unresolved role", "Photography", "not-a-role", 56, true, "This hobby is valid but may be more relevant for other roles. " + photo.ProfessionalBenefit},
		{"no role", "Photography", "", 80, true, photo.ProfessionalBenefit},
		{"unknown hobby", "Underwater basket weaving", "frontend-developer", 50, false, "Consider adding more context or choosing a hobby with clear professional benefits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.AnalyzeRelevance(tt.hobby, tt.role)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.relevant, got.IsRelevant)
			assert.Equal(t, tt.feedbackOf, got.Feedback)
		})
	}
}
