package scoring

import (
	"testing"

	"github.com/jonathan/resume-coach/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClampAndRound(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5))
	assert.Equal(t, 100, Clamp(140))
	assert.Equal(t, 42, Clamp(42))

	assert.Equal(t, 85, Round(84.6))
	assert.Equal(t, 85, Round(84.5))
	assert.Equal(t, 100, Round(120.2))
	assert.Equal(t, 0, Round(-3))
}

func TestMatchLevel(t *testing.T) {
	levels := []types.ExperienceLevel{types.LevelJunior, types.LevelMid}

	assert.Equal(t, LevelExact, MatchLevel(levels, types.LevelMid))
	assert.Equal(t, LevelAdjacent, MatchLevel(levels, types.LevelSenior))
	assert.Equal(t, LevelNone, MatchLevel(levels, types.LevelLead))
	assert.Equal(t, LevelNone, MatchLevel(levels, types.LevelEntry))
	assert.Equal(t, LevelNone, MatchLevel(levels, "unknown"))
}

func TestSkillRelevance(t *testing.T) {
	w := DefaultSkillWeights()

	tests := []struct {
		name       string
		industry   int
		popularity int
		overlap    int
		match      LevelMatch
		want       int
	}{
		{name: "react for frontend mid", industry: 100, popularity: 98, overlap: 1, match: LevelExact, want: 85},
		{name: "overlap is capped", industry: 100, popularity: 100, overlap: 9, match: LevelExact, want: 100},
		{name: "adjacent level", industry: 50, popularity: 50, overlap: 0, match: LevelAdjacent, want: 40},
		{name: "nothing", industry: 0, popularity: 0, overlap: 0, match: LevelNone, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.SkillRelevance(tt.industry, tt.popularity, tt.overlap, tt.match))
		})
	}
}

func TestSkillRelevance_HeavyWeightsStayBounded(t *testing.T) {
	w := SkillWeights{IndustryRelevance: 400, Popularity: 200, OverlapPerSkill: 50, OverlapCap: 200, LevelExact: 100}
	assert.Equal(t, 100, w.SkillRelevance(100, 100, 10, LevelExact))
}

func TestHobbyAlignment(t *testing.T) {
	w := DefaultHobbyWeights()

	// 1 trait (13) + 75% popularity (22.5) -> 35.5 -> 36
	assert.Equal(t, 36, w.HobbyAlignment(1, 75, 0, false))
	// 4 traits capped at 40 + 30 + 4 tech matches capped at 20 + 10
	assert.Equal(t, 100, w.HobbyAlignment(4, 100, 6, true))
	assert.Equal(t, 0, w.HobbyAlignment(0, 0, 0, false))
}

func TestTier(t *testing.T) {
	assert.Equal(t, types.PriorityHigh, Tier(71, 70, 50))
	assert.Equal(t, types.PriorityMedium, Tier(70, 70, 50))
	assert.Equal(t, types.PriorityMedium, Tier(51, 70, 50))
	assert.Equal(t, types.PriorityLow, Tier(50, 70, 50))
}

func TestByPriorityThenScore(t *testing.T) {
	assert.True(t, ByPriorityThenScore(types.PriorityHigh, types.PriorityLow, 10, 90))
	assert.False(t, ByPriorityThenScore(types.PriorityLow, types.PriorityHigh, 90, 10))
	assert.True(t, ByPriorityThenScore(types.PriorityMedium, types.PriorityMedium, 60, 50))
	assert.False(t, ByPriorityThenScore(types.PriorityMedium, types.PriorityMedium, 50, 50))
}

func TestMeetsThreshold(t *testing.T) {
	assert.True(t, MeetsThreshold(types.PriorityLow, ""))
	assert.True(t, MeetsThreshold(types.PriorityLow, types.PriorityLow))
	assert.False(t, MeetsThreshold(types.PriorityLow, types.PriorityMedium))
	assert.True(t, MeetsThreshold(types.PriorityHigh, types.PriorityMedium))
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	w := DefaultWeights()
	w.Hobby.Popularity = -1
	err := w.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hobby.popularity")
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 0, Limit(-3))
	assert.Equal(t, 7, Limit(7))
}
