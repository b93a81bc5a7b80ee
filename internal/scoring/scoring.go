// Package scoring provides the shared heuristics behind every recommender:
// score weights, clamping, priority tiers and experience-level matching.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/resume-coach/internal/types"
)

const (
	// MinScore and MaxScore bound every relevance, alignment and completeness score.
	MinScore = 0
	MaxScore = 100
)

// SkillWeights are the point budgets of the skill relevance score.
type SkillWeights struct {
	IndustryRelevance float64 `mapstructure:"industry_relevance" json:"industry_relevance"`
	Popularity        float64 `mapstructure:"popularity" json:"popularity"`
	OverlapPerSkill   float64 `mapstructure:"overlap_per_skill" json:"overlap_per_skill"`
	OverlapCap        float64 `mapstructure:"overlap_cap" json:"overlap_cap"`
	LevelExact        float64 `mapstructure:"level_exact" json:"level_exact"`
	LevelAdjacent     float64 `mapstructure:"level_adjacent" json:"level_adjacent"`
}

// DefaultSkillWeights returns the 40/20/20/20 budget.
func DefaultSkillWeights() SkillWeights {
	return SkillWeights{
		IndustryRelevance: 40,
		Popularity:        20,
		OverlapPerSkill:   5,
		OverlapCap:        20,
		LevelExact:        20,
		LevelAdjacent:     10,
	}
}

// HobbyWeights are the point budgets of the hobby alignment score.
type HobbyWeights struct {
	TraitPerMatch     float64 `mapstructure:"trait_per_match" json:"trait_per_match"`
	TraitCap          float64 `mapstructure:"trait_cap" json:"trait_cap"`
	Popularity        float64 `mapstructure:"popularity" json:"popularity"`
	TechnicalPerMatch float64 `mapstructure:"technical_per_match" json:"technical_per_match"`
	TechnicalCap      float64 `mapstructure:"technical_cap" json:"technical_cap"`
	SeniorityBonus    float64 `mapstructure:"seniority_bonus" json:"seniority_bonus"`
}

// DefaultHobbyWeights returns the 40/30/20/10 budget.
func DefaultHobbyWeights() HobbyWeights {
	return HobbyWeights{
		TraitPerMatch:     13,
		TraitCap:          40,
		Popularity:        30,
		TechnicalPerMatch: 5,
		TechnicalCap:      20,
		SeniorityBonus:    10,
	}
}

// Weights groups every tunable weight.
type Weights struct {
	Skill SkillWeights `mapstructure:"skill" json:"skill"`
	Hobby HobbyWeights `mapstructure:"hobby" json:"hobby"`
}

// DefaultWeights returns the default skill and hobby weights.
func DefaultWeights() Weights {
	return Weights{Skill: DefaultSkillWeights(), Hobby: DefaultHobbyWeights()}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	values := map[string]float64{
		"skill.industry_relevance":  w.Skill.IndustryRelevance,
		"skill.popularity":          w.Skill.Popularity,
		"skill.overlap_per_skill":   w.Skill.OverlapPerSkill,
		"skill.overlap_cap":         w.Skill.OverlapCap,
		"skill.level_exact":         w.Skill.LevelExact,
		"skill.level_adjacent":      w.Skill.LevelAdjacent,
		"hobby.trait_per_match":     w.Hobby.TraitPerMatch,
		"hobby.trait_cap":           w.Hobby.TraitCap,
		"hobby.popularity":          w.Hobby.Popularity,
		"hobby.technical_per_match": w.Hobby.TechnicalPerMatch,
		"hobby.technical_cap":       w.Hobby.TechnicalCap,
		"hobby.seniority_bonus":     w.Hobby.SeniorityBonus,
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if values[k] < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %v", k, values[k])
		}
	}
	return nil
}

// Clamp bounds an integer score to [MinScore, MaxScore].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Round rounds half away from zero and clamps the result to [MinScore, MaxScore].
func Round(score float64) int {
	return Clamp(int(math.Round(score)))
}

// Capped returns count*perMatch, limited to limit.
func Capped(count int, perMatch, limit float64) float64 {
	return math.Min(float64(count)*perMatch, limit)
}

// LevelMatch describes how well a record's experience levels fit a candidate.
type LevelMatch int

// Level match kinds.
const (
	LevelNone LevelMatch = iota
	LevelAdjacent
	LevelExact
)

// MatchLevel reports LevelExact when level is listed, LevelAdjacent when the level
// one step below it is listed, and LevelNone otherwise.
func MatchLevel(levels []types.ExperienceLevel, level types.ExperienceLevel) LevelMatch {
	if contains(levels, level) {
		return LevelExact
	}
	idx := level.Index()
	if idx > 0 && contains(levels, types.ExperienceLevels[idx-1]) {
		return LevelAdjacent
	}
	return LevelNone
}

func contains(levels []types.ExperienceLevel, level types.ExperienceLevel) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

// SkillRelevance computes the 0-100 relevance of a skill for a role.
// industry and popularity are 0-100 inputs; overlap counts related skills the candidate holds.
func (w SkillWeights) SkillRelevance(industry, popularity, overlap int, match LevelMatch) int {
	score := float64(industry) / 100 * w.IndustryRelevance
	score += float64(popularity) / 100 * w.Popularity
	score += Capped(overlap, w.OverlapPerSkill, w.OverlapCap)
	switch match {
	case LevelExact:
		score += w.LevelExact
	case LevelAdjacent:
		score += w.LevelAdjacent
	}
	return Round(score)
}

// HobbyAlignment computes the 0-100 alignment of a hobby with a role.
func (w HobbyWeights) HobbyAlignment(traitMatches, popularity, technicalMatches int, seniorityBonus bool) int {
	score := Capped(traitMatches, w.TraitPerMatch, w.TraitCap)
	score += float64(popularity) / 100 * w.Popularity
	score += Capped(technicalMatches, w.TechnicalPerMatch, w.TechnicalCap)
	if seniorityBonus {
		score += w.SeniorityBonus
	}
	return Round(score)
}

// Tier maps a score to a priority: high above highAbove, medium above mediumAbove, else low.
func Tier(score, highAbove, mediumAbove int) types.Priority {
	switch {
	case score > highAbove:
		return types.PriorityHigh
	case score > mediumAbove:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// ByPriorityThenScore orders by priority weight descending, then score descending.
// It is meant for sort.SliceStable.
func ByPriorityThenScore(pi, pj types.Priority, si, sj int) bool {
	if pi.Weight() != pj.Weight() {
		return pi.Weight() > pj.Weight()
	}
	return si > sj
}

// MeetsThreshold reports whether p ranks at or above threshold.
// An empty or unknown threshold admits everything.
func MeetsThreshold(p, threshold types.Priority) bool {
	if !threshold.Valid() {
		return true
	}
	return p.Weight() >= threshold.Weight()
}

// Limit normalizes a requested suggestion count: negatives become zero.
func Limit(max int) int {
	if max < 0 {
		return 0
	}
	return max
}
