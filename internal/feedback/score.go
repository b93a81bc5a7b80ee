package feedback

import (
	"github.com/jonathan/resume-coach/internal/experience"
	"github.com/jonathan/resume-coach/internal/types"
)

// Point budgets of the completeness score.
const (
	pointsName         = 8
	pointsEmail        = 8
	pointsPhone        = 5
	pointsSummary      = 4
	pointsExperience   = 10
	pointsBulletDepth  = 10
	pointsMetrics      = 5
	pointsActionVerbs  = 5
	pointsManySkills   = 15
	pointsAnySkills    = 10
	pointsSkillVariety = 10
	pointsPerProject   = 5
	pointsPerHobby     = 5
	maxScore           = 100
)

// CompletenessScore rates how complete a resume is on a 0-100 scale.
func CompletenessScore(r *types.Resume) int {
	score := 0

	info := r.PersonalInfo
	if !blank(info.FullName) {
		score += pointsName
	}
	if !blank(info.Email) {
		score += pointsEmail
	}
	if !blank(info.Phone) {
		score += pointsPhone
	}
	if hasStrongSummary(info.Summary) {
		score += pointsSummary
	}

	if len(r.Experience) > 0 {
		score += pointsExperience

		deep := true
		for _, exp := range r.Experience {
			if len(exp.BulletPoints) < minBulletsPerEntry {
				deep = false
				break
			}
		}
		if deep {
			score += pointsBulletDepth
		}

		bullets := r.AllBulletPoints()
		if experience.HasMetrics(bullets) {
			score += pointsMetrics
		}
		if experience.HasActionVerbs(bullets) {
			score += pointsActionVerbs
		}
	}

	switch n := len(r.Skills); {
	case n >= minSkillCount:
		score += pointsManySkills
	case n > 0:
		score += pointsAnySkills
	}
	if distinctSkillCategories(r.Skills) >= minSkillCategories {
		score += pointsSkillVariety
	}

	score += pointsPerProject * min(len(r.Projects), 2)
	score += pointsPerHobby * min(len(r.Hobbies), 2)

	return min(score, maxScore)
}

// distinctSkillCategories counts the non-empty categories among skills.
func distinctSkillCategories(skills []types.Skill) int {
	seen := make(map[types.SkillCategory]bool, len(skills))
	for _, s := range skills {
		if s.Category != "" {
			seen[s.Category] = true
		}
	}
	return len(seen)
}
