package types

import "github.com/go-playground/validator/v10"

// JobContext describes the job being targeted when suggesting skills and bullets.
type JobContext struct {
	TargetRole        string          `json:"target_role"`
	TargetIndustry    string          `json:"target_industry,omitempty"`
	ExperienceLevel   ExperienceLevel `json:"experience_level" validate:"omitempty,oneof=entry junior mid senior lead"`
	CurrentSkills     []string        `json:"current_skills"`
	CurrentExperience []string        `json:"current_experience,omitempty"`
}

// Validate validates the JobContext using the validator.
func (c *JobContext) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// ProfileContext describes the candidate when recommending hobbies.
type ProfileContext struct {
	TargetRole      string          `json:"target_role,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry junior mid senior lead"`
	Skills          []string        `json:"skills"`
	Interests       []string        `json:"interests,omitempty"`
}

// Validate validates the ProfileContext using the validator.
func (c *ProfileContext) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// JobContextFromResume derives the job context from resume metadata.
// The experience level defaults to junior when unset.
func JobContextFromResume(r *Resume) JobContext {
	level := r.Metadata.ExperienceLevel
	if level == "" {
		level = LevelJunior
	}
	positions := make([]string, 0, len(r.Experience))
	for _, exp := range r.Experience {
		positions = append(positions, exp.Position)
	}
	return JobContext{
		TargetRole:        r.Metadata.TargetRole,
		TargetIndustry:    r.Metadata.TargetIndustry,
		ExperienceLevel:   level,
		CurrentSkills:     r.SkillNames(),
		CurrentExperience: positions,
	}
}

// ProfileContextFromResume derives the hobby profile context from a resume.
func ProfileContextFromResume(r *Resume) ProfileContext {
	return ProfileContext{
		TargetRole:      r.Metadata.TargetRole,
		ExperienceLevel: r.Metadata.ExperienceLevel,
		Skills:          r.SkillNames(),
	}
}
