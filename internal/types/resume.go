// Package types provides type definitions for structured data used throughout the resume-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ExperienceLevel is the candidate's seniority band.
type ExperienceLevel string

// Experience levels in ascending order of seniority.
const (
	LevelEntry  ExperienceLevel = "entry"
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"
)

// ExperienceLevels lists every level from least to most senior.
var ExperienceLevels = []ExperienceLevel{LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelLead}

// Index returns the position of the level in ExperienceLevels, or -1 if unknown.
func (l ExperienceLevel) Index() int {
	for i, level := range ExperienceLevels {
		if level == l {
			return i
		}
	}
	return -1
}

// SkillCategory groups skills for gap analysis.
type SkillCategory string

// Skill categories.
const (
	SkillLanguages  SkillCategory = "languages"
	SkillFrameworks SkillCategory = "frameworks"
	SkillTools      SkillCategory = "tools"
	SkillDatabases  SkillCategory = "databases"
	SkillCloud      SkillCategory = "cloud"
	SkillSoftSkills SkillCategory = "soft-skills"
	SkillOther      SkillCategory = "other"
)

// HobbyCategory groups hobbies.
type HobbyCategory string

// Hobby categories.
const (
	HobbySports     HobbyCategory = "sports"
	HobbyCreative   HobbyCategory = "creative"
	HobbyTechnical  HobbyCategory = "technical"
	HobbyCommunity  HobbyCategory = "community"
	HobbyLeadership HobbyCategory = "leadership"
	HobbyOther      HobbyCategory = "other"
)

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// Experience is a single work-history entry.
type Experience struct {
	ID           string   `json:"id" validate:"required"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	BulletPoints []string `json:"bullet_points"`
}

// Skill is a skill listed on the resume.
type Skill struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name"`
	Category    SkillCategory `json:"category,omitempty"`
	Proficiency string        `json:"proficiency,omitempty"`
}

// Project is a portfolio project.
type Project struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	GitHubLink   string   `json:"github_link,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Hobby is a hobby or interest listed on the resume.
type Hobby struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    HobbyCategory `json:"category,omitempty"`
}

// Reference is a professional reference.
type Reference struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Metadata carries targeting and bookkeeping fields.
type Metadata struct {
	TargetRole      string          `json:"target_role,omitempty"`
	TargetIndustry  string          `json:"target_industry,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry junior mid senior lead"`
	Template        string          `json:"template,omitempty"`
	LastModified    string          `json:"last_modified,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
}

// Resume is a complete resume snapshot. The engine only reads it.
type Resume struct {
	ID           string       `json:"id"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Experience   []Experience `json:"experience" validate:"dive"`
	Skills       []Skill      `json:"skills" validate:"dive"`
	Projects     []Project    `json:"projects" validate:"dive"`
	Hobbies      []Hobby      `json:"hobbies" validate:"dive"`
	References   []Reference  `json:"references" validate:"dive"`
	Metadata     Metadata     `json:"metadata"`
}

// SkillNames returns the names of every listed skill in order.
func (r *Resume) SkillNames() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// HobbyNames returns the names of every listed hobby in order.
func (r *Resume) HobbyNames() []string {
	names := make([]string, 0, len(r.Hobbies))
	for _, h := range r.Hobbies {
		names = append(names, h.Name)
	}
	return names
}

// AllBulletPoints returns the bullet points of every experience entry, flattened.
func (r *Resume) AllBulletPoints() []string {
	var bullets []string
	for _, exp := range r.Experience {
		bullets = append(bullets, exp.BulletPoints...)
	}
	return bullets
}

// Validate checks the structural tags on the resume.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
