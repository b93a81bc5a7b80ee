package types

// JobCategory is the broad family a job role belongs to.
type JobCategory string

// Job categories.
const (
	JobEngineering JobCategory = "engineering"
	JobDesign      JobCategory = "design"
	JobProduct     JobCategory = "product"
	JobMarketing   JobCategory = "marketing"
	JobSales       JobCategory = "sales"
	JobData        JobCategory = "data"
	JobOperations  JobCategory = "operations"
	JobManagement  JobCategory = "management"
)

// JobRole is a canonical occupation profile.
type JobRole struct {
	ID                      string          `json:"id"`
	Title                   string          `json:"title"`
	Category                JobCategory     `json:"category"`
	Aliases                 []string        `json:"aliases"`
	Description             string          `json:"description"`
	RequiredSkillCategories []SkillCategory `json:"required_skill_categories"`
	PrimarySkills           []string        `json:"primary_skills"`
	SecondarySkills         []string        `json:"secondary_skills"`
	DesiredTraits           []string        `json:"desired_traits"`
	TypicalResponsibilities []string        `json:"typical_responsibilities"`
}

// SkillRecord describes a skill in the knowledge base.
type SkillRecord struct {
	Name              string            `json:"name"`
	Category          SkillCategory     `json:"category"`
	Aliases           []string          `json:"aliases"`
	Description       string            `json:"description"`
	RelatedSkills     []string          `json:"related_skills"`
	ExperienceLevels  []ExperienceLevel `json:"experience_levels"`
	Popularity        int               `json:"popularity"`
	IndustryRelevance map[string]int    `json:"industry_relevance"`
}

// SupportsLevel reports whether the skill is listed for the given experience level.
func (s *SkillRecord) SupportsLevel(level ExperienceLevel) bool {
	for _, l := range s.ExperienceLevels {
		if l == level {
			return true
		}
	}
	return false
}

// HobbyRecord describes a hobby in the knowledge base.
type HobbyRecord struct {
	Name                string        `json:"name"`
	Category            HobbyCategory `json:"category"`
	Description         string        `json:"description"`
	ProfessionalBenefit string        `json:"professional_benefit"`
	AlignedRoles        []string      `json:"aligned_roles"`
	Traits              []string      `json:"traits"`
	Popularity          int           `json:"popularity"`
}

// AlignedWith reports whether the hobby lists the role id among its aligned roles.
func (h *HobbyRecord) AlignedWith(roleID string) bool {
	for _, id := range h.AlignedRoles {
		if id == roleID {
			return true
		}
	}
	return false
}

// BulletCategory classifies what a bullet template emphasizes.
type BulletCategory string

// Bullet categories.
const (
	BulletAchievement        BulletCategory = "achievement"
	BulletLeadership         BulletCategory = "leadership"
	BulletCollaboration      BulletCategory = "collaboration"
	BulletTechnical          BulletCategory = "technical"
	BulletProcessImprovement BulletCategory = "process-improvement"
	BulletImpact             BulletCategory = "impact"
)

// ImpactLevel ranks how strong a bullet template reads.
type ImpactLevel string

// Impact levels.
const (
	ImpactHigh   ImpactLevel = "high"
	ImpactMedium ImpactLevel = "medium"
	ImpactLow    ImpactLevel = "low"
)

// BulletTemplate is a parameterized achievement sentence with {placeholder} tokens.
type BulletTemplate struct {
	ID              string         `json:"id"`
	Template        string         `json:"template"`
	Category        BulletCategory `json:"category"`
	Variables       []string       `json:"variables"`
	Example         string         `json:"example"`
	ApplicableRoles []string       `json:"applicable_roles"`
	ImpactLevel     ImpactLevel    `json:"impact_level"`
}

// AppliesTo reports whether the template lists the role id.
func (t *BulletTemplate) AppliesTo(roleID string) bool {
	for _, id := range t.ApplicableRoles {
		if id == roleID {
			return true
		}
	}
	return false
}
