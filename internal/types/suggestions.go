package types

import "time"

// SuggestionType discriminates the suggestion variants.
type SuggestionType string

// Suggestion types.
const (
	SuggestionSkill       SuggestionType = "skill"
	SuggestionBulletPoint SuggestionType = "bullet-point"
	SuggestionHobby       SuggestionType = "hobby"
	SuggestionFeedback    SuggestionType = "feedback"
)

// Priority is the high/medium/low tier driving sort order.
type Priority string

// Priorities.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the sort weight of the priority (high 3, medium 2, low 1, unknown 0).
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p.Weight() > 0
}

// Suggestion holds the fields shared by every suggestion variant.
type Suggestion struct {
	ID       string         `json:"id"`
	Type     SuggestionType `json:"type"`
	Priority Priority       `json:"priority"`
	Reason   string         `json:"reason"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// SkillSuggestion proposes a skill to add.
type SkillSuggestion struct {
	Suggestion
	SkillName      string        `json:"skill_name"`
	Category       SkillCategory `json:"category"`
	RelevanceScore int           `json:"relevance_score"`
	Reasoning      string        `json:"reasoning"`
	RelatedSkills  []string      `json:"related_skills"`
}

// BulletPointSuggestion proposes a rendered achievement bullet.
type BulletPointSuggestion struct {
	Suggestion
	Content       string            `json:"content"`
	Template      string            `json:"template"`
	Variables     map[string]string `json:"variables"`
	ImpactMetrics []string          `json:"impact_metrics"`
}

// HobbySuggestion proposes a hobby to list.
type HobbySuggestion struct {
	Suggestion
	HobbyName           string        `json:"hobby_name"`
	Description         string        `json:"description"`
	Category            HobbyCategory `json:"category"`
	AlignmentReason     string        `json:"alignment_reason"`
	ProfessionalBenefit string        `json:"professional_benefit"`
	AlignmentScore      int           `json:"alignment_score"`
}

// Severity classifies a feedback finding.
type Severity string

// Severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

// Weight returns the sort weight of the severity (error 4 down to success 1).
func (s Severity) Weight() int {
	switch s {
	case SeverityError:
		return 4
	case SeverityWarning:
		return 3
	case SeverityInfo:
		return 2
	case SeveritySuccess:
		return 1
	default:
		return 0
	}
}

// Priority maps a severity to the suggestion priority it carries.
func (s Severity) Priority() Priority {
	switch s {
	case SeverityError:
		return PriorityHigh
	case SeverityWarning:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Resume sections a feedback item can point at.
const (
	SectionPersonalInfo = "personal-info"
	SectionExperience   = "experience"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionHobbies      = "hobbies"
)

// FeedbackItem is a single resume-quality finding.
type FeedbackItem struct {
	Suggestion
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Severity      Severity `json:"severity"`
	Section       string   `json:"section,omitempty"`
	Actionable    bool     `json:"actionable"`
	FixSuggestion string   `json:"fix_suggestion,omitempty"`
}

// BulletAnalysis is the result of scanning existing bullet points.
type BulletAnalysis struct {
	HasMetrics     bool     `json:"has_metrics"`
	HasActionVerbs bool     `json:"has_action_verbs"`
	Suggestions    []string `json:"suggestions"`
}

// HobbyRelevance classifies a single freeform hobby.
type HobbyRelevance struct {
	IsRelevant bool   `json:"is_relevant"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

// WeakHobbyReport lists hobbies that add little value and how to improve them.
type WeakHobbyReport struct {
	WeakHobbies []string `json:"weak_hobbies"`
	Suggestions []string `json:"suggestions"`
}

// RecommendationResult bundles every recommender's output for one resume.
type RecommendationResult struct {
	Skills       []SkillSuggestion       `json:"skills"`
	BulletPoints []BulletPointSuggestion `json:"bullet_points"`
	Hobbies      []HobbySuggestion       `json:"hobbies"`
	Feedback     []FeedbackItem          `json:"feedback"`
	Completeness int                     `json:"completeness_score"`
	GeneratedAt  time.Time               `json:"generated_at"`
	Context      JobContext              `json:"context"`
}
