// Package experience generates and analyzes achievement bullet points for work experience.
package experience

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/scoring"
	"github.com/jonathan/resume-coach/internal/types"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// fillers is the fixed example text substituted into templates. Entries that depend
// on the candidate's skills are resolved in fillersFor.
var fillers = map[string]string{
	// technical
	"feature": "user authentication system",
	"system":  "scalable backend infrastructure",

	// metrics
	"metric":     "application performance",
	"percentage": "35",
	"accuracy":   "90",

	// actions
	"action":   "implementing best practices",
	"method":   "adopting modern development patterns",
	"solution": "refactoring critical components",

	// impact
	"impact":  "improved user experience",
	"outcome": "enhanced system reliability",
	"benefit": "streamline development workflow",
	"result":  "faster deployment cycles",
	"value":   "significant cost savings",

	// team
	"team":         "cross-functional team of 5 engineers",
	"number":       "3",
	"role":         "junior developers",
	"stakeholders": "design and product teams",
	"teams":        "engineering and QA teams",

	// process
	"problem":   "deployment bottlenecks",
	"process":   "CI/CD pipeline",
	"task":      "manual testing procedures",
	"scale":     "10,000+ daily active users",
	"time":      "15 hours",
	"period":    "week",
	"timeframe": "ahead of schedule",

	// project
	"project":     "new feature release",
	"deliverable": "comprehensive design system",
	"purpose":     "maintaining brand consistency",
	"audience":    "3 product teams",
	"area":        "React best practices and state management",
	"achievement": "launch critical product features",

	// product
	"strategy":    "product roadmap",
	"research":    "user interviews and data analysis",
	"features":    "high-impact user stories",
	"methodology": "data-driven prioritization",
	"insight":     "identify key user pain points",
	"decision":    "product strategy decisions",

	// data
	"model":      "machine learning recommendation system",
	"algorithms": "collaborative filtering and neural networks",
	"data":       "customer behavior datasets",
	"tools":      "Python and SQL",
}

var categoryReasons = map[types.BulletCategory]string{
	types.BulletAchievement:        "Highlights measurable achievements and results",
	types.BulletLeadership:         "Demonstrates leadership and team management",
	types.BulletCollaboration:      "Shows cross-functional collaboration",
	types.BulletTechnical:          "Showcases technical expertise",
	types.BulletProcessImprovement: "Emphasizes process optimization",
	types.BulletImpact:             "Demonstrates tangible business impact",
}

const defaultCategoryReason = "Strengthens your experience description"

// impactMetrics maps placeholder names to the metric label they imply, in report order.
var impactMetrics = []struct {
	placeholder string
	label       string
}{
	{"percentage", "Percentage improvement"},
	{"metric", "Measurable metric"},
	{"time", "Time saved"},
	{"scale", "Scale/users affected"},
	{"accuracy", "Accuracy percentage"},
}

// Generator renders bullet-point suggestions from templates.
type Generator struct {
	kb *knowledge.Base
}

// NewGenerator creates a Generator.
func NewGenerator(kb *knowledge.Base) *Generator {
	return &Generator{kb: kb}
}

// Generate returns up to max bullet-point suggestions for an experience entry.
// For a resolved role, all high-impact role templates come first, then medium-impact
// templates fill the remaining slots. An unresolved role falls back to the high-impact
// templates of the whole table rendered without skill context. The experience entry
// does not alter the rendered text.
func (g *Generator) Generate(_ types.Experience, targetRole string, skills []string, max int) []types.BulletPointSuggestion {
	max = scoring.Limit(max)

	var selected []types.BulletTemplate
	values := fillersFor(nil)
	if role, ok := g.kb.Role(targetRole); ok {
		values = fillersFor(skills)
		var medium []types.BulletTemplate
		for _, tmpl := range g.kb.TemplatesByRole(role.ID) {
			switch tmpl.ImpactLevel {
			case types.ImpactHigh:
				selected = append(selected, tmpl)
			case types.ImpactMedium:
				medium = append(medium, tmpl)
			}
		}
		if remaining := max - len(selected); remaining > 0 {
			selected = append(selected, medium[:min(remaining, len(medium))]...)
		}
	} else {
		selected = g.kb.HighImpactTemplates()
	}

	if len(selected) > max {
		selected = selected[:max]
	}

	suggestions := make([]types.BulletPointSuggestion, 0, len(selected))
	for _, tmpl := range selected {
		suggestions = append(suggestions, newSuggestion(tmpl, values))
	}
	return suggestions
}

func newSuggestion(tmpl types.BulletTemplate, values map[string]string) types.BulletPointSuggestion {
	priority := types.PriorityMedium
	if tmpl.ImpactLevel == types.ImpactHigh {
		priority = types.PriorityHigh
	}

	content, used := Render(tmpl.Template, values)

	return types.BulletPointSuggestion{
		Suggestion: types.Suggestion{
			ID:       "bullet-" + tmpl.ID,
			Type:     types.SuggestionBulletPoint,
			Priority: priority,
			Reason:   CategoryReason(tmpl.Category),
			Metadata: map[string]any{
				"category":    string(tmpl.Category),
				"impactLevel": string(tmpl.ImpactLevel),
				"templateId":  tmpl.ID,
			},
		},
		Content:       content,
		Template:      tmpl.Template,
		Variables:     used,
		ImpactMetrics: ImpactMetrics(tmpl.Template),
	}
}

// fillersFor returns the filler table with the skill-dependent entries resolved.
func fillersFor(skills []string) map[string]string {
	values := make(map[string]string, len(fillers)+3)
	for k, v := range fillers {
		values[k] = v
	}

	values["technology"] = "modern technologies"
	if len(skills) > 0 && strings.TrimSpace(skills[0]) != "" {
		values["technology"] = skills[0]
	}

	values["technologies"] = "latest frameworks"
	if joined := strings.Join(skills[:min(2, len(skills))], " and "); strings.TrimSpace(joined) != "" {
		values["technologies"] = joined
	}

	values["tool"] = "automation tools"
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), "docker") {
			values["tool"] = s
			break
		}
	}

	return values
}

// Render substitutes every {placeholder} in template. Placeholders missing from values
// are replaced by their name with underscores turned into spaces, so no braces remain.
// It returns the rendered text and the placeholder-to-filler map that was applied.
func Render(template string, values map[string]string) (string, map[string]string) {
	used := make(map[string]string)
	content := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := values[name]
		if !ok {
			value = strings.ReplaceAll(name, "_", " ")
		}
		used[name] = value
		return value
	})
	return content, used
}

// CategoryReason returns the fixed reason text for a bullet category.
func CategoryReason(category types.BulletCategory) string {
	if reason, ok := categoryReasons[category]; ok {
		return reason
	}
	return defaultCategoryReason
}

// ImpactMetrics lists the metric labels implied by the placeholders in template.
func ImpactMetrics(template string) []string {
	metrics := []string{}
	for _, m := range impactMetrics {
		if strings.Contains(template, "{"+m.placeholder+"}") {
			metrics = append(metrics, m.label)
		}
	}
	return metrics
}
