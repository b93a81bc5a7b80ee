// Package feedback reviews a resume for completeness and quality and scores it.
package feedback

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-coach/internal/experience"
	"github.com/jonathan/resume-coach/internal/hobbies"
	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/types"
)

const (
	minSummaryLength      = 50
	minSkillCount         = 5
	minBulletsPerEntry    = 3
	minSkillCategories    = 3
	maxMissingSkillsCited = 3
)

// Analyzer produces feedback items for a resume.
type Analyzer struct {
	kb *knowledge.Base
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(kb *knowledge.Base) *Analyzer {
	return &Analyzer{kb: kb}
}

// Analyze runs every check and returns the findings ordered by severity, most severe
// first. Items of equal severity keep the order in which the checks produced them.
// Exactly one overall-quality item is always included.
func (a *Analyzer) Analyze(r *types.Resume) []types.FeedbackItem {
	var items []types.FeedbackItem
	items = append(items, a.checkCompleteness(r)...)
	items = append(items, checkExperienceQuality(r)...)
	items = append(items, a.checkSkillsAlignment(r)...)
	items = append(items, checkHobbyQuality(r)...)
	items = append(items, overallQuality(CompletenessScore(r)))

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Severity.Weight() > items[j].Severity.Weight()
	})
	return items
}

func (a *Analyzer) checkCompleteness(r *types.Resume) []types.FeedbackItem {
	var items []types.FeedbackItem
	info := r.PersonalInfo

	if blank(info.FullName) {
		items = append(items, newItem("missing-name", "Missing Full Name",
			"Your resume must include your full name",
			types.SeverityError, types.SectionPersonalInfo,
			"Add your full name in the Personal Information section"))
	}
	if blank(info.Email) {
		items = append(items, newItem("missing-email", "Missing Email",
			"Contact email is required for recruiters to reach you",
			types.SeverityError, types.SectionPersonalInfo,
			"Add your professional email address"))
	}
	if blank(info.Phone) {
		items = append(items, newItem("missing-phone", "Missing Phone Number",
			"Phone number helps recruiters contact you directly",
			types.SeverityWarning, types.SectionPersonalInfo,
			"Add your phone number"))
	}
	if !hasStrongSummary(info.Summary) {
		items = append(items, newItem("weak-summary", "Professional Summary Needed",
			"A strong professional summary helps recruiters quickly understand your value",
			types.SeverityWarning, types.SectionPersonalInfo,
			"Write a 2-3 sentence summary highlighting your expertise and goals"))
	}

	if len(r.Experience) == 0 {
		items = append(items, newItem("no-experience", "No Work Experience",
			"Add your work experience to showcase your professional background",
			types.SeverityError, types.SectionExperience,
			"Add at least one work experience entry"))
	}

	switch n := len(r.Skills); {
	case n == 0:
		items = append(items, newItem("no-skills", "No Skills Listed",
			"Skills section is critical for ATS and recruiter screening",
			types.SeverityError, types.SectionSkills,
			"Add relevant technical and soft skills"))
	case n < minSkillCount:
		items = append(items, newItem("few-skills", "Limited Skills",
			"Most competitive resumes list 8-12 relevant skills",
			types.SeverityInfo, types.SectionSkills,
			"Consider adding more relevant skills for your target role"))
	}

	if len(r.Projects) == 0 {
		if role, ok := a.kb.Role(r.Metadata.TargetRole); ok && role.Category == types.JobEngineering {
			items = append(items, newItem("no-projects", "No Projects Listed",
				"Projects demonstrate hands-on experience and passion for technology",
				types.SeverityInfo, types.SectionProjects,
				"Add 1-3 notable projects to strengthen your resume"))
		}
	}

	return items
}

func checkExperienceQuality(r *types.Resume) []types.FeedbackItem {
	var items []types.FeedbackItem

	for _, exp := range r.Experience {
		switch n := len(exp.BulletPoints); {
		case n == 0:
			items = append(items, newItem("no-bullets-"+exp.ID, "Missing Bullet Points: "+exp.Position,
				fmt.Sprintf("Experience at %s has no bullet points describing your achievements", exp.Company),
				types.SeverityWarning, types.SectionExperience,
				"Add 3-5 bullet points highlighting your key achievements and responsibilities"))
			continue
		case n < minBulletsPerEntry:
			items = append(items, newItem("few-bullets-"+exp.ID, "Limited Details: "+exp.Position,
				fmt.Sprintf("Experience at %s has only %d bullet point(s)", exp.Company, n),
				types.SeverityInfo, types.SectionExperience,
				"Add more bullet points (aim for 3-5 per role)"))
		}

		if !experience.HasMetrics(exp.BulletPoints) {
			items = append(items, newItem("no-metrics-"+exp.ID, "Lack of Measurable Achievements: "+exp.Position,
				"Bullet points should include quantifiable results (percentages, numbers, time saved)",
				types.SeverityWarning, types.SectionExperience,
				`Add metrics to demonstrate impact (e.g., "Improved performance by 40%")`))
		}
		if !experience.HasActionVerbs(exp.BulletPoints) {
			items = append(items, newItem("weak-verbs-"+exp.ID, "Weak Action Verbs: "+exp.Position,
				"Start bullet points with strong action verbs to show impact",
				types.SeverityInfo, types.SectionExperience,
				`Use verbs like "Built", "Achieved", "Improved", "Led" instead of "Responsible for"`))
		}
	}

	return items
}

func (a *Analyzer) checkSkillsAlignment(r *types.Resume) []types.FeedbackItem {
	role, ok := a.kb.Role(r.Metadata.TargetRole)
	if !ok {
		return nil
	}

	var items []types.FeedbackItem

	held := make(map[string]bool, len(r.Skills))
	categories := make(map[types.SkillCategory]bool, len(r.Skills))
	for _, s := range r.Skills {
		held[strings.ToLower(strings.TrimSpace(s.Name))] = true
		categories[s.Category] = true
	}

	var missing []string
	for _, skill := range role.PrimarySkills {
		if !held[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	if len(missing) > 0 {
		items = append(items, newItem("missing-primary-skills", "Missing Core Skills",
			fmt.Sprintf("Your resume is missing key skills for %s: %s",
				role.Title, strings.Join(missing[:min(maxMissingSkillsCited, len(missing))], ", ")),
			types.SeverityWarning, types.SectionSkills,
			"Add essential skills that match the job requirements"))
	}

	var missingCategories []string
	for _, category := range role.RequiredSkillCategories {
		if !categories[category] {
			missingCategories = append(missingCategories, string(category))
		}
	}
	if len(missingCategories) > 0 {
		items = append(items, newItem("missing-skill-categories", "Skill Gaps Detected",
			"Consider adding skills from: "+strings.Join(missingCategories, ", "),
			types.SeverityInfo, types.SectionSkills,
			"Add skills from missing categories to show well-rounded expertise"))
	}

	return items
}

func checkHobbyQuality(r *types.Resume) []types.FeedbackItem {
	if len(r.Hobbies) == 0 {
		return nil
	}
	report := hobbies.DetectWeak(r.HobbyNames())
	if len(report.WeakHobbies) == 0 {
		return nil
	}
	return []types.FeedbackItem{newItem("weak-hobbies", "Weak or Vague Hobbies",
		"Some hobbies may not add value: "+strings.Join(report.WeakHobbies, ", "),
		types.SeverityInfo, types.SectionHobbies,
		strings.Join(report.Suggestions, ". "))}
}

// overallQuality returns the single summary item for a completeness score.
func overallQuality(score int) types.FeedbackItem {
	switch {
	case score >= 100:
		return newItem("excellent-resume", "Excellent Resume!",
			"Your resume is complete and well-structured",
			types.SeveritySuccess, "", "")
	case score >= 80:
		return newItem("good-resume", "Good Resume",
			"Your resume is mostly complete with minor areas for improvement",
			types.SeveritySuccess, "",
			"Review the suggestions above to make it even stronger")
	case score >= 60:
		return newItem("needs-improvement", "Resume Needs Improvement",
			"Several sections need attention to make your resume competitive",
			types.SeverityWarning, "",
			"Focus on completing all required sections and adding measurable achievements")
	default:
		return newItem("incomplete-resume", "Resume Incomplete",
			"Your resume is missing critical information",
			types.SeverityError, "",
			"Complete all required sections before exporting")
	}
}

func newItem(id, title, description string, severity types.Severity, section, fix string) types.FeedbackItem {
	return types.FeedbackItem{
		Suggestion: types.Suggestion{
			ID:       "feedback-" + id,
			Type:     types.SuggestionFeedback,
			Priority: severity.Priority(),
			Reason:   "Resume quality check",
		},
		Title:         title,
		Description:   description,
		Severity:      severity,
		Section:       section,
		Actionable:    fix != "",
		FixSuggestion: fix,
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func hasStrongSummary(summary string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(summary)) >= minSummaryLength
}
