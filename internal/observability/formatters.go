package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printEmpty prints a single-line box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printEmpty(message string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

func writeMore(sb *strings.Builder, total int, noun string) {
	if total > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more %s", total-maxItemsToShow, noun))
	}
}

// PrintSkillSuggestions outputs the top skill suggestions with scores.
func (p *Printer) PrintSkillSuggestions(suggestions []types.SkillSuggestion) {
	if len(suggestions) == 0 {
		p.printEmpty("NO SKILL SUGGESTIONS")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested %d skills:\n\n", len(suggestions)))

	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, s.SkillName, s.Category))
		sb.WriteString(fmt.Sprintf("    Score: %d  Priority: %s\n", s.RelevanceScore, s.Priority))
		if len(s.RelatedSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Related: %s\n", truncate(strings.Join(s.RelatedSkills, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	writeMore(&sb, len(suggestions), "skills")

	p.printBox("SKILL SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletPoints outputs generated bullet points with their impact metrics.
func (p *Printer) PrintBulletPoints(bullets []types.BulletPointSuggestion) {
	if len(bullets) == 0 {
		p.printEmpty("NO BULLET POINTS GENERATED")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d bullets:\n\n", len(bullets)))

	count := min(len(bullets), maxItemsToShow)
	for i := 0; i < count; i++ {
		b := bullets[i]
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(b.Content, 50)))
		if len(b.ImpactMetrics) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", truncate(strings.Join(b.ImpactMetrics, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	writeMore(&sb, len(bullets), "bullets")

	p.printBox("BULLET POINTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBulletAnalysis outputs the metric and action-verb checks for existing bullets.
func (p *Printer) PrintBulletAnalysis(analysis types.BulletAnalysis) {
	var sb strings.Builder

	check := func(ok bool, label string) {
		mark := "✗"
		if ok {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, label))
	}
	check(analysis.HasMetrics, "quantified results")
	check(analysis.HasActionVerbs, "action verbs")

	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range analysis.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("BULLET ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHobbySuggestions outputs recommended hobbies with alignment scores.
func (p *Printer) PrintHobbySuggestions(hobbies []types.HobbySuggestion) {
	if len(hobbies) == 0 {
		p.printEmpty("NO HOBBY SUGGESTIONS")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Recommended %d hobbies:\n\n", len(hobbies)))

	count := min(len(hobbies), maxItemsToShow)
	for i := 0; i < count; i++ {
		h := hobbies[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, h.HobbyName, h.Category))
		sb.WriteString(fmt.Sprintf("    Score: %d  Priority: %s\n", h.AlignmentScore, h.Priority))
		sb.WriteString(fmt.Sprintf("    %s\n", h.AlignmentReason))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	writeMore(&sb, len(hobbies), "hobbies")

	p.printBox("HOBBY SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeakHobbies outputs hobbies flagged as weak along with general guidance.
func (p *Printer) PrintWeakHobbies(report types.WeakHobbyReport) {
	if len(report.WeakHobbies) == 0 {
		p.printEmpty("✅ NO WEAK HOBBIES FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d weak hobbies:\n", len(report.WeakHobbies)))
	for _, h := range report.WeakHobbies {
		sb.WriteString(fmt.Sprintf("  ⚠ %s\n", h))
	}
	sb.WriteString("\n")
	for _, s := range report.Suggestions {
		sb.WriteString(fmt.Sprintf("• %s\n", s))
	}

	p.printBox("WEAK HOBBIES", strings.TrimSuffix(sb.String(), "\n"))
}

var severityIcons = map[types.Severity]string{
	types.SeverityError:   "✖",
	types.SeverityWarning: "⚠",
	types.SeverityInfo:    "ℹ",
	types.SeveritySuccess: "✓",
}

// PrintFeedback outputs every feedback item with its severity.
func (p *Printer) PrintFeedback(items []types.FeedbackItem) {
	if len(items) == 0 {
		p.printEmpty("NO FEEDBACK")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d items:\n\n", len(items)))

	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%s %s\n", severityIcons[item.Severity], item.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", truncate(item.Description, 50)))
		if item.FixSuggestion != "" {
			sb.WriteString(fmt.Sprintf("  → %s\n", truncate(item.FixSuggestion, 48)))
		}
		if i < len(items)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("RESUME FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs a one-box summary of a full recommendation run.
func (p *Printer) PrintRecommendations(result types.RecommendationResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:          %s\n", result.Context.TargetRole))
	sb.WriteString(fmt.Sprintf("Level:         %s\n", result.Context.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Completeness:  %d/100\n", result.Completeness))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:        %d\n", len(result.Skills)))
	sb.WriteString(fmt.Sprintf("Bullet points: %d\n", len(result.BulletPoints)))
	sb.WriteString(fmt.Sprintf("Hobbies:       %d\n", len(result.Hobbies)))
	sb.WriteString(fmt.Sprintf("Feedback:      %d", len(result.Feedback)))

	p.printBox("RECOMMENDATIONS", sb.String())
}
