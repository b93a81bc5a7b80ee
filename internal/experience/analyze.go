package experience

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-coach/internal/types"
)

const (
	minBulletLength = 30
	maxBulletLength = 150
)

// metricPatterns detect percentages, multipliers, currency and "N+" scale figures.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),
	regexp.MustCompile(`\d+x`),
	regexp.MustCompile(`\$\d+`),
	regexp.MustCompile(`\d+\+`),
}

// ActionVerbs are the verbs a strong bullet starts with.
var ActionVerbs = []string{
	"achieved", "built", "created", "delivered", "developed", "implemented", "improved",
	"increased", "launched", "led", "optimized", "reduced", "redesigned",
}

// Improvement suggestions returned by AnalyzeBullets.
const (
	SuggestMetrics     = "Add quantifiable metrics to demonstrate impact (e.g., percentages, time saved, users affected)"
	SuggestActionVerbs = "Start bullet points with strong action verbs (e.g., \"Built\", \"Implemented\", \"Improved\")"
	SuggestExpand      = "Expand brief bullet points to include context and impact"
	SuggestSplit       = "Consider breaking down long bullet points for better readability"
)

// HasMetrics reports whether any bullet contains a quantified figure.
func HasMetrics(bullets []string) bool {
	for _, b := range bullets {
		for _, p := range metricPatterns {
			if p.MatchString(b) {
				return true
			}
		}
	}
	return false
}

// HasActionVerbs reports whether any bullet starts with one of ActionVerbs.
func HasActionVerbs(bullets []string) bool {
	for _, b := range bullets {
		lower := strings.ToLower(strings.TrimSpace(b))
		for _, verb := range ActionVerbs {
			if strings.HasPrefix(lower, verb) {
				return true
			}
		}
	}
	return false
}

// AnalyzeBullets scans existing bullet points and returns improvement suggestions.
func AnalyzeBullets(bullets []string) types.BulletAnalysis {
	analysis := types.BulletAnalysis{
		HasMetrics:     HasMetrics(bullets),
		HasActionVerbs: HasActionVerbs(bullets),
		Suggestions:    []string{},
	}

	if !analysis.HasMetrics {
		analysis.Suggestions = append(analysis.Suggestions, SuggestMetrics)
	}
	if !analysis.HasActionVerbs {
		analysis.Suggestions = append(analysis.Suggestions, SuggestActionVerbs)
	}

	var short, long bool
	for _, b := range bullets {
		n := len([]rune(b))
		short = short || n < minBulletLength
		long = long || n > maxBulletLength
	}
	if short {
		analysis.Suggestions = append(analysis.Suggestions, SuggestExpand)
	}
	if long {
		analysis.Suggestions = append(analysis.Suggestions, SuggestSplit)
	}

	return analysis
}
