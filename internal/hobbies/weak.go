package hobbies

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-coach/internal/types"
)

const minHobbyLength = 10

var (
	passiveKeywords = []string{"watching", "browsing", "surfing", "hanging out", "chilling", "relaxing"}
	vagueQuantifier = regexp.MustCompile(`\b(various|different|some|many)\b`)
)

// Guidance returned by DetectWeak whenever at least one hobby is flagged.
var weakHobbyGuidance = []string{
	"Replace passive hobbies (watching, browsing) with active ones (creating, building, participating)",
	`Be specific: instead of "sports", mention "marathon running" or "competitive basketball"`,
	"Choose hobbies that demonstrate skills relevant to your target role",
}

// DetectWeak flags hobbies that read as passive, vague, or too short to carry meaning.
func DetectWeak(hobbies []string) types.WeakHobbyReport {
	report := types.WeakHobbyReport{WeakHobbies: []string{}, Suggestions: []string{}}

	for _, hobby := range hobbies {
		if IsWeak(hobby) {
			report.WeakHobbies = append(report.WeakHobbies, hobby)
		}
	}
	if len(report.WeakHobbies) > 0 {
		report.Suggestions = append(report.Suggestions, weakHobbyGuidance...)
	}
	return report
}

// IsWeak reports whether a single hobby would be flagged by DetectWeak.
func IsWeak(hobby string) bool {
	trimmed := strings.TrimSpace(hobby)
	if utf8.RuneCountInString(trimmed) < minHobbyLength {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, kw := range passiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return vagueQuantifier.MatchString(lower)
}
