package experience

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-coach/internal/types"
)

// NormalizeEntries cleans the bullet points of every entry in place and rejects
// entries without an id.
func NormalizeEntries(entries []types.Experience) error {
	for i := range entries {
		entry := &entries[i]
		entry.ID = strings.TrimSpace(entry.ID)
		if entry.ID == "" {
			return &NormalizationError{
				Message: fmt.Sprintf("experience entry %d (%s) has no id", i, entry.Company),
			}
		}
		entry.BulletPoints = NormalizeBullets(entry.BulletPoints)
	}
	return nil
}

// NormalizeBullets trims bullet points, drops empty ones and removes case-insensitive
// duplicates, keeping the first occurrence.
func NormalizeBullets(bullets []string) []string {
	out := make([]string, 0, len(bullets))
	seen := make(map[string]struct{}, len(bullets))

	for _, b := range bullets {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		key := strings.ToLower(b)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b)
	}
	return out
}
