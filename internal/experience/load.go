package experience

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-coach/internal/types"
)

// LoadEntries reads work-history entries from a JSON file. The file holds either an
// array of entries or a resume object, in which case its experience section is used.
// Entries are normalized before they are returned.
func LoadEntries(path string) ([]types.Experience, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	entries, err := decodeEntries(content)
	if err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeEntries(content []byte) ([]types.Experience, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var entries []types.Experience
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	var resume types.Resume
	if err := json.Unmarshal(trimmed, &resume); err != nil {
		return nil, err
	}
	return resume.Experience, nil
}
