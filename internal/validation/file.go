package validation

import (
	"encoding/json"
	"os"

	"github.com/jonathan/resume-coach/internal/schemas"
	"github.com/jonathan/resume-coach/internal/types"
)

// ValidateFile reads a resume JSON file, checks it against the resume schema and then
// runs field validation. Schema and decode failures are returned as errors; field
// problems are reported in the Report.
func ValidateFile(path string) (*types.Resume, Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Report{}, &FileReadError{Path: path, Cause: err}
	}
	return ValidateDocument(data)
}

// ValidateDocument is ValidateFile for an in-memory JSON document.
func ValidateDocument(data []byte) (*types.Resume, Report, error) {
	if err := schemas.ValidateDocument(schemas.Resume, data); err != nil {
		return nil, Report{}, &Error{Message: "resume does not match schema", Cause: err}
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, Report{}, &Error{Message: "failed to parse resume JSON", Cause: err}
	}

	return &resume, ValidateResume(&resume), nil
}
