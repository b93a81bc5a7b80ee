// Package validation checks resume fields for completeness and format before export.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading a resume file
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Path)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
