// Package knowledge provides the static job-role, skill, hobby and bullet-template tables.
// The tables are stored as JSON files, embedded at compile time and checked against
// their JSON Schemas when loaded.
package knowledge

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/resume-coach/internal/schemas"
	"github.com/jonathan/resume-coach/internal/types"
)

//go:embed data/*.json
var dataFiles embed.FS

// LoadError reports a table that could not be read, validated or parsed.
type LoadError struct {
	Table string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load knowledge table %s: %v", e.Table, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

var (
	defaultOnce sync.Once
	defaultBase *Base
)

// Default returns the process-wide knowledge base built from the embedded tables.
// It panics if the embedded tables are corrupt, which is a build defect.
func Default() *Base {
	defaultOnce.Do(func() {
		base, err := Load()
		if err != nil {
			panic(fmt.Sprintf("failed to load knowledge base: %v", err))
		}
		defaultBase = base
	})
	return defaultBase
}

// Load reads, validates and indexes the embedded tables.
func Load() (*Base, error) {
	var (
		roles     []types.JobRole
		skills    []types.SkillRecord
		hobbies   []types.HobbyRecord
		templates []types.BulletTemplate
	)

	if err := loadTable(schemas.Roles, "data/roles.json", &roles); err != nil {
		return nil, err
	}
	if err := loadTable(schemas.Skills, "data/skills.json", &skills); err != nil {
		return nil, err
	}
	if err := loadTable(schemas.Hobbies, "data/hobbies.json", &hobbies); err != nil {
		return nil, err
	}
	if err := loadTable(schemas.BulletTemplates, "data/bullet_templates.json", &templates); err != nil {
		return nil, err
	}

	return New(roles, skills, hobbies, templates), nil
}

// loadTable reads one embedded file, validates it against its schema and decodes it into out.
func loadTable(schemaName, filename string, out any) error {
	data, err := dataFiles.ReadFile(filename)
	if err != nil {
		return &LoadError{Table: schemaName, Cause: err}
	}

	if err := schemas.ValidateDocument(schemaName, data); err != nil {
		return &LoadError{Table: schemaName, Cause: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &LoadError{Table: schemaName, Cause: fmt.Errorf("failed to parse %s: %w", filename, err)}
	}

	return nil
}
