package knowledge

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-coach/internal/types"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lower-cases s and replaces whitespace runs with '-'.
// It is used both for role identifiers and suggestion ids.
func Slug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}

// Base is an immutable, indexed view of the knowledge tables.
// It is safe for concurrent use because nothing mutates it after New returns.
type Base struct {
	roles     []types.JobRole
	skills    []types.SkillRecord
	hobbies   []types.HobbyRecord
	templates []types.BulletTemplate

	roleByID     map[string]int
	roleByName   map[string]int // lower-cased titles and aliases
	skillByName  map[string]int // exact names
	skillByLower map[string]int // lower-cased names and aliases
	hobbyByLower map[string]int
}

// New builds a Base from already-decoded tables. Table order is preserved and
// breaks ties when two records share a lower-cased name or alias.
func New(roles []types.JobRole, skills []types.SkillRecord, hobbies []types.HobbyRecord, templates []types.BulletTemplate) *Base {
	b := &Base{
		roles:        roles,
		skills:       skills,
		hobbies:      hobbies,
		templates:    templates,
		roleByID:     make(map[string]int, len(roles)),
		roleByName:   make(map[string]int, len(roles)*4),
		skillByName:  make(map[string]int, len(skills)),
		skillByLower: make(map[string]int, len(skills)*2),
		hobbyByLower: make(map[string]int, len(hobbies)),
	}

	for i, role := range roles {
		b.roleByID[role.ID] = i
		addFirst(b.roleByName, strings.ToLower(role.Title), i)
		for _, alias := range role.Aliases {
			addFirst(b.roleByName, strings.ToLower(alias), i)
		}
	}

	for i, skill := range skills {
		addFirst(b.skillByName, skill.Name, i)
		addFirst(b.skillByLower, strings.ToLower(skill.Name), i)
		for _, alias := range skill.Aliases {
			addFirst(b.skillByLower, strings.ToLower(alias), i)
		}
	}

	for i, hobby := range hobbies {
		addFirst(b.hobbyByLower, strings.ToLower(hobby.Name), i)
	}

	return b
}

func addFirst(index map[string]int, key string, i int) {
	if _, exists := index[key]; !exists {
		index[key] = i
	}
}

// Role resolves an identifier to a job role. The identifier is first slugged and
// matched against role ids, then matched case-insensitively against titles and aliases.
// There is no fuzzy matching.
func (b *Base) Role(identifier string) (types.JobRole, bool) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return types.JobRole{}, false
	}
	if i, ok := b.roleByID[Slug(identifier)]; ok {
		return b.roles[i], true
	}
	if i, ok := b.roleByName[strings.ToLower(identifier)]; ok {
		return b.roles[i], true
	}
	return types.JobRole{}, false
}

// Roles returns every job role in table order.
func (b *Base) Roles() []types.JobRole {
	return append([]types.JobRole(nil), b.roles...)
}

// RolesByCategory returns the roles in a job category.
func (b *Base) RolesByCategory(category types.JobCategory) []types.JobRole {
	var out []types.JobRole
	for _, role := range b.roles {
		if role.Category == category {
			out = append(out, role)
		}
	}
	return out
}

// Titles returns every role title sorted alphabetically.
func (b *Base) Titles() []string {
	titles := make([]string, 0, len(b.roles))
	for _, role := range b.roles {
		titles = append(titles, role.Title)
	}
	sort.Strings(titles)
	return titles
}

// Skill resolves a skill by exact name, then by case-insensitive name or alias.
func (b *Base) Skill(name string) (types.SkillRecord, bool) {
	if i, ok := b.skillByName[name]; ok {
		return b.skills[i], true
	}
	if i, ok := b.skillByLower[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b.skills[i], true
	}
	return types.SkillRecord{}, false
}

// Skills returns every skill record in table order.
func (b *Base) Skills() []types.SkillRecord {
	return append([]types.SkillRecord(nil), b.skills...)
}

// SkillsByCategory returns the skills in a category, in table order.
func (b *Base) SkillsByCategory(category types.SkillCategory) []types.SkillRecord {
	var out []types.SkillRecord
	for _, skill := range b.skills {
		if skill.Category == category {
			out = append(out, skill)
		}
	}
	return out
}

// Hobby resolves a hobby by exact case-insensitive name.
func (b *Base) Hobby(name string) (types.HobbyRecord, bool) {
	if i, ok := b.hobbyByLower[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b.hobbies[i], true
	}
	return types.HobbyRecord{}, false
}

// Hobbies returns every hobby record in table order.
func (b *Base) Hobbies() []types.HobbyRecord {
	return append([]types.HobbyRecord(nil), b.hobbies...)
}

// HobbiesByRole returns hobbies aligned with the role id, in table order.
func (b *Base) HobbiesByRole(roleID string) []types.HobbyRecord {
	var out []types.HobbyRecord
	for _, hobby := range b.hobbies {
		if hobby.AlignedWith(roleID) {
			out = append(out, hobby)
		}
	}
	return out
}

// HobbiesByCategory returns hobbies in a category, in table order.
func (b *Base) HobbiesByCategory(category types.HobbyCategory) []types.HobbyRecord {
	var out []types.HobbyRecord
	for _, hobby := range b.hobbies {
		if hobby.Category == category {
			out = append(out, hobby)
		}
	}
	return out
}

// PopularHobbies returns hobbies with at least minPopularity, most popular first.
// Equal popularity keeps table order.
func (b *Base) PopularHobbies(minPopularity int) []types.HobbyRecord {
	var out []types.HobbyRecord
	for _, hobby := range b.hobbies {
		if hobby.Popularity >= minPopularity {
			out = append(out, hobby)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity > out[j].Popularity
	})
	return out
}

// Templates returns every bullet template in table order.
func (b *Base) Templates() []types.BulletTemplate {
	return append([]types.BulletTemplate(nil), b.templates...)
}

// TemplatesByRole returns templates applicable to the role id, in table order.
func (b *Base) TemplatesByRole(roleID string) []types.BulletTemplate {
	var out []types.BulletTemplate
	for _, tmpl := range b.templates {
		if tmpl.AppliesTo(roleID) {
			out = append(out, tmpl)
		}
	}
	return out
}

// TemplatesByCategory returns templates in a bullet category, in table order.
func (b *Base) TemplatesByCategory(category types.BulletCategory) []types.BulletTemplate {
	var out []types.BulletTemplate
	for _, tmpl := range b.templates {
		if tmpl.Category == category {
			out = append(out, tmpl)
		}
	}
	return out
}

// HighImpactTemplates returns every high-impact template, in table order.
func (b *Base) HighImpactTemplates() []types.BulletTemplate {
	var out []types.BulletTemplate
	for _, tmpl := range b.templates {
		if tmpl.ImpactLevel == types.ImpactHigh {
			out = append(out, tmpl)
		}
	}
	return out
}
