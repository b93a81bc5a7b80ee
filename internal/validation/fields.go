package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/jonathan/resume-coach/internal/types"
)

const minPhoneDigits = 10

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigit     = regexp.MustCompile(`\D`)

	// dateLayouts are the accepted experience date formats, most specific first.
	dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

	validate = newValidator()
)

// FieldError is a single field-level problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report is the outcome of validating one section or a whole resume.
type Report struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

func newReport(errs []FieldError) Report {
	if errs == nil {
		errs = []FieldError{}
	}
	return Report{Valid: len(errs) == 0, Errors: errs}
}

type personalInfoRules struct {
	FullName  string `json:"full_name" validate:"notblank,trimmed_min=2"`
	Email     string `json:"email" validate:"notblank,loose_email"`
	Phone     string `json:"phone" validate:"notblank,phone"`
	Location  string `json:"location" validate:"notblank"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,link=linkedin.com"`
	GitHub    string `json:"github" validate:"omitempty,link=github.com"`
	Portfolio string `json:"portfolio" validate:"omitempty,link"`
}

type experienceRules struct {
	Company   string `json:"company" validate:"notblank"`
	Position  string `json:"position" validate:"notblank"`
	Location  string `json:"location" validate:"notblank"`
	StartDate string `json:"start_date" validate:"notblank"`
	EndDate   string `json:"end_date" validate:"required_unless=Current true"`
	Current   bool   `json:"current"`
}

type skillRules struct {
	Name     string `json:"name" validate:"notblank,trimmed_min=2"`
	Category string `json:"category" validate:"notblank"`
}

type projectRules struct {
	Name         string   `json:"name" validate:"notblank"`
	Description  string   `json:"description" validate:"notblank,trimmed_min=20"`
	Technologies []string `json:"technologies" validate:"min=1"`
	Link         string   `json:"link" validate:"omitempty,link"`
	GitHubLink   string   `json:"github_link" validate:"omitempty,link=github.com"`
}

type hobbyRules struct {
	Name string `json:"name" validate:"notblank,trimmed_min=3"`
}

// messages maps "field.tag" to the user-facing message, per section.
var messages = map[string]map[string]string{
	"personal_info": {
		"full_name.notblank":    "Full name is required",
		"full_name.trimmed_min": "Full name must be at least 2 characters",
		"email.notblank":        "Email is required",
		"email.loose_email":     "Please enter a valid email address",
		"phone.notblank":        "Phone number is required",
		"phone.phone":           "Please enter a valid phone number",
		"location.notblank":     "Location is required",
		"linkedin.link":         "Please enter a valid LinkedIn URL",
		"github.link":           "Please enter a valid GitHub URL",
		"portfolio.link":        "Please enter a valid portfolio URL",
	},
	"experience": {
		"company.notblank":         "Company name is required",
		"position.notblank":        "Position/title is required",
		"location.notblank":        "Location is required",
		"start_date.notblank":      "Start date is required",
		"end_date.required_unless": "End date is required for past positions",
		"end_date.after_start":     "End date must be after start date",
	},
	"skills": {
		"name.notblank":     "Skill name is required",
		"name.trimmed_min":  "Skill name must be at least 2 characters",
		"category.notblank": "Skill category is required",
	},
	"projects": {
		"name.notblank":           "Project name is required",
		"description.notblank":    "Project description is required",
		"description.trimmed_min": "Description should be at least 20 characters",
		"technologies.min":        "Add at least one technology used",
		"link.link":               "Please enter a valid URL",
		"github_link.link":        "Please enter a valid GitHub URL",
	},
	"hobbies": {
		"name.notblank":    "Hobby name is required",
		"name.trimmed_min": "Hobby name must be at least 3 characters",
	},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "trimmed_min", trimmedMin)
	mustRegister(v, "loose_email", looseEmail)
	mustRegister(v, "phone", phone)
	mustRegister(v, "link", link)
	v.RegisterStructValidation(experienceDates, experienceRules{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// trimmedMin requires at least param characters after trimming whitespace.
func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func looseEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

func phone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// link accepts an absolute URL, or any text containing param when param is set.
func link(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if IsURL(value) {
		return true
	}
	return fl.Param() != "" && strings.Contains(value, fl.Param())
}

func experienceDates(sl validator.StructLevel) {
	exp := sl.Current().Interface().(experienceRules)
	if exp.Current {
		return
	}
	start, okStart := ParseDate(exp.StartDate)
	end, okEnd := ParseDate(exp.EndDate)
	if okStart && okEnd && end.Before(start) {
		sl.ReportError(exp.EndDate, "end_date", "EndDate", "after_start", "")
	}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsPhone reports whether s contains at least ten digits, ignoring formatting.
func IsPhone(s string) bool {
	return len(nonDigit.ReplaceAllString(s, "")) >= minPhoneDigits
}

// IsURL reports whether s is an absolute URL.
func IsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// ParseDate parses a YYYY-MM-DD, YYYY-MM or YYYY date.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// check validates a rules struct and converts failures into FieldErrors whose
// names are prefixed with prefix.
func check(section, prefix string, rules any) []FieldError {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[section][fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out = append(out, FieldError{Field: prefix + fe.Field(), Message: msg})
	}
	return out
}

// ValidatePersonalInfo checks the contact block.
func ValidatePersonalInfo(info types.PersonalInfo) Report {
	return newReport(checkPersonalInfo(info, ""))
}

// ValidateExperience checks a work-history entry. Past positions need an end date
// that is not before the start date.
func ValidateExperience(exp types.Experience) Report {
	return newReport(checkExperience(exp, ""))
}

// ValidateSkill checks a skill entry.
func ValidateSkill(s types.Skill) Report {
	return newReport(checkSkill(s, ""))
}

// ValidateProject checks a project entry.
func ValidateProject(p types.Project) Report {
	return newReport(checkProject(p, ""))
}

// ValidateHobby checks a hobby entry.
func ValidateHobby(h types.Hobby) Report {
	return newReport(checkHobby(h, ""))
}

// ValidateResume checks every section of a resume. Field names are qualified with
// the section and index, e.g. "experience[1].end_date".
func ValidateResume(r *types.Resume) Report {
	var errs []FieldError
	errs = append(errs, checkPersonalInfo(r.PersonalInfo, "personal_info.")...)
	for i, exp := range r.Experience {
		errs = append(errs, checkExperience(exp, fmt.Sprintf("experience[%d].", i))...)
	}
	for i, s := range r.Skills {
		errs = append(errs, checkSkill(s, fmt.Sprintf("skills[%d].", i))...)
	}
	for i, p := range r.Projects {
		errs = append(errs, checkProject(p, fmt.Sprintf("projects[%d].", i))...)
	}
	for i, h := range r.Hobbies {
		errs = append(errs, checkHobby(h, fmt.Sprintf("hobbies[%d].", i))...)
	}
	return newReport(errs)
}

func checkPersonalInfo(info types.PersonalInfo, prefix string) []FieldError {
	return check("personal_info", prefix, personalInfoRules{
		FullName:  info.FullName,
		Email:     strings.TrimSpace(info.Email),
		Phone:     info.Phone,
		Location:  info.Location,
		LinkedIn:  strings.TrimSpace(info.LinkedIn),
		GitHub:    strings.TrimSpace(info.GitHub),
		Portfolio: strings.TrimSpace(info.Portfolio),
	})
}

func checkExperience(exp types.Experience, prefix string) []FieldError {
	return check("experience", prefix, experienceRules{
		Company:   exp.Company,
		Position:  exp.Position,
		Location:  exp.Location,
		StartDate: exp.StartDate,
		EndDate:   strings.TrimSpace(exp.EndDate),
		Current:   exp.Current,
	})
}

func checkSkill(s types.Skill, prefix string) []FieldError {
	return check("skills", prefix, skillRules{Name: s.Name, Category: string(s.Category)})
}

func checkProject(p types.Project, prefix string) []FieldError {
	return check("projects", prefix, projectRules{
		Name:         p.Name,
		Description:  p.Description,
		Technologies: p.Technologies,
		Link:         strings.TrimSpace(p.Link),
		GitHubLink:   strings.TrimSpace(p.GitHubLink),
	})
}

func checkHobby(h types.Hobby, prefix string) []FieldError {
	return check("hobbies", prefix, hobbyRules{Name: h.Name})
}
