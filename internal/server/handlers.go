package server

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonathan/resume-coach/internal/engine"
	"github.com/jonathan/resume-coach/internal/experience"
	"github.com/jonathan/resume-coach/internal/feedback"
	"github.com/jonathan/resume-coach/internal/hobbies"
	"github.com/jonathan/resume-coach/internal/observability"
	"github.com/jonathan/resume-coach/internal/types"
	"github.com/jonathan/resume-coach/internal/validation"
)

// ---------------------------------------------------------------------
// Request types
// ---------------------------------------------------------------------

// SuggestOptions are the per-call engine overrides accepted by recommender endpoints.
type SuggestOptions struct {
	MaxSuggestions    *int           `json:"max_suggestions,omitempty" validate:"omitempty,min=0,max=100"`
	MinRelevanceScore *int           `json:"min_relevance_score,omitempty" validate:"omitempty,min=0,max=100"`
	PriorityThreshold types.Priority `json:"priority_threshold,omitempty" validate:"omitempty,oneof=high medium low"`
}

func (o SuggestOptions) engineOptions() []engine.Option {
	var opts []engine.Option
	if o.MaxSuggestions != nil {
		opts = append(opts, engine.WithMaxSuggestions(*o.MaxSuggestions))
	}
	if o.MinRelevanceScore != nil {
		opts = append(opts, engine.WithMinRelevanceScore(*o.MinRelevanceScore))
	}
	if o.PriorityThreshold != "" {
		opts = append(opts, engine.WithPriorityThreshold(o.PriorityThreshold))
	}
	return opts
}

type SuggestSkillsRequest struct {
	TargetRole        string                `json:"target_role" validate:"notblank"`
	TargetIndustry    string                `json:"target_industry,omitempty"`
	ExperienceLevel   types.ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry junior mid senior lead"`
	CurrentSkills     []string              `json:"current_skills"`
	CurrentExperience []string              `json:"current_experience,omitempty"`
	Options           SuggestOptions        `json:"options"`
}

func (r SuggestSkillsRequest) jobContext() types.JobContext {
	return types.JobContext{
		TargetRole:        r.TargetRole,
		TargetIndustry:    r.TargetIndustry,
		ExperienceLevel:   r.ExperienceLevel,
		CurrentSkills:     r.CurrentSkills,
		CurrentExperience: r.CurrentExperience,
	}
}

type SkillsByCategoryRequest struct {
	Category      types.SkillCategory `json:"category" validate:"required,oneof=languages frameworks tools databases cloud soft-skills other"`
	TargetRole    string              `json:"target_role,omitempty"`
	CurrentSkills []string            `json:"current_skills"`
	Max           *int                `json:"max,omitempty" validate:"omitempty,min=0,max=100"`
}

type GenerateBulletsRequest struct {
	Experience    *types.Experience `json:"experience,omitempty"`
	TargetRole    string            `json:"target_role" validate:"notblank"`
	CurrentSkills []string          `json:"current_skills"`
	Options       SuggestOptions    `json:"options"`
}

type AnalyzeBulletsRequest struct {
	Bullets []string `json:"bullets" validate:"required,min=1"`
}

type RecommendHobbiesRequest struct {
	TargetRole      string                `json:"target_role,omitempty"`
	ExperienceLevel types.ExperienceLevel `json:"experience_level,omitempty" validate:"omitempty,oneof=entry junior mid senior lead"`
	Skills          []string              `json:"skills"`
	Interests       []string              `json:"interests,omitempty"`
	Options         SuggestOptions        `json:"options"`
}

type AnalyzeHobbyRequest struct {
	Hobby      string `json:"hobby" validate:"notblank"`
	TargetRole string `json:"target_role,omitempty"`
}

type WeakHobbiesRequest struct {
	Hobbies []string `json:"hobbies" validate:"required,min=1"`
}

// ---------------------------------------------------------------------
// Knowledge handlers
// ---------------------------------------------------------------------

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"roles":  len(s.engine.Knowledge().Roles()),
	})
}

var validJobCategories = map[types.JobCategory]bool{
	types.JobEngineering: true,
	types.JobDesign:      true,
	types.JobProduct:     true,
	types.JobMarketing:   true,
	types.JobSales:       true,
	types.JobData:        true,
	types.JobOperations:  true,
	types.JobManagement:  true,
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	kb := s.engine.Knowledge()

	category := types.JobCategory(r.URL.Query().Get("category"))
	if category == "" {
		s.jsonResponse(w, http.StatusOK, map[string]any{"roles": kb.Roles()})
		return
	}
	if !validJobCategories[category] {
		s.fail(w, r, &ErrValidation{Field: "category", Message: "unknown job category " + strconv.Quote(string(category))})
		return
	}

	roles := kb.RolesByCategory(category)
	if roles == nil {
		roles = []types.JobRole{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": roles})
}

func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	role, ok := s.engine.Knowledge().Role(id)
	if !ok {
		s.fail(w, r, &ErrNotFound{Resource: "role", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, role)
}

// ---------------------------------------------------------------------
// Recommender handlers
// ---------------------------------------------------------------------

// span starts an engine span named after the operation.
func span(ctx context.Context, name string, attrs ...attribute.KeyValue) trace.Span {
	_, sp := observability.Tracer().Start(ctx, name, trace.WithAttributes(attrs...))
	return sp
}

func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	var req SuggestSkillsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	sp := span(r.Context(), "engine.SuggestSkills", attribute.String("role", req.TargetRole))
	suggestions := s.engine.SuggestSkills(req.jobContext(), req.Options.engineOptions()...)
	sp.SetAttributes(attribute.Int("suggestions", len(suggestions)))
	sp.End()

	s.metrics.ObserveSuggestions(observability.KindSkills, len(suggestions))
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleSkillsByCategory(w http.ResponseWriter, r *http.Request) {
	var req SkillsByCategoryRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	limit := s.engine.Config().MaxSuggestions
	if req.Max != nil {
		limit = *req.Max
	}
	roleID := ""
	if role, ok := s.engine.Knowledge().Role(req.TargetRole); ok {
		roleID = role.ID
	}

	suggestions := s.engine.Skills().SuggestByCategory(req.Category, roleID, req.CurrentSkills, limit)
	s.metrics.ObserveSuggestions(observability.KindSkills, len(suggestions))
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleGenerateBullets(w http.ResponseWriter, r *http.Request) {
	var req GenerateBulletsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	var exp types.Experience
	if req.Experience != nil {
		exp = *req.Experience
	}
	ctx := types.JobContext{TargetRole: req.TargetRole, CurrentSkills: req.CurrentSkills}

	sp := span(r.Context(), "engine.GenerateBulletPoints", attribute.String("role", req.TargetRole))
	bullets := s.engine.GenerateBulletPoints(exp, ctx, req.Options.engineOptions()...)
	sp.End()

	s.metrics.ObserveSuggestions(observability.KindBullets, len(bullets))
	s.jsonResponse(w, http.StatusOK, map[string]any{"bullet_points": bullets})
}

func (s *Server) handleAnalyzeBullets(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeBulletsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, experience.AnalyzeBullets(req.Bullets))
}

func (s *Server) handleRecommendHobbies(w http.ResponseWriter, r *http.Request) {
	var req RecommendHobbiesRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := types.ProfileContext{
		TargetRole:      req.TargetRole,
		ExperienceLevel: req.ExperienceLevel,
		Skills:          req.Skills,
		Interests:       req.Interests,
	}

	sp := span(r.Context(), "engine.RecommendHobbies", attribute.String("role", req.TargetRole))
	suggestions := s.engine.RecommendHobbies(ctx, req.Options.engineOptions()...)
	sp.End()

	s.metrics.ObserveSuggestions(observability.KindHobbies, len(suggestions))
	s.jsonResponse(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleAnalyzeHobby(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeHobbyRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.engine.Hobbies().AnalyzeRelevance(req.Hobby, req.TargetRole))
}

func (s *Server) handleWeakHobbies(w http.ResponseWriter, r *http.Request) {
	var req WeakHobbiesRequest
	if err := s.decode(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, hobbies.DetectWeak(req.Hobbies))
}

// ---------------------------------------------------------------------
// Whole-resume handlers
// ---------------------------------------------------------------------

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var resume types.Resume
	if err := s.decode(w, r, &resume); err != nil {
		s.fail(w, r, err)
		return
	}

	sp := span(r.Context(), "engine.AnalyzeFeedback")
	items := s.engine.AnalyzeFeedback(&resume)
	sp.End()

	s.metrics.ObserveSuggestions(observability.KindFeedback, len(items))
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"feedback":           items,
		"completeness_score": feedback.CompletenessScore(&resume),
	})
}

// handleRecommendations runs every recommender. Engine overrides come from the
// max_suggestions, min_relevance_score and priority_threshold query parameters.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	opts, err := s.queryOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var resume types.Resume
	if err := s.decode(w, r, &resume); err != nil {
		s.fail(w, r, err)
		return
	}

	sp := span(r.Context(), "engine.GetAllRecommendations", attribute.String("role", resume.Metadata.TargetRole))
	result := s.engine.GetAllRecommendations(&resume, opts.engineOptions()...)
	sp.End()

	s.metrics.ObserveSuggestions(observability.KindSkills, len(result.Skills))
	s.metrics.ObserveSuggestions(observability.KindBullets, len(result.BulletPoints))
	s.metrics.ObserveSuggestions(observability.KindHobbies, len(result.Hobbies))
	s.metrics.ObserveSuggestions(observability.KindFeedback, len(result.Feedback))
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) queryOptions(r *http.Request) (SuggestOptions, error) {
	q := r.URL.Query()
	var opts SuggestOptions

	parse := func(name string) (*int, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ErrValidation{Field: name, Message: "must be an integer"}
		}
		return &n, nil
	}

	var err error
	if opts.MaxSuggestions, err = parse("max_suggestions"); err != nil {
		return opts, err
	}
	if opts.MinRelevanceScore, err = parse("min_relevance_score"); err != nil {
		return opts, err
	}
	opts.PriorityThreshold = types.Priority(q.Get("priority_threshold"))

	return opts, s.check(opts)
}

func (s *Server) handleValidateResume(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	_, report, err := validation.ValidateDocument(data)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}
