// Package engine exposes the recommendation capabilities behind a single interface so
// hosts can swap implementations without touching call sites.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/jonathan/resume-coach/internal/experience"
	"github.com/jonathan/resume-coach/internal/feedback"
	"github.com/jonathan/resume-coach/internal/hobbies"
	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/scoring"
	"github.com/jonathan/resume-coach/internal/skills"
	"github.com/jonathan/resume-coach/internal/types"
)

// RecommendationEngine is the capability set every engine implementation provides.
type RecommendationEngine interface {
	SuggestSkills(ctx types.JobContext, opts ...Option) []types.SkillSuggestion
	GenerateBulletPoints(exp types.Experience, ctx types.JobContext, opts ...Option) []types.BulletPointSuggestion
	RecommendHobbies(ctx types.ProfileContext, opts ...Option) []types.HobbySuggestion
	AnalyzeFeedback(r *types.Resume) []types.FeedbackItem
	GetAllRecommendations(r *types.Resume, opts ...Option) types.RecommendationResult
}

// Config tunes how many suggestions are returned and which ones qualify.
type Config struct {
	MaxSuggestions    int             `mapstructure:"max_suggestions" json:"max_suggestions"`
	MinRelevanceScore int             `mapstructure:"min_relevance_score" json:"min_relevance_score"`
	PriorityThreshold types.Priority  `mapstructure:"priority_threshold" json:"priority_threshold"`
	EnableAutoApply   bool            `mapstructure:"enable_auto_apply" json:"enable_auto_apply"`
	Weights           scoring.Weights `mapstructure:"weights" json:"weights"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxSuggestions:    10,
		MinRelevanceScore: 30,
		PriorityThreshold: types.PriorityLow,
		EnableAutoApply:   false,
		Weights:           scoring.DefaultWeights(),
	}
}

// Validate checks the configuration. A negative MaxSuggestions is allowed and means
// no suggestions.
func (c Config) Validate() error {
	if c.MinRelevanceScore < 0 || c.MinRelevanceScore > 100 {
		return fmt.Errorf("engine config error: min_relevance_score must be between 0 and 100, got %d", c.MinRelevanceScore)
	}
	if c.PriorityThreshold != "" && !c.PriorityThreshold.Valid() {
		return fmt.Errorf("engine config error: priority_threshold must be one of high, medium, low, got %q", c.PriorityThreshold)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("engine config error: %w", err)
	}
	return nil
}

// Option overrides a Config field for a single call.
type Option func(*Config)

// WithMaxSuggestions caps the number of suggestions returned.
func WithMaxSuggestions(n int) Option {
	return func(c *Config) { c.MaxSuggestions = n }
}

// WithMinRelevanceScore sets the minimum skill relevance score.
func WithMinRelevanceScore(score int) Option {
	return func(c *Config) { c.MinRelevanceScore = score }
}

// WithPriorityThreshold drops suggestions ranked below p.
func WithPriorityThreshold(p types.Priority) Option {
	return func(c *Config) { c.PriorityThreshold = p }
}

// WithAutoApply sets the auto-apply flag carried for hosts.
func WithAutoApply(enabled bool) Option {
	return func(c *Config) { c.EnableAutoApply = enabled }
}

// RuleBased is the deterministic engine backed by the knowledge tables.
type RuleBased struct {
	kb       *knowledge.Base
	cfg      Config
	skills   *skills.Recommender
	bullets  *experience.Generator
	hobbies  *hobbies.Recommender
	analyzer *feedback.Analyzer
	now      func() time.Time
}

var _ RecommendationEngine = (*RuleBased)(nil)

// New creates a rule-based engine. Scoring weights are fixed at construction; the
// remaining Config fields are per-call defaults.
func New(kb *knowledge.Base, cfg Config) *RuleBased {
	return &RuleBased{
		kb:       kb,
		cfg:      cfg,
		skills:   skills.NewRecommender(kb, cfg.Weights.Skill),
		bullets:  experience.NewGenerator(kb),
		hobbies:  hobbies.NewRecommender(kb, cfg.Weights.Hobby),
		analyzer: feedback.NewAnalyzer(kb),
		now:      time.Now,
	}
}

// Config returns the engine's default configuration.
func (e *RuleBased) Config() Config {
	return e.cfg
}

// Knowledge returns the knowledge base the engine reads from.
func (e *RuleBased) Knowledge() *knowledge.Base {
	return e.kb
}

// Skills returns the skill recommender.
func (e *RuleBased) Skills() *skills.Recommender {
	return e.skills
}

// Hobbies returns the hobby recommender.
func (e *RuleBased) Hobbies() *hobbies.Recommender {
	return e.hobbies
}

func (e *RuleBased) resolve(opts []Option) Config {
	cfg := e.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// SuggestSkills returns skill suggestions whose relevance reaches MinRelevanceScore and
// whose priority meets PriorityThreshold, truncated to MaxSuggestions.
func (e *RuleBased) SuggestSkills(ctx types.JobContext, opts ...Option) []types.SkillSuggestion {
	cfg := e.resolve(opts)
	return keep(e.skills.Suggest(ctx, math.MaxInt), cfg.MaxSuggestions, func(s types.SkillSuggestion) bool {
		return s.RelevanceScore >= cfg.MinRelevanceScore && scoring.MeetsThreshold(s.Priority, cfg.PriorityThreshold)
	})
}

// GenerateBulletPoints returns bullet-point suggestions for an experience entry.
func (e *RuleBased) GenerateBulletPoints(exp types.Experience, ctx types.JobContext, opts ...Option) []types.BulletPointSuggestion {
	cfg := e.resolve(opts)
	return keep(e.bullets.Generate(exp, ctx.TargetRole, ctx.CurrentSkills, math.MaxInt), cfg.MaxSuggestions, func(s types.BulletPointSuggestion) bool {
		return scoring.MeetsThreshold(s.Priority, cfg.PriorityThreshold)
	})
}

// RecommendHobbies returns hobby suggestions for a profile.
func (e *RuleBased) RecommendHobbies(ctx types.ProfileContext, opts ...Option) []types.HobbySuggestion {
	cfg := e.resolve(opts)
	return keep(e.hobbies.Recommend(ctx, math.MaxInt), cfg.MaxSuggestions, func(s types.HobbySuggestion) bool {
		return scoring.MeetsThreshold(s.Priority, cfg.PriorityThreshold)
	})
}

// AnalyzeFeedback returns the quality findings for a resume.
func (e *RuleBased) AnalyzeFeedback(r *types.Resume) []types.FeedbackItem {
	return e.analyzer.Analyze(r)
}

// GetAllRecommendations runs every recommender against one resume. Bullet points are
// generated for the first experience entry only.
func (e *RuleBased) GetAllRecommendations(r *types.Resume, opts ...Option) types.RecommendationResult {
	jobCtx := types.JobContextFromResume(r)
	profileCtx := types.ProfileContextFromResume(r)

	bullets := []types.BulletPointSuggestion{}
	if len(r.Experience) > 0 {
		bullets = e.GenerateBulletPoints(r.Experience[0], jobCtx, opts...)
	}

	return types.RecommendationResult{
		Skills:       e.SuggestSkills(jobCtx, opts...),
		BulletPoints: bullets,
		Hobbies:      e.RecommendHobbies(profileCtx, opts...),
		Feedback:     e.AnalyzeFeedback(r),
		Completeness: feedback.CompletenessScore(r),
		GeneratedAt:  e.now().UTC(),
		Context:      jobCtx,
	}
}

// keep filters items in order and returns at most max of them.
func keep[T any](items []T, max int, ok func(T) bool) []T {
	max = scoring.Limit(max)
	out := make([]T, 0, min(len(items), max))
	for _, item := range items {
		if len(out) == max {
			break
		}
		if ok(item) {
			out = append(out, item)
		}
	}
	return out
}
