package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-coach/internal/config"
	"github.com/jonathan/resume-coach/internal/engine"
	"github.com/jonathan/resume-coach/internal/knowledge"
	"github.com/jonathan/resume-coach/internal/types"
	"github.com/jonathan/resume-coach/internal/validation"
)

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	for _, m := range mutate {
		m(cfg)
	}
	s := New(cfg, engine.New(knowledge.Default(), cfg.Engine), slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(s.Close)
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	resp := decodeJSON[map[string]any](t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Greater(t, resp["roles"], 0.0)
}

func TestListRoles(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/roles?category=engineering", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string][]types.JobRole](t, w)
	require.NotEmpty(t, resp["roles"])
	ids := []string{}
	for _, r := range resp["roles"] {
		assert.Equal(t, types.JobEngineering, r.Category)
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "frontend-developer")

	all := decodeJSON[map[string][]types.JobRole](t, do(t, s, http.MethodGet, "/roles", ""))
	assert.Greater(t, len(all["roles"]), len(resp["roles"]))

	bad := do(t, s, http.MethodGet, "/roles?category=astronaut", "")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestGetRole(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/roles/frontend-developer", "")
	require.Equal(t, http.StatusOK, w.Code)
	role := decodeJSON[types.JobRole](t, w)
	assert.Equal(t, "frontend-developer", role.ID)

	missing := do(t, s, http.MethodGet, "/roles/astronaut", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, map[string]string{"error": "role not found: astronaut"}, decodeJSON[map[string]string](t, missing))
}

func skillNames(suggestions []types.SkillSuggestion) []string {
	out := []string{}
	for _, s := range suggestions {
		out = append(out, s.SkillName)
	}
	return out
}

func TestSuggestSkills(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/skills/suggest",
		`{"target_role": "frontend-developer", "experience_level": "mid", "current_skills": ["JavaScript"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[map[string][]types.SkillSuggestion](t, w)
	assert.Equal(t, []string{"React", "HTML", "TypeScript", "CSS", "Git", "Next.js"}, skillNames(resp["suggestions"]))

	w = do(t, s, http.MethodPost, "/skills/suggest",
		`{"target_role": "frontend-developer", "experience_level": "mid", "current_skills": ["JavaScript"],
		  "options": {"max_suggestions": 2}}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeJSON[map[string][]types.SkillSuggestion](t, w)
	assert.Equal(t, []string{"React", "HTML"}, skillNames(resp["suggestions"]))
}

func TestSuggestSkills_Invalid(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad json", `{"target_role": `, "validation error: body - invalid JSON"},
		{"blank role", `{"target_role": "  "}`, "validation error: target_role - failed notblank validation"},
		{"bad level", `{"target_role": "frontend-developer", "experience_level": "wizard"}`, "validation error: experience_level - failed oneof validation"},
		{"bad option", `{"target_role": "frontend-developer", "options": {"priority_threshold": "urgent"}}`, "validation error: options.priority_threshold"},
		{"negative max", `{"target_role": "frontend-developer", "options": {"max_suggestions": -1}}`, "validation error: options.max_suggestions - failed min validation (0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/skills/suggest", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeJSON[map[string]string](t, w)["error"], tt.wantErr)
		})
	}
}

func TestSkillsByCategory(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/skills/by-category",
		`{"category": "frameworks", "target_role": "Frontend Developer", "current_skills": ["React"], "max": 3}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string][]types.SkillSuggestion](t, w)
	require.NotEmpty(t, resp["suggestions"])
	assert.LessOrEqual(t, len(resp["suggestions"]), 3)
	for _, sug := range resp["suggestions"] {
		assert.Equal(t, types.SkillFrameworks, sug.Category)
		assert.NotEqual(t, "React", sug.SkillName)
	}

	bad := do(t, s, http.MethodPost, "/skills/by-category", `{"category": "vibes"}`)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestGenerateBullets(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/bullets/generate",
		`{"target_role": "frontend-developer", "current_skills": ["React"], "options": {"max_suggestions": 2}}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string][]types.BulletPointSuggestion](t, w)
	require.Len(t, resp["bullet_points"], 2)
	for _, b := range resp["bullet_points"] {
		assert.NotContains(t, b.Content, "{")
		assert.Equal(t, types.SuggestionBulletPoint, b.Type)
	}

	bad := do(t, s, http.MethodPost, "/bullets/generate", `{"experience": {"company": "Acme"}, "target_role": "frontend-developer"}`)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Contains(t, decodeJSON[map[string]string](t, bad)["error"], "experience.id")
}

func TestAnalyzeBullets(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/bullets/analyze", `{"bullets": ["Increased checkout conversion by 25% across web and mobile"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[types.BulletAnalysis](t, w)
	assert.True(t, resp.HasMetrics)
	assert.True(t, resp.HasActionVerbs)

	empty := do(t, s, http.MethodPost, "/bullets/analyze", `{"bullets": []}`)
	assert.Equal(t, http.StatusBadRequest, empty.Code)
}

func TestRecommendHobbies(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/hobbies/recommend",
		`{"target_role": "Product Manager", "experience_level": "senior", "options": {"priority_threshold": "medium"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string][]types.HobbySuggestion](t, w)
	require.Len(t, resp["suggestions"], 2)
	assert.Equal(t, "Mentoring/Teaching", resp["suggestions"][0].HobbyName)
	assert.Equal(t, "Public Speaking/Conferences", resp["suggestions"][1].HobbyName)
}

func TestAnalyzeHobby(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/hobbies/analyze", `{"hobby": "Underwater basket weaving"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[types.HobbyRelevance](t, w)
	assert.False(t, resp.IsRelevant)
	assert.Equal(t, 50, resp.Score)

	blank := do(t, s, http.MethodPost, "/hobbies/analyze", `{"hobby": ""}`)
	assert.Equal(t, http.StatusBadRequest, blank.Code)
}

func TestWeakHobbies(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/hobbies/weak", `{"hobbies": ["Watching TV", "Marathon Running"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeJSON[types.WeakHobbyReport](t, w)
	assert.Equal(t, []string{"Watching TV"}, resp.WeakHobbies)
	assert.Len(t, resp.Suggestions, 3)
}

func TestFeedback_EmptyResume(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/feedback", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Feedback     []types.FeedbackItem `json:"feedback"`
		Completeness int                  `json:"completeness_score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Feedback)
	assert.Equal(t, "feedback-missing-name", resp.Feedback[0].ID)
	assert.Equal(t, 0, resp.Completeness)
}

func TestRecommendations(t *testing.T) {
	s := newTestServer(t)
	body := `{
	  "personal_info": {"full_name": "Alex Morgan", "email": "alex@example.com"},
	  "experience": [{"id": "e1", "company": "Acme", "position": "Engineer", "bullet_points": ["Built things"]}],
	  "skills": [{"id": "s1", "name": "JavaScript", "category": "languages"}],
	  "metadata": {"target_role": "frontend-developer", "experience_level": "mid"}
	}`

	w := do(t, s, http.MethodPost, "/recommendations?max_suggestions=3", body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[types.RecommendationResult](t, w)
	assert.Len(t, resp.Skills, 3)
	assert.Len(t, resp.BulletPoints, 3)
	assert.Len(t, resp.Hobbies, 3)
	assert.NotEmpty(t, resp.Feedback)
	assert.Equal(t, "frontend-developer", resp.Context.TargetRole)
	assert.WithinDuration(t, time.Now(), resp.GeneratedAt, time.Minute)

	for _, query := range []string{"?max_suggestions=lots", "?priority_threshold=urgent", "?min_relevance_score=101"} {
		bad := do(t, s, http.MethodPost, "/recommendations"+query, body)
		assert.Equal(t, http.StatusBadRequest, bad.Code, query)
	}
}

func TestValidateResume(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodPost, "/resumes/validate", `{
	  "personal_info": {"full_name": "Alex Morgan", "email": "alex@example.com", "phone": "555 123 4567", "location": "Austin"},
	  "hobbies": [{"id": "h1", "name": "Go"}]
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	report := decodeJSON[validation.Report](t, w)
	assert.False(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "hobbies[0].name", report.Errors[0].Field)

	bad := do(t, s, http.MethodPost, "/resumes/validate", `{"metadata": {"experience_level": "wizard"}}`)
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Contains(t, decodeJSON[map[string]string](t, bad)["error"], "resume does not match schema")
}

func TestBodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	body := `{"bullets": ["` + strings.Repeat("a", maxBodyBytes) + `"]}`
	w := do(t, s, http.MethodPost, "/bullets/analyze", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	w := do(t, s, http.MethodGet, "/health", "")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Server.CORSOrigin = "https://app.example.com" })

	w := do(t, s, http.MethodOptions, "/skills/suggest", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.RequestsPerMinute = 1
		c.RateLimit.Burst = 1
	})

	first := do(t, s, http.MethodGet, "/roles", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := do(t, s, http.MethodGet, "/roles", "")
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "60", second.Header().Get("Retry-After"))
	resp := decodeJSON[map[string]any](t, second)
	assert.Equal(t, "rate limit exceeded", resp["error"])

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/health", "").Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	do(t, s, http.MethodGet, "/health", "")
	do(t, s, http.MethodPost, "/skills/suggest", `{"target_role": "frontend-developer"}`)
	do(t, s, http.MethodGet, "/nope", "")

	w := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `resume_coach_http_requests_total{code="200",route="GET /health"} 1`)
	assert.Contains(t, body, `resume_coach_http_requests_total{code="404",route="unmatched"} 1`)
	assert.Contains(t, body, `resume_coach_suggestions_returned_count{kind="skills"} 1`)
}

func TestTracingEnabled(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.Tracing.Enabled = true })

	w := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.RateLimit.Enabled = false
	s := New(cfg, engine.New(knowledge.Default(), cfg.Engine), slog.New(slog.NewJSONHandler(&buf, nil)))
	defer s.Close()

	req := httptest.NewRequest(http.MethodGet, "/roles/frontend-developer", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	s.Handler().ServeHTTP(httptest.NewRecorder(), req)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "request", rec["msg"])
	assert.Equal(t, "/roles/frontend-developer", rec["path"])
	assert.Equal(t, 200.0, rec["status"])
	assert.Equal(t, "req-1", rec["request_id"])
}
