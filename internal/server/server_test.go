package server

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testEnv struct {
	handler http.Handler
	svc     *courses.Service
	events  store.EventRepo
}

func newTestEnv(t *testing.T, chatLimit int) *testEnv {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "gradex.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	engine := grading.NewEngine(grading.NewClassifier(grading.BandTable{}))
	svc := courses.NewService(st.CourseRepo(), st.ProfileRepo(), engine, nil)
	responder := assistant.NewResponder(grading.BandTable{}, rand.New(rand.NewPCG(3, 4)))
	chat := assistant.New(svc, nil, st.EventRepo(), responder, assistant.DefaultConfig(), nil)

	srv := New(Config{ChatRateLimit: chatLimit, ChatRateWindow: time.Minute}, svc, chat, nil)
	return &testEnv{handler: srv.Handler(), svc: svc, events: st.EventRepo()}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPing(t *testing.T) {
	env := newTestEnv(t, 0)
	w := env.do(t, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decode(t, w)["message"])
}

func TestCourses_CRUD(t *testing.T) {
	env := newTestEnv(t, 0)

	w := env.do(t, http.MethodPost, "/api/courses", map[string]any{
		"code": "mth 101", "title": "Elementary Mathematics", "units": 3, "score": 72,
		"level": "100l", "semester": "1st",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "MTH 101", created["code"])
	assert.Equal(t, "A", created["grade"])
	assert.Equal(t, false, created["carryover"])
	id := created["id"].(string)

	w = env.do(t, http.MethodPut, "/api/courses/"+id[:8], map[string]any{"score": 30})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.Equal(t, "F", updated["grade"])
	assert.Equal(t, true, updated["carryover"])
	assert.Equal(t, "Elementary Mathematics", updated["title"])

	w = env.do(t, http.MethodGet, "/api/courses?level=100L", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = env.do(t, http.MethodDelete, "/api/courses/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/courses/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourses_ValidationAndConflict(t *testing.T) {
	env := newTestEnv(t, 0)

	w := env.do(t, http.MethodPost, "/api/courses", map[string]any{
		"code": "", "title": "x", "units": 9, "score": 120, "level": "100L", "semester": "3rd",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]any)
	assert.Contains(t, fields, "code")
	assert.Contains(t, fields, "units")
	assert.Contains(t, fields, "score")
	assert.Contains(t, fields, "semester")

	body := map[string]any{"code": "PHY 101", "title": "Physics", "units": 2, "score": 50, "level": "100L", "semester": "1st"}
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/courses", body).Code)
	assert.Equal(t, http.StatusConflict, env.do(t, http.MethodPost, "/api/courses", body).Code)

	w = env.do(t, http.MethodPost, "/api/courses", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassify(t *testing.T) {
	env := newTestEnv(t, 0)

	w := env.do(t, http.MethodPost, "/api/classify", map[string]any{"score": 69.9})
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "B", got["grade"])
	assert.EqualValues(t, 4, got["points"])
	assert.Equal(t, false, got["clamped"])

	w = env.do(t, http.MethodPost, "/api/classify", map[string]any{"score": -5})
	got = decode(t, w)
	assert.Equal(t, "F", got["grade"])
	assert.Equal(t, true, got["clamped"])
	assert.Equal(t, true, got["carryover"])

	w = env.do(t, http.MethodPost, "/api/classify", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAggregate(t *testing.T) {
	env := newTestEnv(t, 0)

	w := env.do(t, http.MethodPost, "/api/aggregate", map[string]any{
		"courses": []map[string]any{
			{"code": "A", "units": 3, "score": 70},
			{"code": "B", "units": 2, "score": 45},
		},
		"prior": map[string]any{"cgpa": 4.0, "units": 10},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	// Semester: 19 / 5 = 3.8. Cumulative: (40 + 19) / 15 = 3.93.
	assert.EqualValues(t, 3.8, got["gpa"])
	assert.EqualValues(t, 3.93, got["cgpa"])
	assert.Equal(t, "Second Class Upper", got["class"])
	result := got["result"].(map[string]any)
	assert.NotEmpty(t, result["steps"])
}

func TestSummary(t *testing.T) {
	env := newTestEnv(t, 0)
	ctx := t.Context()
	_, err := env.svc.Add(ctx, courses.CourseInput{Code: "MTH 101", Title: "M", Units: 3, Score: 72, Level: "100L", Semester: "1st"})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.EqualValues(t, 5, got["cgpa"])
	assert.Equal(t, "First Class", got["class"])
	assert.Equal(t, "UNN 5.0", got["grading_scale"])
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t, 0)

	w := env.do(t, http.MethodPut, "/api/profile", map[string]any{"name": "Ada", "level": "200L"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Ada", decode(t, w)["name"])

	w = env.do(t, http.MethodGet, "/api/profile", nil)
	got := decode(t, w)
	assert.Equal(t, "200L", got["level"])
	assert.Equal(t, "1st", got["semester"])

	w = env.do(t, http.MethodPut, "/api/profile", map[string]any{"prior_cgpa": 5.5})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_SessionAndLog(t *testing.T) {
	env := newTestEnv(t, 0)

	w := env.do(t, http.MethodPost, "/api/chat", map[string]any{"message": "hello"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	sid := got["session_id"].(string)
	assert.NotEmpty(t, sid)
	assert.Equal(t, "greeting", got["topic"])
	assert.Equal(t, "template", got["source"])

	w = env.do(t, http.MethodPost, "/api/chat", map[string]any{"message": "thanks", "session_id": sid})
	require.Equal(t, http.StatusOK, w.Code)

	msgs, err := env.events.QueryChatMessages(t.Context(), sid, store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, msgs, 4)

	w = env.do(t, http.MethodPost, "/api/chat", map[string]any{"message": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_RateLimited(t *testing.T) {
	env := newTestEnv(t, 2)

	for range 2 {
		w := env.do(t, http.MethodPost, "/api/chat", map[string]any{"message": "hi"})
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := env.do(t, http.MethodPost, "/api/chat", map[string]any{"message": "hi"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Rate limit exceeded. Please try again in a moment.", decode(t, w)["error"])

	// Other routes are not limited.
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/ping", nil).Code)
}

func TestChat_Unavailable(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "gradex.db"))
	require.NoError(t, err)
	defer st.Close()
	svc := courses.NewService(st.CourseRepo(), st.ProfileRepo(), grading.NewEngine(grading.Classifier{}), nil)
	srv := New(Config{}, svc, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hi"}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
