package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-intake/internal/extraction"
	"task-intake/internal/middleware"
	"task-intake/internal/model"
	"task-intake/internal/task"
	repo "task-intake/internal/task/repository"
	"task-intake/internal/task/repository/memory"
	"task-intake/internal/task/usecase"
	"task-intake/pkg/log"
	"task-intake/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeExtractor struct {
	result model.ExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, text string) (model.ExtractionResult, error) {
	return f.result, f.err
}

// brokenRepo fails every call.
type brokenRepo struct {
	repo.Repository
}

var errDown = errors.New("connection refused")

func (brokenRepo) CreateTask(context.Context, repo.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, errDown
}

func (brokenRepo) GetTask(context.Context, int64) (model.Task, error) {
	return model.Task{}, errDown
}

func (brokenRepo) ListTasks(context.Context, repo.ListTasksOptions) ([]model.Task, error) {
	return nil, errDown
}

func (brokenRepo) DeleteTask(context.Context, int64) (bool, error) {
	return false, errDown
}

func newTestRouter(r repo.Repository, ex extraction.Extractor, mwCfg middleware.Config) *gin.Engine {
	l := log.NewNop()
	h := New(l, usecase.New(l, r, ex))
	engine := gin.New()
	RegisterRoutes(engine.Group("/api"), h, middleware.New(l, mwCfg))
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeTask(t *testing.T, w *httptest.ResponseRecorder) taskResp {
	t.Helper()
	var resp taskResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (response.Resp, []model.FieldError) {
	t.Helper()
	var body struct {
		response.Resp
		Fields []model.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Resp, body.Fields
}

const validBody = `{"name":"Call client","assignee":"Rajeev","dueDate":"5:00 PM, Tomorrow"}`

func TestCreate(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})

	w := do(t, engine, http.MethodPost, "/api/tasks", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeTask(t, w)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Call client", got.Name)
	assert.Equal(t, "P3", got.Priority)
	assert.Equal(t, "pending", got.Status)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "missing fields",
			body:   `{"name":"x"}`,
			fields: []string{"assignee", "dueDate"},
		},
		{
			name:   "bad priority",
			body:   `{"name":"x","assignee":"a","dueDate":"d","priority":"P9"}`,
			fields: []string{"priority"},
		},
		{
			name:   "client id",
			body:   `{"id":7,"name":"x","assignee":"a","dueDate":"d"}`,
			fields: []string{"id"},
		},
		{
			name:   "wrong type",
			body:   `{"name":5,"assignee":"a","dueDate":"d"}`,
			fields: []string{"name"},
		},
		{
			name: "not an object",
			body: `["x"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})

			w := do(t, engine, http.MethodPost, "/api/tasks", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp, fields := decodeError(t, w)
			assert.Equal(t, "Invalid task data", resp.Message)
			names := make([]string, 0, len(fields))
			for _, f := range fields {
				names = append(names, f.Field)
			}
			assert.ElementsMatch(t, tt.fields, names)
		})
	}
}

func TestDetail(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})
	do(t, engine, http.MethodPost, "/api/tasks", validBody)

	w := do(t, engine, http.MethodGet, "/api/tasks/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rajeev", decodeTask(t, w).Assignee)

	w = do(t, engine, http.MethodGet, "/api/tasks/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp, _ := decodeError(t, w)
	assert.Equal(t, "Task not found", resp.Message)

	w = do(t, engine, http.MethodGet, "/api/tasks/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})

	w := do(t, engine, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	do(t, engine, http.MethodPost, "/api/tasks", validBody)
	do(t, engine, http.MethodPost, "/api/tasks",
		`{"name":"Ship","assignee":"Ana","dueDate":"Friday","priority":"P1","status":"completed"}`)

	w = do(t, engine, http.MethodGet, "/api/tasks", "")
	var all []taskResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	w = do(t, engine, http.MethodGet, "/api/tasks?status=completed&priority=P1", "")
	var filtered []taskResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ship", filtered[0].Name)

	w = do(t, engine, http.MethodGet, "/api/tasks?status=done", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStats(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})
	do(t, engine, http.MethodPost, "/api/tasks", validBody)

	w := do(t, engine, http.MethodGet, "/api/tasks/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"total":1,"pending":1,"inProgress":0,"completed":0,"dueToday":0,"byPriority":{"P1":0,"P2":0,"P3":1,"P4":0}}`,
		w.Body.String())
}

func TestUpdate(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})
	do(t, engine, http.MethodPost, "/api/tasks", validBody)

	w := do(t, engine, http.MethodPatch, "/api/tasks/1", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeTask(t, w)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "Call client", got.Name)

	w = do(t, engine, http.MethodPatch, "/api/tasks/1", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, got, decodeTask(t, w))

	w = do(t, engine, http.MethodPatch, "/api/tasks/1", `{"priority":"urgent"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp, fields := decodeError(t, w)
	assert.Equal(t, "Invalid update data", resp.Message)
	require.Len(t, fields, 1)
	assert.Equal(t, "priority", fields[0].Field)

	w = do(t, engine, http.MethodPatch, "/api/tasks/1", `{"createdAt":"2024-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPatch, "/api/tasks/9", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})
	do(t, engine, http.MethodPost, "/api/tasks", validBody)

	w := do(t, engine, http.MethodDelete, "/api/tasks/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, w.Body.String())

	w = do(t, engine, http.MethodDelete, "/api/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNonIntegerID(t *testing.T) {
	engine := newTestRouter(memory.New(), &fakeExtractor{}, middleware.Config{})
	do(t, engine, http.MethodPost, "/api/tasks", validBody)

	for _, tt := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPatch, `{"status":"completed"}`},
		{http.MethodDelete, ""},
	} {
		w := do(t, engine, tt.method, "/api/tasks/abc", tt.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tt.method)
		resp, _ := decodeError(t, w)
		assert.Equal(t, "Invalid task id", resp.Message)
	}

	// the stored task is untouched
	w := do(t, engine, http.MethodGet, "/api/tasks/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", decodeTask(t, w).Status)
}

func TestParse(t *testing.T) {
	ex := &fakeExtractor{result: model.ExtractionResult{
		TaskName: "Call client",
		Assignee: "Rajeev",
		DueDate:  "5:00 PM, Tomorrow",
		Priority: model.PriorityP1,
	}}
	engine := newTestRouter(memory.New(), ex, middleware.Config{})

	w := do(t, engine, http.MethodPost, "/api/tasks/parse",
		`{"input":"Call client Rajeev tomorrow 5pm P1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeTask(t, w)
	assert.Equal(t, "Call client", got.Name)
	assert.Equal(t, "P1", got.Priority)
	assert.Equal(t, "pending", got.Status)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		code    int
		message string
	}{
		{
			name:    "blank input",
			body:    `{"input":"   "}`,
			code:    http.StatusBadRequest,
			message: "Invalid input data",
		},
		{
			name:    "missing input",
			body:    `{}`,
			code:    http.StatusBadRequest,
			message: "Invalid input data",
		},
		{
			name:    "invalid schema",
			body:    `{"input":"something"}`,
			err:     &extraction.ExtractionError{Kind: extraction.KindInvalidSchema},
			code:    http.StatusBadRequest,
			message: task.RephraseMessage,
		},
		{
			name:    "malformed response",
			body:    `{"input":"something"}`,
			err:     &extraction.ExtractionError{Kind: extraction.KindMalformedResponse},
			code:    http.StatusInternalServerError,
			message: task.RephraseMessage,
		},
		{
			name:    "service unavailable",
			body:    `{"input":"something"}`,
			err:     &extraction.ExtractionError{Kind: extraction.KindServiceUnavailable, Err: errors.New("upstream 503")},
			code:    http.StatusInternalServerError,
			message: task.RephraseMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestRouter(memory.New(), &fakeExtractor{err: tt.err}, middleware.Config{})

			w := do(t, engine, http.MethodPost, "/api/tasks/parse", tt.body)
			require.Equal(t, tt.code, w.Code)
			resp, _ := decodeError(t, w)
			assert.Equal(t, tt.message, resp.Message)
			assert.NotContains(t, w.Body.String(), "upstream")
		})
	}
}

func TestParse_RateLimited(t *testing.T) {
	ex := &fakeExtractor{result: model.ExtractionResult{TaskName: "x", Assignee: "a", DueDate: "d", Priority: model.PriorityP3}}
	engine := newTestRouter(memory.New(), ex, middleware.Config{RateLimitPerMin: 10})

	w := do(t, engine, http.MethodPost, "/api/tasks/parse", `{"input":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodPost, "/api/tasks/parse", `{"input":"x"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other routes are not limited.
	w = do(t, engine, http.MethodGet, "/api/tasks", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStoreFault(t *testing.T) {
	engine := newTestRouter(brokenRepo{}, &fakeExtractor{}, middleware.Config{})

	tests := []struct {
		method, path, body, message string
	}{
		{http.MethodGet, "/api/tasks", "", "Failed to fetch tasks"},
		{http.MethodGet, "/api/tasks/stats", "", "Failed to fetch task stats"},
		{http.MethodGet, "/api/tasks/1", "", "Failed to fetch task"},
		{http.MethodPost, "/api/tasks", validBody, "Failed to create task"},
		{http.MethodDelete, "/api/tasks/1", "", "Failed to delete task"},
	}
	for _, tt := range tests {
		w := do(t, engine, tt.method, tt.path, tt.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tt.path)
		resp, _ := decodeError(t, w)
		assert.Equal(t, tt.message, resp.Message)
		assert.NotContains(t, w.Body.String(), errDown.Error())
	}
}
