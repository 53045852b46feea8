package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"officeflow-backend/internal/operation"
	"officeflow-backend/internal/task/repository"
	"officeflow-backend/internal/task/usecase"
	"officeflow-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	registry := operation.NewRegistry()
	registry.Register(operation.KeySendEmail, func(ctx context.Context, p operation.Params) operation.Outcome {
		return operation.Success("email sent to "+p.String("recipient", "?"), nil)
	})

	uc := usecase.NewTaskUsecase(repository.NewMemoryTaskRepository(), registry, config.PolicyPermissive)
	handler := NewTaskHandler(uc)

	r := gin.New()
	r.GET("/api/tasks", handler.ListTasks)
	r.POST("/api/tasks", handler.CreateTask)
	r.GET("/api/tasks/:id", handler.GetTaskByID)
	r.DELETE("/api/tasks/:id", handler.DeleteTask)
	r.POST("/api/tasks/:id/run", handler.RunTask)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTaskEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"name":     "send welcome mail",
		"category": "email",
		"type":     "send_email",
		"parameters": map[string]any{
			"recipient": "bob@example.com",
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var task map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
		t.Fatal(err)
	}
	if task["status"] != "pending" {
		t.Errorf("task status = %v, want pending", task["status"])
	}
	if task["created_by"] != float64(1) {
		t.Errorf("created_by = %v, want default 1", task["created_by"])
	}
}

func TestCreateTaskMissingFields(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/tasks", map[string]any{"name": "incomplete"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRunTaskEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"name":       "send mail",
		"category":   "email",
		"type":       "send_email",
		"parameters": map[string]any{"recipient": "sue@example.com"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/api/tasks/1/run", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("run status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Status string `json:"status"`
		Task   struct {
			Status string         `json:"status"`
			Result map[string]any `json:"result"`
		} `json:"task"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "success" {
		t.Errorf("response status = %s", resp.Status)
	}
	if resp.Task.Status != "completed" {
		t.Errorf("task status = %s, want completed", resp.Task.Status)
	}
	if resp.Task.Result["message"] != "email sent to sue@example.com" {
		t.Errorf("result message = %v", resp.Task.Result["message"])
	}
}

func TestRunMissingTaskEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, "POST", "/api/tasks/99/run", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListTasksFilter(t *testing.T) {
	r := newTestRouter()

	for _, body := range []map[string]any{
		{"name": "a", "category": "email", "type": "send_email"},
		{"name": "b", "category": "file", "type": "rename_files"},
	} {
		if w := doJSON(t, r, "POST", "/api/tasks", body); w.Code != http.StatusCreated {
			t.Fatalf("create status = %d", w.Code)
		}
	}

	w := doJSON(t, r, "GET", "/api/tasks?category=email", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 1 {
		t.Errorf("count = %d, want 1", resp.Count)
	}
}

func TestDeleteTaskEndpoint(t *testing.T) {
	r := newTestRouter()

	if w := doJSON(t, r, "POST", "/api/tasks", map[string]any{
		"name": "x", "category": "email", "type": "send_email",
	}); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	if w := doJSON(t, r, "DELETE", "/api/tasks/1", nil); w.Code != http.StatusOK {
		t.Errorf("delete status = %d", w.Code)
	}
	if w := doJSON(t, r, "DELETE", "/api/tasks/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestGetTaskInvalidID(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, "GET", "/api/tasks/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
