package semantic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProjectContext(t *testing.T) {
	var contextCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/health":
			w.WriteHeader(http.StatusOK)
		case "/api/context/7":
			contextCalls++
			if got := r.URL.Query().Get("max_chunks"); got != "5" {
				t.Errorf("max_chunks = %s", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"chunks": []map[string]any{
					{"text": "chunk one", "importance_score": 0.8},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result := client.ProjectContext(context.Background(), 7, "budget", 5)
	if result.ChunkCount != 1 {
		t.Fatalf("chunk count = %d, want 1", result.ChunkCount)
	}
	if result.ProjectID != 7 {
		t.Errorf("project id = %d", result.ProjectID)
	}
	if result.Chunks[0].Text != "chunk one" {
		t.Errorf("chunk text = %q", result.Chunks[0].Text)
	}
	if contextCalls != 1 {
		t.Errorf("context endpoint called %d times", contextCalls)
	}
}

func TestProjectContextServiceUnreachable(t *testing.T) {
	// point at a closed port
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	result := client.ProjectContext(context.Background(), 1, "anything", 10)
	if len(result.Chunks) != 0 {
		t.Errorf("chunks = %v, want empty", result.Chunks)
	}
	if client.IsAvailable() {
		t.Error("IsAvailable = true for a dead server")
	}
}

func TestAvailabilityCached(t *testing.T) {
	var healthCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			healthCalls++
			w.WriteHeader(http.StatusOK)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"chunks": []any{}})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.ProjectContext(context.Background(), 1, "a", 10)
	client.ProjectContext(context.Background(), 1, "b", 10)
	if healthCalls != 1 {
		t.Errorf("health probed %d times, want 1", healthCalls)
	}
}
