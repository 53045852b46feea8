package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// Annotation carries the topic labels the semantic service attaches to a chunk
type Annotation struct {
	MainTopic  string   `json:"main_topic"`
	Categories []string `json:"categories"`
}

// Chunk is one piece of project context returned by the semantic service
type Chunk struct {
	Text            string      `json:"text"`
	ImportanceScore float64     `json:"importance_score"`
	Annotation      *Annotation `json:"annotation,omitempty"`
}

// ContextResult is the response of a project context query
type ContextResult struct {
	ProjectID  uint    `json:"project_id"`
	ChunkCount int     `json:"chunk_count"`
	Chunks     []Chunk `json:"chunks"`
}

// Client talks to the external semantic-context service. The service is
// optional: when it is down, context queries degrade to an empty result
// instead of failing the caller.
type Client struct {
	baseURL string
	http    *http.Client

	mu        sync.Mutex
	checked   bool
	available bool
}

// NewClient creates a semantic service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:5050"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// IsAvailable probes /api/health once and caches the answer for the
// lifetime of the client.
func (c *Client) IsAvailable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checked {
		return c.available
	}
	c.checked = true

	probe := &http.Client{Timeout: 2 * time.Second}
	resp, err := probe.Get(c.baseURL + "/api/health")
	if err != nil {
		log.Printf("[WARN] semantic service unreachable at %s: %v", c.baseURL, err)
		c.available = false
		return false
	}
	defer resp.Body.Close()

	c.available = resp.StatusCode == http.StatusOK
	return c.available
}

// ProjectContext fetches up to maxChunks of context for a project. Any
// failure degrades to an empty result so chat can proceed without context.
func (c *Client) ProjectContext(ctx context.Context, projectID uint, query string, maxChunks int) ContextResult {
	empty := ContextResult{ProjectID: projectID}

	if !c.IsAvailable() {
		return empty
	}
	if maxChunks <= 0 {
		maxChunks = 10
	}

	endpoint := fmt.Sprintf("%s/api/context/%d?query=%s&max_chunks=%d",
		c.baseURL, projectID, url.QueryEscape(query), maxChunks)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return empty
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[WARN] semantic context request failed: %v", err)
		return empty
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[WARN] semantic context read failed: %v", err)
		return empty
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] semantic context error (%d): %s", resp.StatusCode, string(body))
		return empty
	}

	var result ContextResult
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("[WARN] semantic context decode failed: %v", err)
		return empty
	}
	result.ProjectID = projectID
	result.ChunkCount = len(result.Chunks)
	return result
}
