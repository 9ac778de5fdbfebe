// Package api talks to the Thunkable backend: a GraphQL query to pull a
// project document and a REST endpoint to push edited content back. The
// cookie-based thunk_token is the only credential.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"thunkd/internal/project"
)

const (
	// DefaultBaseURL is the production Thunkable host.
	DefaultBaseURL = "https://x.thunkable.com"

	graphqlPath = "/graphql"
	updatePath  = "/project/updatecontent"

	tokenCookie = "thunk_token"
)

var (
	// ErrPullFailed is returned when the backend rejects a pull. The project
	// id may be invalid or the thunk_token expired.
	ErrPullFailed = errors.New("failed to pull project")

	// ErrPushFailed is returned when the backend rejects a push.
	ErrPushFailed = errors.New("failed to push project")
)

// Config holds client settings.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// DefaultConfig returns sensible defaults for the production backend.
func DefaultConfig(token string) Config {
	return Config{
		Token:   token,
		BaseURL: DefaultBaseURL,
		Timeout: 60 * time.Second,
	}
}

// Client is a Thunkable API client.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the production backend.
func NewClient(token string) *Client {
	return NewClientWithConfig(DefaultConfig(token))
}

// NewClientWithConfig creates a client with custom settings. Zero-valued
// fields fall back to defaults.
func NewClientWithConfig(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Client{
		token:      config.Token,
		baseURL:    config.BaseURL,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     config.Logger,
	}
}

// Pull fetches the full project document for projectID. The returned tree is
// the raw GraphQL response body, spine at data.project.
func (c *Client) Pull(ctx context.Context, projectID string) (project.Document, error) {
	reqBody := map[string]any{
		"operationName": "Project",
		"variables":     map[string]any{"id": projectID},
		"query":         projectQuery,
	}

	body, err := c.post(ctx, graphqlPath, reqBody, "pull")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPullFailed, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrPullFailed, err)
	}

	if _, ok := doc["errors"]; ok {
		return nil, fmt.Errorf("%w: backend reported errors (check the project id and the thunk_token)", ErrPullFailed)
	}
	data, _ := doc["data"].(map[string]any)
	if data == nil || data["project"] == nil {
		return nil, fmt.Errorf("%w: no project in response (check the project id and the thunk_token)", ErrPullFailed)
	}

	return doc, nil
}

// Push uploads doc's data.project subtree as the new content of projectID.
func (c *Client) Push(ctx context.Context, projectID string, doc project.Document) error {
	data, _ := doc["data"].(map[string]any)
	content, ok := data["project"].(map[string]any)
	if !ok {
		return fmt.Errorf("%w: document has no data.project", ErrPushFailed)
	}

	reqBody := map[string]any{
		"projectOrModuleId": projectID,
		"checkHash":         false,
		"projectnewcontent": content,
	}

	body, err := c.post(ctx, updatePath, reqBody, "push")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPushFailed, err)
	}

	// A successful update echoes the new content hash.
	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrPushFailed, err)
	}
	if _, ok := result["hash"]; !ok {
		return fmt.Errorf("%w: backend returned no hash (check the project id and the thunk_token)", ErrPushFailed)
	}
	return nil
}

// post sends a JSON body with the thunk_token cookie and returns the raw
// response body. Non-2xx statuses are errors.
func (c *Client) post(ctx context.Context, path string, reqBody map[string]any, op string) ([]byte, error) {
	requestID := uuid.NewString()

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: c.token})

	c.logger.Debug("sending request",
		zap.String("op", op),
		zap.String("url", c.baseURL+path),
		zap.String("request_id", requestID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.logger.Debug("received response",
		zap.String("op", op),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}
