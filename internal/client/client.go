// Package client talks to the character catalog over HTTP. It behaves the same
// against either backend since both serve one contract.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dom/hxh-catalog/internal/domain"
)

// Client handles HTTP communication with a catalog service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client rooted at baseURL, e.g. http://localhost:4000
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type DeleteResult struct {
	Message string            `json:"message"`
	Deleted *domain.Character `json:"deleted"`
}

type ServiceInfo struct {
	Message string `json:"message"`
	Backend string `json:"backend"`
}

// Info fetches the root descriptor, which names the backend.
func (c *Client) Info(ctx context.Context) (*ServiceInfo, error) {
	var info ServiceInfo
	if err := c.do(ctx, http.MethodGet, "/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) List(ctx context.Context) ([]*domain.Character, error) {
	var characters []*domain.Character
	if err := c.do(ctx, http.MethodGet, "/characters", nil, &characters); err != nil {
		return nil, err
	}
	return characters, nil
}

func (c *Client) Get(ctx context.Context, id string) (*domain.Character, error) {
	var character domain.Character
	if err := c.do(ctx, http.MethodGet, characterPath(id), nil, &character); err != nil {
		return nil, err
	}
	return &character, nil
}

// Create sends every field of character except its id.
func (c *Client) Create(ctx context.Context, character *domain.Character) (*domain.Character, error) {
	var created domain.Character
	if err := c.do(ctx, http.MethodPost, "/characters", writeBody(character), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update fully replaces the character; fields left nil are cleared.
func (c *Client) Update(ctx context.Context, id string, character *domain.Character) (*domain.Character, error) {
	var updated domain.Character
	if err := c.do(ctx, http.MethodPut, characterPath(id), writeBody(character), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	var result DeleteResult
	if err := c.do(ctx, http.MethodDelete, characterPath(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search lists every character and keeps those whose name contains query,
// ignoring case. An empty query matches everything.
func (c *Client) Search(ctx context.Context, query string) ([]*domain.Character, error) {
	characters, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return characters, nil
	}

	matches := make([]*domain.Character, 0, len(characters))
	for _, character := range characters {
		if strings.Contains(strings.ToLower(character.Name), needle) {
			matches = append(matches, character)
		}
	}
	return matches, nil
}

func characterPath(id string) string {
	return "/characters/" + url.PathEscape(id)
}

// writeBody strips server-owned fields before a write.
func writeBody(character *domain.Character) *domain.Character {
	body := *character
	body.ID = ""
	body.CreatedAt = nil
	return &body
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
