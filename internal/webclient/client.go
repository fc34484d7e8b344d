// Package webclient is the frontend's outbound HTTP client for the
// registration service API.
package webclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/oguzk/campusreg/internal/app/models/dto"
)

// Client calls the registration service REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the registration service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope mirrors the API response envelope with the payload left raw.
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

// get performs a GET request and decodes the envelope payload into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registration service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if env.Error != nil {
			return fmt.Errorf("registration service error: %s (%s)", env.Error.Message, env.Error.Code)
		}
		return fmt.Errorf("registration service returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	return nil
}

// ListCourses retrieves one page of the course catalog.
func (c *Client) ListCourses(ctx context.Context, page, size int) (*dto.CourseListResponse, error) {
	var out dto.CourseListResponse
	path := fmt.Sprintf("/api/v1/courses?page=%d&size=%d", page, size)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCourse retrieves a single course by code.
func (c *Client) GetCourse(ctx context.Context, code string) (*dto.CourseResponse, error) {
	var out dto.CourseResponse
	if err := c.get(ctx, "/api/v1/courses/"+code, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
