// Package client is a typed HTTP client for the SynergySphere API. Every
// call attaches the configured bearer token and normalizes non-2xx or
// non-JSON responses into an *APIError carrying the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a failed API call, carrying the HTTP status and the server's
// error message when one was provided.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// Envelope is the standard response wrapper used by every endpoint.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

// Client calls the SynergySphere API. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the API at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do issues a request and decodes the envelope. Non-2xx responses and bodies
// that do not parse as JSON both come back as *APIError.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := envelope.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	return &envelope, nil
}

// decode issues a request and unmarshals the envelope's data into out. Pass a
// nil out to discard the payload.
func (c *Client) decode(ctx context.Context, method, path string, body, out interface{}) error {
	envelope, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// User is a user as serialized by the API.
type User struct {
	ID        uint64    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Project is a project as serialized by the API.
type Project struct {
	ID          uint64    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   uint64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Task is a task as serialized by the API.
type Task struct {
	ID          uint64     `json:"task_id"`
	ProjectID   uint64     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedBy   uint64     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Comment is a task comment as serialized by the API.
type Comment struct {
	ID        uint64    `json:"comment_id"`
	TaskID    uint64    `json:"task_id"`
	UserID    uint64    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Workload is a workload row as serialized by the API.
type Workload struct {
	ID             uint64 `json:"workload_id"`
	UserID         uint64 `json:"user_id"`
	ProjectID      uint64 `json:"project_id"`
	ProjectName    string `json:"project_name"`
	TaskCount      int    `json:"task_count"`
	EstimatedHours int    `json:"estimated_hours"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var user User
	err := c.decode(ctx, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	envelope, err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(envelope.Data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	c.token = envelope.Token
	return &payload.User, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.decode(ctx, http.MethodGet, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the caller's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.decode(ctx, http.MethodPost, "/api/v1/auth/change-password", map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}, nil)
}

// ListProjects returns the caller's projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.decode(ctx, http.MethodGet, "/api/v1/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project owned by the caller.
func (c *Client) CreateProject(ctx context.Context, name, description string) (*Project, error) {
	var project Project
	err := c.decode(ctx, http.MethodPost, "/api/v1/projects", map[string]string{
		"name":        name,
		"description": description,
	}, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AddProjectMember adds a user to a project.
func (c *Client) AddProjectMember(ctx context.Context, projectID, userID uint64, role string) error {
	body := map[string]interface{}{"user_id": userID}
	if role != "" {
		body["role"] = role
	}
	path := fmt.Sprintf("/api/v1/projects/%d/members", projectID)
	return c.decode(ctx, http.MethodPost, path, body, nil)
}

// ListProjectTasks returns a project's tasks.
func (c *Client) ListProjectTasks(ctx context.Context, projectID uint64) ([]Task, error) {
	var tasks []Task
	path := fmt.Sprintf("/api/v1/projects/%d/tasks", projectID)
	if err := c.decode(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task in a project.
func (c *Client) CreateTask(ctx context.Context, projectID uint64, title, description string) (*Task, error) {
	var task Task
	err := c.decode(ctx, http.MethodPost, "/api/v1/tasks", map[string]interface{}{
		"project_id":  projectID,
		"title":       title,
		"description": description,
	}, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// AssignTask assigns a user to a task.
func (c *Client) AssignTask(ctx context.Context, taskID, userID uint64) error {
	path := fmt.Sprintf("/api/v1/tasks/%d/assignments", taskID)
	return c.decode(ctx, http.MethodPost, path, map[string]interface{}{"user_id": userID}, nil)
}

// AddComment records a comment on a task.
func (c *Client) AddComment(ctx context.Context, taskID uint64, content string) (*Comment, error) {
	var comment Comment
	path := fmt.Sprintf("/api/v1/tasks/%d/comments", taskID)
	if err := c.decode(ctx, http.MethodPost, path, map[string]string{"content": content}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a task's comments.
func (c *Client) ListComments(ctx context.Context, taskID uint64) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/v1/tasks/%d/comments", taskID)
	if err := c.decode(ctx, http.MethodGet, path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateDependency records that a task is blocked by another.
func (c *Client) CreateDependency(ctx context.Context, taskID, blockedBy uint64) error {
	return c.decode(ctx, http.MethodPost, "/api/v1/dependencies", map[string]interface{}{
		"task_id":    taskID,
		"blocked_by": blockedBy,
	}, nil)
}

// SubmitMood records a mood pulse on a project.
func (c *Client) SubmitMood(ctx context.Context, projectID uint64, moodValue int, comment string) error {
	return c.decode(ctx, http.MethodPost, "/api/v1/mood", map[string]interface{}{
		"project_id": projectID,
		"mood_value": moodValue,
		"comment":    comment,
	}, nil)
}

// UserWorkload returns a user's workload rows.
func (c *Client) UserWorkload(ctx context.Context, userID uint64) ([]Workload, error) {
	var workloads []Workload
	path := fmt.Sprintf("/api/v1/workload/users/%d", userID)
	if err := c.decode(ctx, http.MethodGet, path, nil, &workloads); err != nil {
		return nil, err
	}
	return workloads, nil
}

// ListTunnels returns the stored tunnels of a source entity.
func (c *Client) ListTunnels(ctx context.Context, sourceType string, sourceID uint64) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("source_type", sourceType)
	query.Set("source_id", strconv.FormatUint(sourceID, 10))

	var tunnels json.RawMessage
	if err := c.decode(ctx, http.MethodGet, "/api/v1/tunnels?"+query.Encode(), nil, &tunnels); err != nil {
		return nil, err
	}
	return tunnels, nil
}
