package ticktick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// APITimeLayout is the timestamp format of the TickTick Open API.
const APITimeLayout = "2006-01-02T15:04:05.000-0700"

// Client is the HTTP wrapper for the TickTick Open API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new TickTick client. The access token comes from the
// TickTick OAuth flow and is attached to every request as a bearer token.
func NewClient(baseURL, accessToken string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	return &Client{
		baseURL:    baseURL,
		httpClient: oauth2.NewClient(context.Background(), src),
	}
}

// CreateTask creates a new task via POST /open/v1/task.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*APITask, error) {
	url := fmt.Sprintf("%s/open/v1/task", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create task request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create task request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call ticktick create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ticktick API create error %d: %s", resp.StatusCode, string(raw))
	}

	var task APITask
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("failed to decode ticktick create response: %w", err)
	}
	return &task, nil
}

// GetProjectData fetches a project with its tasks via
// GET /open/v1/project/{id}/data.
func (c *Client) GetProjectData(ctx context.Context, projectID string) (*ProjectData, error) {
	url := fmt.Sprintf("%s/open/v1/project/%s/data", c.baseURL, projectID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build project data request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call ticktick project data API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ticktick API project data error %d: %s", resp.StatusCode, string(raw))
	}

	var data ProjectData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode ticktick project data response: %w", err)
	}
	return &data, nil
}

// ---- Request/Response types scoped to this package ----

// CreateTaskRequest is the body for POST /open/v1/task.
type CreateTaskRequest struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`
	IsAllDay  bool   `json:"isAllDay"`
	TimeZone  string `json:"timeZone,omitempty"`
	Priority  int    `json:"priority"`
}

// APITask is the TickTick API task object.
type APITask struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`
	IsAllDay  bool   `json:"isAllDay"`
	TimeZone  string `json:"timeZone,omitempty"`
	Status    int    `json:"status"`
	Priority  int    `json:"priority"`
}

// ProjectData is the response of GET /open/v1/project/{id}/data.
type ProjectData struct {
	Project struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"project"`
	Tasks []APITask `json:"tasks"`
}
