package ticktick

import (
	"context"
	"time"

	"reminder-bot/internal/model"
	"reminder-bot/internal/task/repository"
	pkgLog "reminder-bot/pkg/log"
)

type implRepository struct {
	client    *Client
	projectID string
	location  *time.Location
	l         pkgLog.Logger
}

// New creates a new TickTick-backed task repository. All tasks live in the
// single configured project.
func New(client *Client, projectID string, location *time.Location, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client:    client,
		projectID: projectID,
		location:  location,
		l:         l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	req := CreateTaskRequest{
		ProjectID: r.projectID,
		Title:     opt.Title,
		Content:   opt.Content,
		IsAllDay:  opt.AllDay,
	}
	if !opt.DueAt.IsZero() {
		at := opt.DueAt.In(r.location)
		if opt.AllDay {
			// All-day tasks carry the date only; drop the time of day.
			y, m, d := at.Date()
			at = time.Date(y, m, d, 0, 0, 0, 0, r.location)
		}
		due := at.Format(APITimeLayout)
		// TickTick keys its day views off startDate, so mirror the due
		// date there.
		req.DueDate = due
		req.StartDate = due
		req.TimeZone = r.location.String()
	}

	apiTask, err := r.client.CreateTask(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to create task: %v", err)
		return model.Task{}, err
	}

	return r.apiToTask(apiTask), nil
}

func (r *implRepository) ListDueOn(ctx context.Context, day time.Time) ([]model.Task, error) {
	data, err := r.client.GetProjectData(ctx, r.projectID)
	if err != nil {
		r.l.Errorf(ctx, "ticktick repository: failed to fetch project data: %v", err)
		return nil, err
	}

	y, m, d := day.In(r.location).Date()

	tasks := make([]model.Task, 0)
	for i := range data.Tasks {
		t := r.apiToTask(&data.Tasks[i])
		anchor := t.StartAt
		if anchor.IsZero() {
			anchor = t.DueAt
		}
		if anchor.IsZero() {
			continue
		}
		ay, am, ad := anchor.In(r.location).Date()
		if ay == y && am == m && ad == d {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// apiToTask converts a TickTick API task object to the internal model.Task.
func (r *implRepository) apiToTask(t *APITask) model.Task {
	return model.Task{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Title:     t.Title,
		Content:   t.Content,
		DueAt:     r.parseAPITime(t.DueDate),
		StartAt:   r.parseAPITime(t.StartDate),
		AllDay:    t.IsAllDay,
		Status:    t.Status,
	}
}

// parseAPITime decodes a TickTick timestamp, tolerating the variants the
// API emits. Returns the zero time for empty or unparseable values.
func (r *implRepository) parseAPITime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{APITimeLayout, "2006-01-02T15:04:05-0700", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
