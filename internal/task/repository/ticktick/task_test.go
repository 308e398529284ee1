package ticktick_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reminder-bot/internal/task/repository"
	"reminder-bot/internal/task/repository/ticktick"
	"reminder-bot/pkg/log"
)

func TestRepository(t *testing.T) {
	var lastCreate ticktick.CreateTaskRequest

	mux := http.NewServeMux()
	mux.HandleFunc("/open/v1/task", func(w http.ResponseWriter, r *http.Request) {
		// Decode into a fresh struct: omitempty fields absent from this
		// request must not inherit values from an earlier one.
		var req ticktick.CreateTaskRequest
		json.NewDecoder(r.Body).Decode(&req)
		lastCreate = req
		task := ticktick.APITask{
			ID:        "task-9",
			ProjectID: lastCreate.ProjectID,
			Title:     lastCreate.Title,
			StartDate: lastCreate.StartDate,
			DueDate:   lastCreate.DueDate,
			IsAllDay:  lastCreate.IsAllDay,
		}
		json.NewEncoder(w).Encode(task)
	})
	mux.HandleFunc("/open/v1/project/proj-1/data", func(w http.ResponseWriter, r *http.Request) {
		data := ticktick.ProjectData{
			Tasks: []ticktick.APITask{
				{ID: "a", Title: "Due today", StartDate: "2025-05-31T06:00:00.000+0000"},
				{ID: "b", Title: "Due tomorrow", StartDate: "2025-06-01T06:00:00.000+0000"},
				{ID: "c", Title: "Due today via dueDate", DueDate: "2025-05-31T18:00:00.000+0000"},
				{ID: "d", Title: "No dates at all"},
			},
		}
		json.NewEncoder(w).Encode(data)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := ticktick.NewClient(ts.URL, "test-token")
	repo := ticktick.New(client, "proj-1", time.UTC, log.NewNop())
	ctx := context.Background()

	t.Run("CreateTask with due date", func(t *testing.T) {
		due := time.Date(2025, 5, 31, 6, 0, 0, 0, time.UTC)
		created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title: "Buy milk",
			DueAt: due,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "task-9" || created.Title != "Buy milk" {
			t.Errorf("unexpected task: %+v", created)
		}
		if !created.DueAt.Equal(due) {
			t.Errorf("due = %v, want %v", created.DueAt, due)
		}
		if lastCreate.DueDate == "" || lastCreate.StartDate != lastCreate.DueDate {
			t.Errorf("start date should mirror due date, got %+v", lastCreate)
		}
		if lastCreate.TimeZone != "UTC" {
			t.Errorf("timezone = %q, want UTC", lastCreate.TimeZone)
		}
	})

	t.Run("CreateTask all-day truncates to midnight", func(t *testing.T) {
		due := time.Date(2025, 5, 31, 6, 0, 0, 0, time.UTC)
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title:  "Water the plants",
			DueAt:  due,
			AllDay: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !lastCreate.IsAllDay {
			t.Errorf("isAllDay should be set, got %+v", lastCreate)
		}
		want := "2025-05-31T00:00:00.000+0000"
		if lastCreate.DueDate != want || lastCreate.StartDate != want {
			t.Errorf("dates = %q / %q, want %q", lastCreate.StartDate, lastCreate.DueDate, want)
		}
	})

	t.Run("CreateTask without due date", func(t *testing.T) {
		created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Someday"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.HasDue() {
			t.Errorf("expected no due date, got %v", created.DueAt)
		}
		if lastCreate.DueDate != "" || lastCreate.StartDate != "" {
			t.Errorf("no dates should be sent, got %+v", lastCreate)
		}
	})

	t.Run("ListDueOn filters by calendar date", func(t *testing.T) {
		day := time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)
		tasks, err := repo.ListDueOn(ctx, day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("got %d tasks, want 2: %+v", len(tasks), tasks)
		}
		if tasks[0].Title != "Due today" || tasks[1].Title != "Due today via dueDate" {
			t.Errorf("unexpected tasks: %+v", tasks)
		}
	})
}
