package luminahr

import (
	"context"
	"net/http"
	"net/url"
)

// Task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"
)

type Task struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	AssignedTo     string  `json:"assigned_to"`
	AssignedToName string  `json:"assigned_to_name"`
	AssignedBy     string  `json:"assigned_by"`
	AssignedByName string  `json:"assigned_by_name"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	Category       string  `json:"category"`
	DueDate        *string `json:"due_date"`
	CompletedAt    *string `json:"completed_at"`
	CreatedAt      string  `json:"created_at"`
}

type TaskList struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

type TaskCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	DueDate     string `json:"due_date,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Category    string `json:"category,omitempty"`
}

type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// TaskFilter narrows the admin task listing.
type TaskFilter struct {
	EmployeeID string
	Status     string
}

// TaskCounts are the per-status tab counts of the task board.
type TaskCounts struct {
	All        int
	Pending    int
	InProgress int
	Completed  int
	Cancelled  int
}

// CountByStatus derives the tab counts from a task list. Pure; callers
// recompute it whenever the underlying list changes.
func CountByStatus(tasks []Task) TaskCounts {
	counts := TaskCounts{All: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case TaskPending:
			counts.Pending++
		case TaskInProgress:
			counts.InProgress++
		case TaskCompleted:
			counts.Completed++
		case TaskCancelled:
			counts.Cancelled++
		}
	}
	return counts
}

// TaskService handles task assignment and progress tracking.
type TaskService struct {
	client *Client
}

// Create assigns a task to an employee (admin only).
func (s *TaskService) Create(ctx context.Context, req TaskCreate) error {
	return s.client.do(ctx, http.MethodPost, "/admin/tasks", nil, req, nil)
}

// All lists company tasks, optionally filtered (admin only).
func (s *TaskService) All(ctx context.Context, filter TaskFilter) (*TaskList, error) {
	query := url.Values{}
	if filter.EmployeeID != "" {
		query.Set("employee_id", filter.EmployeeID)
	}
	if filter.Status != "" {
		query.Set("status_filter", filter.Status)
	}
	var out TaskList
	if err := s.client.do(ctx, http.MethodGet, "/admin/tasks", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// My lists tasks assigned to the caller, optionally by status.
func (s *TaskService) My(ctx context.Context, status string) (*TaskList, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status_filter", status)
	}
	var out TaskList
	if err := s.client.do(ctx, http.MethodGet, "/tasks/my", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies the non-nil fields of upd to a task. Assignees may
// update status; the rest is admin-side.
func (s *TaskService) Update(ctx context.Context, taskID string, upd TaskUpdate) error {
	return s.client.do(ctx, http.MethodPut, "/tasks/"+taskID, nil, upd, nil)
}

// Delete removes a task (admin only).
func (s *TaskService) Delete(ctx context.Context, taskID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/tasks/"+taskID, nil, nil, nil)
}
