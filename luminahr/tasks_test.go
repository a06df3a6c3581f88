package luminahr

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountByStatus(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  TaskCounts
	}{
		{
			name: "mixed statuses",
			tasks: []Task{
				{Status: TaskPending}, {Status: TaskPending}, {Status: TaskPending},
				{Status: TaskInProgress}, {Status: TaskInProgress},
				{Status: TaskCompleted},
			},
			want: TaskCounts{All: 6, Pending: 3, InProgress: 2, Completed: 1},
		},
		{
			name:  "empty list",
			tasks: nil,
			want:  TaskCounts{},
		},
		{
			name: "unknown status counts toward all only",
			tasks: []Task{
				{Status: "archived"},
				{Status: TaskCancelled},
			},
			want: TaskCounts{All: 2, Cancelled: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountByStatus(tt.tasks))
		})
	}
}

func TestCountByStatus_RecomputesOnChange(t *testing.T) {
	tasks := []Task{{Status: TaskPending}}
	assert.Equal(t, TaskCounts{All: 1, Pending: 1}, CountByStatus(tasks))

	tasks[0].Status = TaskCompleted
	tasks = append(tasks, Task{Status: TaskPending})
	assert.Equal(t, TaskCounts{All: 2, Pending: 1, Completed: 1}, CountByStatus(tasks))
}

func TestTaskService_All(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/tasks", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status_filter"))
		assert.Equal(t, "emp-1", r.URL.Query().Get("employee_id"))
		w.Write([]byte(`{"tasks": [{"id": "t1", "title": "Write report", "status": "pending", "priority": "high", "category": "general", "created_at": "2026-08-01T00:00:00"}], "total": 1}`))
	})

	client, _ := newTestClient(t, handler)
	list, err := client.Tasks.All(context.Background(), TaskFilter{EmployeeID: "emp-1", Status: TaskPending})
	require.NoError(t, err)

	assert.Equal(t, 1, list.Total)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, "Write report", list.Tasks[0].Title)
}

func TestTaskService_Update(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/t1", r.URL.Path)
		w.Write([]byte(`{"message": "Task updated"}`))
	})

	client, _ := newTestClient(t, handler)
	status := TaskCompleted
	err := client.Tasks.Update(context.Background(), "t1", TaskUpdate{Status: &status})
	require.NoError(t, err)
}
