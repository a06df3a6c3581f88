package luminahr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBulkImport(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []BulkEmployee
	}{
		{
			name: "valid line and malformed line",
			text: "John Doe, john@co.com, Engineering, Engineer\nBad Line With No Comma",
			want: []BulkEmployee{
				{FullName: "John Doe", Email: "john@co.com", Department: "Engineering", JobTitle: "Engineer"},
			},
		},
		{
			name: "name and email only",
			text: "Jane Smith, jane@co.com",
			want: []BulkEmployee{
				{FullName: "Jane Smith", Email: "jane@co.com"},
			},
		},
		{
			name: "blank lines skipped",
			text: "\n\nJohn Doe, john@co.com\n\n",
			want: []BulkEmployee{
				{FullName: "John Doe", Email: "john@co.com"},
			},
		},
		{
			name: "missing email dropped",
			text: "John Doe,",
			want: nil,
		},
		{
			name: "missing name dropped",
			text: ", john@co.com",
			want: nil,
		},
		{
			name: "whitespace trimmed",
			text: "  John Doe ,  john@co.com ,  Engineering ,  Engineer  ",
			want: []BulkEmployee{
				{FullName: "John Doe", Email: "john@co.com", Department: "Engineering", JobTitle: "Engineer"},
			},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseBulkImport(tt.text))
		})
	}
}

func TestEmployeeService_BulkImport(t *testing.T) {
	var gotBody BulkImportRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/employees/bulk-import", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Imported 1 employees, skipped 1",
			"created": []map[string]string{
				{"email": "john@co.com", "full_name": "John Doe", "temp_password": "Temp@Abcdef12"},
			},
			"skipped": []map[string]string{
				{"email": "jane@co.com", "reason": "Email already exists"},
			},
		})
	})

	client, _ := newTestClient(t, handler)
	result, err := client.Employees.BulkImport(context.Background(), []BulkEmployee{
		{FullName: "John Doe", Email: "john@co.com"},
		{FullName: "Jane Smith", Email: "jane@co.com"},
	})
	require.NoError(t, err)

	assert.Len(t, gotBody.Employees, 2)
	assert.Len(t, result.Created, 1)
	assert.Len(t, result.Skipped, 1)
	assert.Equal(t, "Email already exists", result.Skipped[0].Reason)
}

func TestEmployeeService_AssignDepartment(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/employees/emp-1/department", r.URL.Path)
		assert.Equal(t, "Engineering", r.URL.Query().Get("department"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Employee assigned to Engineering"})
	})

	client, _ := newTestClient(t, handler)
	err := client.Employees.AssignDepartment(context.Background(), "emp-1", "Engineering")
	require.NoError(t, err)
}

func TestEmployeeService_Terminate(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/employees/emp-1/terminate", r.URL.Path)

		var req TerminationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Voluntary Resignation", req.Reason)

		json.NewEncoder(w).Encode(TerminationResponse{
			Message:       "Employee terminated successfully. Reason: Voluntary Resignation",
			EffectiveDate: "2026-09-01",
		})
	})

	client, _ := newTestClient(t, handler)
	resp, err := client.Employees.Terminate(context.Background(), "emp-1", TerminationRequest{
		Reason:        "Voluntary Resignation",
		EffectiveDate: "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", resp.EffectiveDate)
}

func TestEmployeeService_Stats(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/stats", r.URL.Path)
		w.Write([]byte(`{
			"total_employees": 12,
			"active_employees": 10,
			"pending_approvals": 2,
			"admin_count": 1,
			"employee_count": 11,
			"checked_in_today": 7,
			"pending_leaves": 3,
			"attendance_rate": 70.0,
			"new_hires_this_month": 1,
			"departments": [{"name": "Engineering", "count": 5}, {"name": "Unassigned", "count": 7}]
		}`))
	})

	client, _ := newTestClient(t, handler)
	stats, err := client.Employees.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalEmployees)
	assert.Equal(t, 2, stats.PendingApprovals)
	assert.InDelta(t, 70.0, stats.AttendanceRate, 0.001)
	require.Len(t, stats.Departments, 2)
	assert.Equal(t, "Engineering", stats.Departments[0].Name)
}
