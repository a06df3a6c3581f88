package luminahr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveService_Submit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/leave/request", r.URL.Path)

		var req LeaveRequestCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-09-01", req.StartDate)
		assert.Equal(t, "2026-09-05", req.EndDate)

		json.NewEncoder(w).Encode(map[string]string{"message": "Leave request submitted successfully"})
	})

	client, _ := newTestClient(t, handler)
	err := client.Leave.Submit(context.Background(), LeaveRequestCreate{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Reason:    "Family vacation",
	})
	require.NoError(t, err)
}

func TestLeaveService_Reject(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/leave/reject/req-1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Team is short-staffed that week", body["rejection_reason"])

		json.NewEncoder(w).Encode(map[string]string{"message": "Leave request rejected"})
	})

	client, _ := newTestClient(t, handler)
	err := client.Leave.Reject(context.Background(), "req-1", "Team is short-staffed that week")
	require.NoError(t, err)
}

func TestLeaveService_MySummary(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/leave/my-summary", r.URL.Path)
		json.NewEncoder(w).Encode(LeaveSummary{Pending: 1, Approved: 3, Rejected: 1, Total: 5})
	})

	client, _ := newTestClient(t, handler)
	summary, err := client.Leave.MySummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, summary.Total, summary.Pending+summary.Approved+summary.Rejected)
}

func TestLeaveService_AllStatusFilter(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/leave/all", r.URL.Path)
		assert.Equal(t, LeavePending, r.URL.Query().Get("status_filter"))
		w.Write([]byte(`[]`))
	})

	client, _ := newTestClient(t, handler)
	_, err := client.Leave.All(context.Background(), LeavePending)
	require.NoError(t, err)
}

// Two identical list calls with no intervening mutation must decode to
// structurally identical results.
func TestLeaveService_IdempotentRefetch(t *testing.T) {
	payload := `[
		{"id": "req-1", "employee_id": "emp-1", "employee_name": "John Doe", "employee_email": "john@co.com",
		 "start_date": "2026-09-01", "end_date": "2026-09-05", "reason": "Vacation", "status": "pending",
		 "reviewed_by": null, "reviewed_at": null, "rejection_reason": null, "created_at": "2026-08-20T10:00:00Z"},
		{"id": "req-2", "employee_id": "emp-2", "employee_name": "Jane Smith", "employee_email": "jane@co.com",
		 "start_date": "2026-10-01", "end_date": "2026-10-02", "reason": "Appointment", "status": "approved",
		 "reviewed_by": "adm-1", "reviewed_at": "2026-08-21T09:00:00Z", "rejection_reason": null, "created_at": "2026-08-19T08:00:00Z"}
	]`
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	client, _ := newTestClient(t, handler)
	first, err := client.Leave.MyRequests(context.Background())
	require.NoError(t, err)
	second, err := client.Leave.MyRequests(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
