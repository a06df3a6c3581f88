package luminahr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecruitmentService_JobsFilter(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/jobs", r.URL.Path)
		assert.Equal(t, JobOpen, r.URL.Query().Get("status_filter"))
		w.Write([]byte(`[{"id": "job-1", "title": "Engineer", "status": "open", "applicant_count": 4, "created_at": "2026-08-01T00:00:00Z"}]`))
	})

	client, _ := newTestClient(t, handler)
	jobs, err := client.Recruitment.Jobs(context.Background(), JobOpen)
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, 4, jobs[0].ApplicantCount)
}

func TestRecruitmentService_UpdateApplicantStatus(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/admin/applicants/app-1/status", r.URL.Path)
		assert.Equal(t, ApplicantInterview, r.URL.Query().Get("new_status"))
		assert.Equal(t, "Strong phone screen", r.URL.Query().Get("notes"))
		assert.Equal(t, "2026-09-10", r.URL.Query().Get("interview_date"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Applicant status updated"})
	})

	client, _ := newTestClient(t, handler)
	err := client.Recruitment.UpdateApplicantStatus(context.Background(), "app-1", ApplicantInterview, ApplicantStatusUpdate{
		Notes:         "Strong phone screen",
		InterviewDate: "2026-09-10",
	})
	require.NoError(t, err)
}

func TestRecruitmentService_UpdateApplicantStatus_NoExtras(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ApplicantRejected, r.URL.Query().Get("new_status"))
		assert.False(t, r.URL.Query().Has("notes"))
		assert.False(t, r.URL.Query().Has("interview_date"))
		json.NewEncoder(w).Encode(map[string]string{"message": "Applicant status updated"})
	})

	client, _ := newTestClient(t, handler)
	err := client.Recruitment.UpdateApplicantStatus(context.Background(), "app-1", ApplicantRejected, ApplicantStatusUpdate{})
	require.NoError(t, err)
}

func TestRecruitmentService_PublicJobNotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/careers/gone", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Job posting not found"})
	})

	client, _ := newTestClient(t, handler)
	_, err := client.Recruitment.PublicJob(context.Background(), "gone")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRecruitmentService_Apply(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/careers/job-1/apply", r.URL.Path)

		var req ApplicantCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@co.com", req.Email)

		json.NewEncoder(w).Encode(ApplyResponse{Message: "Application submitted successfully", ApplicantID: "app-2"})
	})

	client, _ := newTestClient(t, handler)
	resp, err := client.Recruitment.Apply(context.Background(), "job-1", ApplicantCreate{
		Name:  "Jane Smith",
		Email: "jane@co.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "app-2", resp.ApplicantID)
}

func TestRecruitmentService_DuplicateApply(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "You have already applied for this position"})
	})

	client, _ := newTestClient(t, handler)
	_, err := client.Recruitment.Apply(context.Background(), "job-1", ApplicantCreate{Email: "jane@co.com"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "You have already applied for this position", apiErr.Detail())
}
