package luminahr

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Job posting statuses.
const (
	JobOpen   = "open"
	JobClosed = "closed"
	JobOnHold = "on_hold"
)

// Applicant pipeline statuses. The UI presents these as a linear
// pipeline with rejected as a side branch, but the backend accepts any
// member of the set in any order.
const (
	ApplicantNew       = "new"
	ApplicantScreening = "screening"
	ApplicantInterview = "interview"
	ApplicantOffer     = "offer"
	ApplicantHired     = "hired"
	ApplicantRejected  = "rejected"
)

type JobPosting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	SalaryRange    string    `json:"salary_range"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	Status         string    `json:"status"`
	ApplicantCount int       `json:"applicant_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type JobPostingCreate struct {
	Title          string `json:"title"`
	Department     string `json:"department"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	SalaryRange    string `json:"salary_range"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
}

type Applicant struct {
	ID            string     `json:"id"`
	JobPostingID  string     `json:"job_posting_id"`
	JobTitle      string     `json:"job_title"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	InterviewDate *time.Time `json:"interview_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ApplicantCreate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

// ApplicantStatusUpdate carries the optional extras of a status change.
type ApplicantStatusUpdate struct {
	Notes         string
	InterviewDate string // ISO date, set when moving into interview
}

// PublicJob is the shareable careers view of a posting.
type PublicJob struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	Description    string    `json:"description"`
	Requirements   string    `json:"requirements"`
	SalaryRange    string    `json:"salary_range"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	CompanyName    string    `json:"company_name"`
	CompanyCountry string    `json:"company_country"`
	CreatedAt      time.Time `json:"created_at"`
	IsOpen         bool      `json:"is_open"`
	Status         string    `json:"status"`
}

type PublicJobList struct {
	Jobs []struct {
		ID             string    `json:"id"`
		Title          string    `json:"title"`
		Department     string    `json:"department"`
		Location       string    `json:"location"`
		EmploymentType string    `json:"employment_type"`
		CompanyName    string    `json:"company_name"`
		CreatedAt      time.Time `json:"created_at"`
	} `json:"jobs"`
	Total int `json:"total"`
}

type RecruitmentStats struct {
	TotalJobs       int `json:"total_jobs"`
	OpenJobs        int `json:"open_jobs"`
	ClosedJobs      int `json:"closed_jobs"`
	TotalApplicants int `json:"total_applicants"`
	NewApplicants   int `json:"new_applicants"`
	InInterview     int `json:"in_interview"`
	Hired           int `json:"hired"`
}

type ApplyResponse struct {
	Message     string `json:"message"`
	ApplicantID string `json:"applicant_id"`
}

// RecruitmentService handles job postings, applicants and the public
// careers endpoints.
type RecruitmentService struct {
	client *Client
}

// Jobs lists the company's postings, optionally filtered by status.
func (s *RecruitmentService) Jobs(ctx context.Context, status string) ([]JobPosting, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status_filter", status)
	}
	var out []JobPosting
	if err := s.client.do(ctx, http.MethodGet, "/admin/jobs", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateJob opens a new posting.
func (s *RecruitmentService) CreateJob(ctx context.Context, req JobPostingCreate) (*JobPosting, error) {
	var out JobPosting
	if err := s.client.do(ctx, http.MethodPost, "/admin/jobs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJob replaces a posting's editable fields.
func (s *RecruitmentService) UpdateJob(ctx context.Context, jobID string, req JobPostingCreate) (*JobPosting, error) {
	var out JobPosting
	if err := s.client.do(ctx, http.MethodPut, "/admin/jobs/"+jobID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJobStatus moves a posting between open, on_hold and closed.
// Closing triggers a company notice server-side.
func (s *RecruitmentService) UpdateJobStatus(ctx context.Context, jobID, status string) error {
	body := map[string]string{"status": status}
	return s.client.do(ctx, http.MethodPut, "/admin/jobs/"+jobID+"/status", nil, body, nil)
}

// DeleteJob removes a posting and its applicants.
func (s *RecruitmentService) DeleteJob(ctx context.Context, jobID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/jobs/"+jobID, nil, nil, nil)
}

// Applicants lists a posting's applicants, optionally by status.
func (s *RecruitmentService) Applicants(ctx context.Context, jobID, status string) ([]Applicant, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status_filter", status)
	}
	var out []Applicant
	if err := s.client.do(ctx, http.MethodGet, "/admin/jobs/"+jobID+"/applicants", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddApplicant records an applicant sourced outside the careers page.
func (s *RecruitmentService) AddApplicant(ctx context.Context, jobID string, req ApplicantCreate) (*ApplyResponse, error) {
	var out ApplyResponse
	if err := s.client.do(ctx, http.MethodPost, "/admin/jobs/"+jobID+"/applicants", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateApplicantStatus moves an applicant to status; the backend
// validates membership in the status set only, not pipeline order.
func (s *RecruitmentService) UpdateApplicantStatus(ctx context.Context, applicantID, status string, upd ApplicantStatusUpdate) error {
	query := url.Values{"new_status": {status}}
	if upd.Notes != "" {
		query.Set("notes", upd.Notes)
	}
	if upd.InterviewDate != "" {
		query.Set("interview_date", upd.InterviewDate)
	}
	return s.client.do(ctx, http.MethodPut, "/admin/applicants/"+applicantID+"/status", query, nil, nil)
}

// DeleteApplicant removes an applicant record.
func (s *RecruitmentService) DeleteApplicant(ctx context.Context, applicantID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/applicants/"+applicantID, nil, nil, nil)
}

// Stats returns recruitment funnel aggregates (admin only).
func (s *RecruitmentService) Stats(ctx context.Context) (*RecruitmentStats, error) {
	var out RecruitmentStats
	if err := s.client.do(ctx, http.MethodGet, "/admin/recruitment/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicJobs lists open postings across companies. No auth required.
func (s *RecruitmentService) PublicJobs(ctx context.Context) (*PublicJobList, error) {
	var out PublicJobList
	if err := s.client.do(ctx, http.MethodGet, "/careers", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicJob fetches one shareable posting. Callers should branch on
// IsNotFound to present the "job no longer available" state.
func (s *RecruitmentService) PublicJob(ctx context.Context, jobID string) (*PublicJob, error) {
	var out PublicJob
	if err := s.client.do(ctx, http.MethodGet, "/careers/"+jobID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Apply submits a public application. One application per email per job.
func (s *RecruitmentService) Apply(ctx context.Context, jobID string, req ApplicantCreate) (*ApplyResponse, error) {
	var out ApplyResponse
	if err := s.client.do(ctx, http.MethodPost, "/careers/"+jobID+"/apply", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
