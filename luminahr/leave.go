package luminahr

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Leave request statuses. Resolved requests are immutable client-side.
const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

type LeaveRequest struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	EmployeeEmail   string     `json:"employee_email"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ReviewedBy      *string    `json:"reviewed_by"`
	ReviewedAt      *time.Time `json:"reviewed_at"`
	RejectionReason *string    `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
}

type LeaveRequestCreate struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

type LeaveSummary struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// LeaveService handles leave submission and the admin review flow.
type LeaveService struct {
	client *Client
}

// Submit files a new leave request; it starts pending.
func (s *LeaveService) Submit(ctx context.Context, req LeaveRequestCreate) error {
	return s.client.do(ctx, http.MethodPost, "/leave/request", nil, req, nil)
}

// MyRequests lists the caller's leave requests, newest first.
func (s *LeaveService) MyRequests(ctx context.Context) ([]LeaveRequest, error) {
	var out []LeaveRequest
	if err := s.client.do(ctx, http.MethodGet, "/leave/my-requests", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MySummary returns the caller's per-status counts.
func (s *LeaveService) MySummary(ctx context.Context) (*LeaveSummary, error) {
	var out LeaveSummary
	if err := s.client.do(ctx, http.MethodGet, "/leave/my-summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pending lists the company's unresolved requests (admin only).
func (s *LeaveService) Pending(ctx context.Context) ([]LeaveRequest, error) {
	var out []LeaveRequest
	if err := s.client.do(ctx, http.MethodGet, "/admin/leave/pending", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// All lists company requests, optionally filtered by status (admin only).
func (s *LeaveService) All(ctx context.Context, status string) ([]LeaveRequest, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status_filter", status)
	}
	var out []LeaveRequest
	if err := s.client.do(ctx, http.MethodGet, "/admin/leave/all", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Approve resolves a pending request as approved (admin only).
func (s *LeaveService) Approve(ctx context.Context, requestID string) error {
	return s.client.do(ctx, http.MethodPost, "/admin/leave/approve/"+requestID, nil, nil, nil)
}

// Reject resolves a pending request as rejected with a reason (admin only).
func (s *LeaveService) Reject(ctx context.Context, requestID, reason string) error {
	body := map[string]string{"rejection_reason": reason}
	return s.client.do(ctx, http.MethodPost, "/admin/leave/reject/"+requestID, nil, body, nil)
}
