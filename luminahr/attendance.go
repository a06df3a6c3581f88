package luminahr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Attendance statuses. One record per employee per day.
const (
	AttendanceNotCheckedIn = "not_checked_in"
	AttendanceCheckedIn    = "checked_in"
	AttendanceCompleted    = "completed"
)

type AttendanceRecord struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	Date         string     `json:"date"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
}

type CheckInResponse struct {
	Message     string    `json:"message"`
	CheckInTime time.Time `json:"check_in_time"`
	Status      string    `json:"status"`
}

type CheckOutResponse struct {
	Message      string    `json:"message"`
	CheckOutTime time.Time `json:"check_out_time"`
	Status       string    `json:"status"`
}

// TodayAttendance is the employee's own state for the current day.
type TodayAttendance struct {
	Status       string     `json:"status"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	CanCheckIn   bool       `json:"can_check_in"`
	CanCheckOut  bool       `json:"can_check_out"`
}

// CompanyAttendanceRecord is the admin view, enriched with employee info.
type CompanyAttendanceRecord struct {
	AttendanceRecord
	EmployeeName  string `json:"employee_name"`
	EmployeeEmail string `json:"employee_email"`
}

type CompanyAttendance struct {
	Records []CompanyAttendanceRecord `json:"records"`
	Total   int                       `json:"total"`
}

type AttendanceStats struct {
	TotalEmployees int     `json:"total_employees"`
	CheckedIn      int     `json:"checked_in"`
	Completed      int     `json:"completed"`
	NotCheckedIn   int     `json:"not_checked_in"`
	AttendanceRate float64 `json:"attendance_rate"`
	Date           string  `json:"date"`
}

// CompanyAttendanceFilter narrows the admin attendance listing.
type CompanyAttendanceFilter struct {
	Date       string // YYYY-MM-DD
	EmployeeID string
	Limit      int
}

// AttendanceService handles daily check-in/out and the admin views.
type AttendanceService struct {
	client *Client
}

// CheckIn opens today's attendance record. The backend rejects a second
// check-in on the same day with a 400.
func (s *AttendanceService) CheckIn(ctx context.Context) (*CheckInResponse, error) {
	var out CheckInResponse
	if err := s.client.do(ctx, http.MethodPost, "/attendance/check-in", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckOut completes today's record; requires a prior check-in.
func (s *AttendanceService) CheckOut(ctx context.Context) (*CheckOutResponse, error) {
	var out CheckOutResponse
	if err := s.client.do(ctx, http.MethodPost, "/attendance/check-out", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyStatus returns the caller's state for today.
func (s *AttendanceService) MyStatus(ctx context.Context) (*TodayAttendance, error) {
	var out TodayAttendance
	if err := s.client.do(ctx, http.MethodGet, "/attendance/my-status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyHistory returns the caller's recent records, newest first.
func (s *AttendanceService) MyHistory(ctx context.Context, limit int) ([]AttendanceRecord, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out []AttendanceRecord
	if err := s.client.do(ctx, http.MethodGet, "/attendance/my-history", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Company lists attendance records across the company (admin only).
func (s *AttendanceService) Company(ctx context.Context, filter CompanyAttendanceFilter) (*CompanyAttendance, error) {
	query := url.Values{}
	if filter.Date != "" {
		query.Set("date_filter", filter.Date)
	}
	if filter.EmployeeID != "" {
		query.Set("employee_id", filter.EmployeeID)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var out CompanyAttendance
	if err := s.client.do(ctx, http.MethodGet, "/admin/attendance", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns today's company attendance aggregates (admin only).
func (s *AttendanceService) Stats(ctx context.Context) (*AttendanceStats, error) {
	var out AttendanceStats
	if err := s.client.do(ctx, http.MethodGet, "/admin/attendance/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
