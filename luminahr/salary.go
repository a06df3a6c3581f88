package luminahr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type SalaryRecord struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name"`
	EmployeeEmail string     `json:"employee_email"`
	Month         int        `json:"month"`
	Year          int        `json:"year"`
	GrossSalary   float64    `json:"gross_salary"`
	Deductions    float64    `json:"deductions"`
	NetSalary     float64    `json:"net_salary"`
	Currency      string     `json:"currency"`
	PaymentDate   *time.Time `json:"payment_date"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MySalary is the employee's own view of a salary record.
type MySalary struct {
	Month       int        `json:"month"`
	Year        int        `json:"year"`
	GrossSalary float64    `json:"gross_salary"`
	Deductions  float64    `json:"deductions"`
	NetSalary   float64    `json:"net_salary"`
	Currency    string     `json:"currency"`
	PaymentDate *time.Time `json:"payment_date"`
}

type SalaryRecordCreate struct {
	EmployeeID  string  `json:"employee_id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	GrossSalary float64 `json:"gross_salary"`
	Deductions  float64 `json:"deductions"`
	Currency    string  `json:"currency"`
	Notes       string  `json:"notes"`
}

// NetSalary is the client-side preview of the server's net computation:
// gross minus deductions. It is a pure echo for forms; the server's
// figure on the returned record stays authoritative.
func NetSalary(gross, deductions float64) float64 {
	return gross - deductions
}

// SalaryService handles payroll records; creation is admin-only,
// employees see only their own rows.
type SalaryService struct {
	client *Client
}

// Mine returns the caller's record for a month, defaulting server-side
// to the current month when month/year are zero.
func (s *SalaryService) Mine(ctx context.Context, month, year int) (*MySalary, error) {
	query := url.Values{}
	if month > 0 {
		query.Set("month", strconv.Itoa(month))
	}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}
	var out MySalary
	if err := s.client.do(ctx, http.MethodGet, "/salary/mine", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyHistory returns the caller's salary rows, newest first.
func (s *SalaryService) MyHistory(ctx context.Context) ([]MySalary, error) {
	var out []MySalary
	if err := s.client.do(ctx, http.MethodGet, "/salary/my-history", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create upserts the record for the employee's month/year pair and
// returns the stored row with the server-computed net salary.
func (s *SalaryService) Create(ctx context.Context, req SalaryRecordCreate) (*SalaryRecord, error) {
	var out SalaryRecord
	if err := s.client.do(ctx, http.MethodPost, "/admin/salary", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns the company's salary records (admin only).
func (s *SalaryService) List(ctx context.Context) ([]SalaryRecord, error) {
	var out []SalaryRecord
	if err := s.client.do(ctx, http.MethodGet, "/admin/salaries", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a salary record (admin only).
func (s *SalaryService) Delete(ctx context.Context, salaryID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/salary/"+salaryID, nil, nil, nil)
}
