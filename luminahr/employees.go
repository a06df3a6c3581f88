package luminahr

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Employee is the admin-facing listing view of a user.
type Employee struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	JobTitle   string    `json:"job_title"`
	IsActive   bool      `json:"is_active"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

// PendingEmployee is a signup awaiting admin approval.
type PendingEmployee struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type TerminationRequest struct {
	Reason        string `json:"reason"`
	Notes         string `json:"notes"`
	EffectiveDate string `json:"effective_date"`
}

type TerminationResponse struct {
	Message       string `json:"message"`
	EffectiveDate string `json:"effective_date"`
}

type Termination struct {
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	Reason        string    `json:"reason"`
	Notes         string    `json:"notes"`
	EffectiveDate string    `json:"effective_date"`
	TerminatedAt  time.Time `json:"terminated_at"`
}

type TerminationList struct {
	Terminations []Termination `json:"terminations"`
	Total        int           `json:"total"`
}

// BulkEmployee is one row of a bulk import.
type BulkEmployee struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department,omitempty"`
	JobTitle   string `json:"job_title,omitempty"`
	Role       string `json:"role,omitempty"`
}

type BulkImportRequest struct {
	Employees []BulkEmployee `json:"employees"`
}

type BulkImportResult struct {
	Message string `json:"message"`
	Created []struct {
		Email        string `json:"email"`
		FullName     string `json:"full_name"`
		TempPassword string `json:"temp_password"`
	} `json:"created"`
	Skipped []struct {
		Email  string `json:"email"`
		Reason string `json:"reason"`
	} `json:"skipped"`
}

// CompanyStats is the admin dashboard aggregate.
type CompanyStats struct {
	TotalEmployees    int     `json:"total_employees"`
	ActiveEmployees   int     `json:"active_employees"`
	PendingApprovals  int     `json:"pending_approvals"`
	AdminCount        int     `json:"admin_count"`
	EmployeeCount     int     `json:"employee_count"`
	CheckedInToday    int     `json:"checked_in_today"`
	PendingLeaves     int     `json:"pending_leaves"`
	AttendanceRate    float64 `json:"attendance_rate"`
	NewHiresThisMonth int     `json:"new_hires_this_month"`
	Departments       []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	} `json:"departments"`
}

// EmployeeService covers the admin employee-management endpoints.
type EmployeeService struct {
	client *Client
}

// List returns all users of the admin's company.
func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := s.client.do(ctx, http.MethodGet, "/admin/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the non-nil fields of upd to an employee's profile.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, upd ProfileUpdate) (*Employee, error) {
	var out Employee
	if err := s.client.do(ctx, http.MethodPut, "/admin/employees/"+employeeID, nil, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an employee record entirely.
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/employees/"+employeeID, nil, nil, nil)
}

// Pending lists employees awaiting approval.
func (s *EmployeeService) Pending(ctx context.Context) ([]PendingEmployee, error) {
	var out []PendingEmployee
	if err := s.client.do(ctx, http.MethodGet, "/admin/pending-employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Approve accepts a pending employee into the company.
func (s *EmployeeService) Approve(ctx context.Context, employeeID string) error {
	return s.client.do(ctx, http.MethodPost, "/admin/approve-employee/"+employeeID, nil, nil, nil)
}

// Reject declines a pending employee.
func (s *EmployeeService) Reject(ctx context.Context, employeeID string) error {
	return s.client.do(ctx, http.MethodPost, "/admin/reject-employee/"+employeeID, nil, nil, nil)
}

// Terminate deactivates an employee and records the termination. The
// record stays; the backend never deletes terminated users.
func (s *EmployeeService) Terminate(ctx context.Context, employeeID string, req TerminationRequest) (*TerminationResponse, error) {
	var out TerminationResponse
	if err := s.client.do(ctx, http.MethodPost, "/admin/employees/"+employeeID+"/terminate", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TerminationReasons returns the backend's accepted reason values.
func (s *EmployeeService) TerminationReasons(ctx context.Context) ([]string, error) {
	var out struct {
		Reasons []string `json:"reasons"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/admin/termination-reasons", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Reasons, nil
}

// Terminations returns the company's termination history.
func (s *EmployeeService) Terminations(ctx context.Context) (*TerminationList, error) {
	var out TerminationList
	if err := s.client.do(ctx, http.MethodGet, "/admin/terminations", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkImport creates the given employees, auto-approved with temporary
// passwords. Rows with already-registered emails come back in Skipped.
func (s *EmployeeService) BulkImport(ctx context.Context, employees []BulkEmployee) (*BulkImportResult, error) {
	var out BulkImportResult
	req := BulkImportRequest{Employees: employees}
	if err := s.client.do(ctx, http.MethodPost, "/admin/employees/bulk-import", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignDepartment moves an employee into the named department.
func (s *EmployeeService) AssignDepartment(ctx context.Context, employeeID, department string) error {
	query := url.Values{"department": {department}}
	return s.client.do(ctx, http.MethodPut, "/admin/employees/"+employeeID+"/department", query, nil, nil)
}

// Stats returns the admin dashboard aggregates.
func (s *EmployeeService) Stats(ctx context.Context) (*CompanyStats, error) {
	var out CompanyStats
	if err := s.client.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseBulkImport turns pasted text into import rows, one per line:
//
//	full_name, email[, department[, job_title]]
//
// Lines without both a name and an email are dropped silently, matching
// the paste-and-go behavior of the import dialog.
func ParseBulkImport(text string) []BulkEmployee {
	var employees []BulkEmployee
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		emp := BulkEmployee{}
		if len(parts) > 0 {
			emp.FullName = parts[0]
		}
		if len(parts) > 1 {
			emp.Email = parts[1]
		}
		if len(parts) > 2 {
			emp.Department = parts[2]
		}
		if len(parts) > 3 {
			emp.JobTitle = parts[3]
		}

		if emp.FullName == "" || emp.Email == "" {
			continue
		}
		employees = append(employees, emp)
	}
	return employees
}
