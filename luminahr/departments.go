package luminahr

import (
	"context"
	"net/http"
	"time"
)

type Department struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	EmployeeCount int       `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type DepartmentCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DepartmentUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DepartmentService handles the company's department directory.
type DepartmentService struct {
	client *Client
}

// List returns the company's departments with employee counts.
func (s *DepartmentService) List(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := s.client.do(ctx, http.MethodGet, "/departments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create adds a department (admin only).
func (s *DepartmentService) Create(ctx context.Context, req DepartmentCreate) (*Department, error) {
	var out Department
	if err := s.client.do(ctx, http.MethodPost, "/admin/departments", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update renames or re-describes a department (admin only). Renaming
// cascades to its members server-side.
func (s *DepartmentService) Update(ctx context.Context, departmentID string, upd DepartmentUpdate) error {
	return s.client.do(ctx, http.MethodPut, "/admin/departments/"+departmentID, nil, upd, nil)
}

// Delete removes a department; its members fall back to Unassigned.
func (s *DepartmentService) Delete(ctx context.Context, departmentID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/departments/"+departmentID, nil, nil, nil)
}

// Employees lists the members of a department (admin only).
func (s *DepartmentService) Employees(ctx context.Context, departmentID string) ([]Employee, error) {
	var out []Employee
	if err := s.client.do(ctx, http.MethodGet, "/admin/departments/"+departmentID+"/employees", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
