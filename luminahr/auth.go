package luminahr

import (
	"context"
	"net/http"
	"time"
)

// User roles.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// User is the backend's user snapshot as returned by login, signup and
// the profile endpoints.
type User struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	CompanyID   string     `json:"company_id"`
	CompanyName string     `json:"company_name"`
	FullName    string     `json:"full_name"`
	Department  string     `json:"department"`
	JobTitle    string     `json:"job_title"`
	Phone       string     `json:"phone"`
	IsVerified  bool       `json:"is_verified"`
	IsApproved  bool       `json:"is_approved"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
}

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Country     string `json:"country"`
	Role        string `json:"role"`
}

type SignUpResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the session-establishing payload. The caller is
// responsible for persisting it into the Session; the service itself
// performs no storage writes.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ProfileUpdate struct {
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AuthService handles signup, login and the current-user profile.
type AuthService struct {
	client *Client
}

// SignUp registers a new user. Employees joining an existing company
// start unapproved; the first signup for a company becomes its admin.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	var out SignUpResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/signup", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token and user snapshot.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	var out TokenResponse
	req := LoginRequest{Email: email, Password: password}
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the authenticated user's current snapshot.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword updates the caller's password. The backend invalidates
// outstanding tokens, so the next call on the old token will 401.
func (s *AuthService) ChangePassword(ctx context.Context, current, updated string) error {
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: updated}
	return s.client.do(ctx, http.MethodPost, "/auth/change-password", nil, req, nil)
}

// UpdateProfile applies the non-nil fields of upd to the caller's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, upd ProfileUpdate) error {
	return s.client.do(ctx, http.MethodPut, "/auth/profile", nil, upd, nil)
}

// Companies lists registered companies. Public, used by the signup form.
func (s *AuthService) Companies(ctx context.Context) ([]Company, error) {
	var out []Company
	if err := s.client.do(ctx, http.MethodGet, "/companies", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
