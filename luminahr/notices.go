package luminahr

import (
	"context"
	"net/http"
	"time"
)

type Notice struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	PublisherName string    `json:"publisher_name"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

type NoticeCreate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoticeUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// NoticeService handles company announcements.
type NoticeService struct {
	client *Client
}

// List returns active notices visible to every employee.
func (s *NoticeService) List(ctx context.Context) ([]Notice, error) {
	var out []Notice
	if err := s.client.do(ctx, http.MethodGet, "/notices", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// All returns every notice including inactive ones (admin only).
func (s *NoticeService) All(ctx context.Context) ([]Notice, error) {
	var out []Notice
	if err := s.client.do(ctx, http.MethodGet, "/admin/notices/all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create publishes a notice (admin only).
func (s *NoticeService) Create(ctx context.Context, req NoticeCreate) (*Notice, error) {
	var out Notice
	if err := s.client.do(ctx, http.MethodPost, "/admin/notices", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies the non-nil fields of upd to a notice (admin only).
func (s *NoticeService) Update(ctx context.Context, noticeID string, upd NoticeUpdate) error {
	return s.client.do(ctx, http.MethodPut, "/admin/notices/"+noticeID, nil, upd, nil)
}

// Delete removes a notice (admin only).
func (s *NoticeService) Delete(ctx context.Context, noticeID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/notices/"+noticeID, nil, nil, nil)
}
