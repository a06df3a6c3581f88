package luminahr

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	Link      *string   `json:"link"`
}

type NotificationList struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
	Total         int            `json:"total"`
}

type NotificationCreate struct {
	Title        string  `json:"title"`
	Message      string  `json:"message"`
	Type         string  `json:"type"`
	TargetUserID *string `json:"target_user_id,omitempty"`
	Link         *string `json:"link,omitempty"`
}

// NotificationListOptions narrows the notification feed.
type NotificationListOptions struct {
	Limit      int
	Offset     int
	UnreadOnly bool
}

// NotificationService handles the in-app notification feed.
type NotificationService struct {
	client *Client
}

// List returns the caller's notifications with unread count.
func (s *NotificationService) List(ctx context.Context, opts NotificationListOptions) (*NotificationList, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.UnreadOnly {
		query.Set("unread_only", "true")
	}
	var out NotificationList
	if err := s.client.do(ctx, http.MethodGet, "/notifications", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create sends a notification to one user or the whole company (admin only).
func (s *NotificationService) Create(ctx context.Context, req NotificationCreate) (*Notification, error) {
	var out Notification
	if err := s.client.do(ctx, http.MethodPost, "/notifications", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkRead flags one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.client.do(ctx, http.MethodPut, "/notifications/"+notificationID+"/read", nil, nil, nil)
}

// MarkAllRead flags every notification of the caller as read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}

// Delete removes a notification from the feed.
func (s *NotificationService) Delete(ctx context.Context, notificationID string) error {
	return s.client.do(ctx, http.MethodDelete, "/notifications/"+notificationID, nil, nil, nil)
}
