package luminahr

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_List(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notifications", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("unread_only"))
		assert.False(t, r.URL.Query().Has("offset"))
		w.Write([]byte(`{"notifications": [{"id": "n1", "title": "Leave approved", "message": "Your leave was approved", "type": "leave", "is_read": false, "created_at": "2026-08-28T12:00:00Z", "link": null}], "unread_count": 1, "total": 7}`))
	})

	client, _ := newTestClient(t, handler)
	list, err := client.Notifications.List(context.Background(), NotificationListOptions{Limit: 20, UnreadOnly: true})
	require.NoError(t, err)

	assert.Equal(t, 1, list.UnreadCount)
	assert.Equal(t, 7, list.Total)
	require.Len(t, list.Notifications, 1)
	assert.False(t, list.Notifications[0].IsRead)
}

func TestNotificationService_MarkRead(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/notifications/n1/read", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "Notification marked as read"})
	})

	client, _ := newTestClient(t, handler)
	require.NoError(t, client.Notifications.MarkRead(context.Background(), "n1"))
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/notifications/read-all", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"message": "All notifications marked as read"})
	})

	client, _ := newTestClient(t, handler)
	require.NoError(t, client.Notifications.MarkAllRead(context.Background()))
}

func TestNotificationService_Create(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req NotificationCreate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Office closed Friday", req.Title)
		assert.Nil(t, req.TargetUserID, "company-wide broadcast omits the target")

		json.NewEncoder(w).Encode(Notification{ID: "n2", Title: req.Title, Message: req.Message, Type: req.Type})
	})

	client, _ := newTestClient(t, handler)
	created, err := client.Notifications.Create(context.Background(), NotificationCreate{
		Title:   "Office closed Friday",
		Message: "Building maintenance",
		Type:    "announcement",
	})
	require.NoError(t, err)
	assert.Equal(t, "n2", created.ID)
}
