package luminahr

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{name: "executable rejected", filename: "resume.exe", size: 1024, wantErr: true},
		{name: "9MB pdf accepted", filename: "handbook.pdf", size: 9 * 1024 * 1024, wantErr: false},
		{name: "11MB pdf rejected", filename: "handbook.pdf", size: 11 * 1024 * 1024, wantErr: true},
		{name: "doc accepted", filename: "policy.doc", size: 1024, wantErr: false},
		{name: "docx accepted", filename: "policy.docx", size: 1024, wantErr: false},
		{name: "uppercase extension accepted", filename: "POLICY.PDF", size: 1024, wantErr: false},
		{name: "exactly 10MB accepted", filename: "policy.pdf", size: MaxDocumentSize, wantErr: false},
		{name: "no extension rejected", filename: "policy", size: 1024, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.filename, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDocument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChatService_UploadGuardSkipsNetwork(t *testing.T) {
	var requests int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	client, _ := newTestClient(t, handler)

	_, err := client.Chat.Upload(context.Background(), "resume.exe", 1024, strings.NewReader("MZ"))
	require.ErrorIs(t, err, ErrInvalidDocument)

	_, err = client.Chat.Upload(context.Background(), "big.pdf", 11*1024*1024, bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrInvalidDocument)

	assert.Zero(t, requests, "guard rejections must not reach the network")
}

func TestChatService_Upload(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/chat/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "handbook.pdf", header.Filename)
		assert.Equal(t, "%PDF-1.7 test", string(content))

		json.NewEncoder(w).Encode(UploadResult{
			Message:       "Document uploaded and processed successfully",
			DocumentID:    "doc-1",
			Filename:      header.Filename,
			ChunksCreated: 12,
		})
	})

	client, session := newTestClient(t, handler)
	session.Set("admin-token", &User{ID: "u1", Role: RoleAdmin})

	content := "%PDF-1.7 test"
	result, err := client.Chat.Upload(context.Background(), "handbook.pdf", int64(len(content)), strings.NewReader(content))
	require.NoError(t, err)

	assert.Equal(t, "doc-1", result.DocumentID)
	assert.Equal(t, 12, result.ChunksCreated)
	assert.False(t, result.Duplicate)
}

func TestChatService_Send(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/chat", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "What is the leave policy?", body["message"])
		assert.Equal(t, "sess-1", body["session_id"])

		json.NewEncoder(w).Encode(ChatTurn{
			Response:  "Employees are entitled to 20 days of annual leave.",
			Sources:   []ChatSource{{Name: "handbook.pdf"}},
			SessionID: "sess-1",
		})
	})

	client, _ := newTestClient(t, handler)
	turn, err := client.Chat.Send(context.Background(), "What is the leave policy?", "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", turn.SessionID)
	require.Len(t, turn.Sources, 1)
	assert.Equal(t, "handbook.pdf", turn.Sources[0].Name)
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestChatService_ClearHistory(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/admin/chat/history", r.URL.Path)
		assert.Equal(t, "sess-1", r.URL.Query().Get("session_id"))
		json.NewEncoder(w).Encode(ClearHistoryResult{Message: "Deleted 4 messages", DeletedCount: 4})
	})

	client, _ := newTestClient(t, handler)
	result, err := client.Chat.ClearHistory(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 4, result.DeletedCount)
}
