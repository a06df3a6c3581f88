package luminahr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxDocumentSize is the client-side upload cap. The guard runs before
// any network I/O; the server stays the authority on what it accepts.
const MaxDocumentSize = 10 * 1024 * 1024

var allowedDocumentExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ErrInvalidDocument is wrapped by the upload guard's rejections.
var ErrInvalidDocument = fmt.Errorf("invalid knowledge document")

type KnowledgeDocument struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	ChunkCount int       `json:"chunk_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type KnowledgeDocumentList struct {
	Documents []KnowledgeDocument `json:"documents"`
	Total     int                 `json:"total"`
}

type UploadResult struct {
	Message        string   `json:"message"`
	DocumentID     string   `json:"document_id"`
	Filename       string   `json:"filename"`
	ChunksCreated  int      `json:"chunks_created"`
	Duplicate      bool     `json:"duplicate"`
	StepsCompleted []string `json:"steps_completed"`
}

// ChatSource names a knowledge document a response was grounded on.
type ChatSource struct {
	Name      string  `json:"name"`
	Relevance float64 `json:"relevance,omitempty"`
}

type ChatTurn struct {
	Response  string       `json:"response"`
	Sources   []ChatSource `json:"sources"`
	SessionID string       `json:"session_id"`
	Reasoning string       `json:"reasoning"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Sources   []string  `json:"sources"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
	Total    int           `json:"total"`
}

type ClearHistoryResult struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

// ChatService is the front-end of the document-grounded assistant. The
// retrieval pipeline lives entirely in the backend; this service only
// uploads documents and exchanges chat turns.
type ChatService struct {
	client *Client
}

// NewSessionID returns a fresh conversation id. The backend also
// generates one when a turn is sent without a session id; generating it
// client-side keeps the whole conversation under one id from the start.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidateDocument is the client-side upload guard: extension must be
// .pdf, .doc or .docx and size must not exceed MaxDocumentSize.
func ValidateDocument(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedDocumentExts[ext] {
		return fmt.Errorf("%w: only PDF, DOC and DOCX files are supported", ErrInvalidDocument)
	}
	if size > MaxDocumentSize {
		return fmt.Errorf("%w: file exceeds the 10 MB limit", ErrInvalidDocument)
	}
	return nil
}

// Upload sends a document to the knowledge base as multipart form data
// under the single field "file". The guard rejects bad files before any
// request is made.
func (s *ChatService) Upload(ctx context.Context, filename string, size int64, content io.Reader) (*UploadResult, error) {
	if err := ValidateDocument(filename, size); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.url("/admin/chat/upload", nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var out UploadResult
	if err := s.client.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Documents lists the company's knowledge documents.
func (s *ChatService) Documents(ctx context.Context) (*KnowledgeDocumentList, error) {
	var out KnowledgeDocumentList
	if err := s.client.do(ctx, http.MethodGet, "/admin/chat/documents", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes a document and its indexed chunks.
func (s *ChatService) DeleteDocument(ctx context.Context, documentID string) error {
	return s.client.do(ctx, http.MethodDelete, "/admin/chat/documents/"+documentID, nil, nil, nil)
}

// Send exchanges one chat turn. An empty sessionID starts a fresh
// conversation; the returned turn carries the id to continue it.
func (s *ChatService) Send(ctx context.Context, message, sessionID string) (*ChatTurn, error) {
	body := map[string]string{"message": message}
	if sessionID != "" {
		body["session_id"] = sessionID
	}
	var out ChatTurn
	if err := s.client.do(ctx, http.MethodPost, "/admin/chat", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns past messages in chronological order, company-wide or
// scoped to one session.
func (s *ChatService) History(ctx context.Context, sessionID string, limit int) (*ChatHistory, error) {
	query := url.Values{}
	if sessionID != "" {
		query.Set("session_id", sessionID)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var out ChatHistory
	if err := s.client.do(ctx, http.MethodGet, "/admin/chat/history", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearHistory deletes messages, company-wide or for one session.
func (s *ChatService) ClearHistory(ctx context.Context, sessionID string) (*ClearHistoryResult, error) {
	query := url.Values{}
	if sessionID != "" {
		query.Set("session_id", sessionID)
	}
	var out ClearHistoryResult
	if err := s.client.do(ctx, http.MethodDelete, "/admin/chat/history", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
