// Package luminahr is a typed client for the LuminaHR REST API.
//
// A Client owns a single HTTP transport through which every resource
// service (auth, attendance, leave, salary, notices, departments,
// employees, recruitment, chat, notifications, tasks, performance)
// issues its calls. The transport attaches the bearer token from the
// injected Session before each request and tears the session down on
// any 401 response, so callers get uniform session semantics without
// per-call boilerplate.
package luminahr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	apiPrefix      = "/api"
	defaultTimeout = 30 * time.Second
)

// ResolveBaseURL returns the backend base URL from the environment:
// VITE_BACKEND_URL first, then REACT_APP_BACKEND_URL, else empty
// (empty means same-origin, requests go to the bare /api prefix).
func ResolveBaseURL() string {
	for _, key := range []string{"VITE_BACKEND_URL", "REACT_APP_BACKEND_URL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// Client is the single construction point for all LuminaHR network I/O.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
	logger     *slog.Logger

	Auth          *AuthService
	Employees     *EmployeeService
	Attendance    *AttendanceService
	Leave         *LeaveService
	Salary        *SalaryService
	Notices       *NoticeService
	Departments   *DepartmentService
	Recruitment   *RecruitmentService
	Chat          *ChatService
	Notifications *NotificationService
	Tasks         *TaskService
	Performance   *PerformanceService
	Contact       *ContactService
}

// Option configures a Client.
type Option func(*options)

type options struct {
	session          Session
	logger           *slog.Logger
	timeout          time.Duration
	onSessionExpired func()
	metrics          *Metrics
	transport        http.RoundTripper
}

// WithSession injects the session store the transport reads the bearer
// token from. Defaults to an empty in-memory session.
func WithSession(s Session) Option {
	return func(o *options) { o.session = s }
}

// WithLogger sets the structured logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithSessionExpiredHook registers fn to run after the transport clears
// the session on a 401, typically to prompt for a fresh login. It fires
// exactly once per 401 response.
func WithSessionExpiredHook(fn func()) Option {
	return func(o *options) { o.onSessionExpired = fn }
}

// WithMetrics instruments the transport with the given request metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTransport replaces the base RoundTripper under the interceptors.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// NewClient builds a client for the backend at baseURL. An empty
// baseURL falls back to ResolveBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	o := &options{
		session: NewMemorySession(),
		logger:  slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	if baseURL == "" {
		baseURL = ResolveBaseURL()
	}

	rt := o.transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	if o.metrics != nil {
		rt = o.metrics.instrument(rt)
	}
	rt = &sessionTransport{
		next:             rt,
		session:          o.session,
		onSessionExpired: o.onSessionExpired,
		logger:           o.logger,
	}

	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Transport: rt, Timeout: o.timeout},
		session:    o.session,
		logger:     o.logger,
	}

	c.Auth = &AuthService{client: c}
	c.Employees = &EmployeeService{client: c}
	c.Attendance = &AttendanceService{client: c}
	c.Leave = &LeaveService{client: c}
	c.Salary = &SalaryService{client: c}
	c.Notices = &NoticeService{client: c}
	c.Departments = &DepartmentService{client: c}
	c.Recruitment = &RecruitmentService{client: c}
	c.Chat = &ChatService{client: c}
	c.Notifications = &NotificationService{client: c}
	c.Tasks = &TaskService{client: c}
	c.Performance = &PerformanceService{client: c}
	c.Contact = &ContactService{client: c}

	return c
}

// Session returns the session store the client was built with.
func (c *Client) Session() Session {
	return c.session
}

// BaseURL returns the resolved backend base URL (without the /api prefix).
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs one JSON round trip. body is marshalled when non-nil, out
// is filled from the response body when non-nil. Errors from the
// backend come back as *APIError; transport failures are wrapped plain
// errors with no response attached.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes an already-built request and decodes the response.
// Used directly by the multipart upload path.
func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(resp.StatusCode, payload)
		c.logger.Warn("api error",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("detail", apiErr.Detail()),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
