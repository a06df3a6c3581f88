package luminahr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) (*Client, *MemorySession) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := NewMemorySession()
	opts = append([]Option{WithSession(session)}, opts...)
	return NewClient(server.URL, opts...), session
}

func TestClient_AuthAttach(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantHeader string
	}{
		{
			name:       "token present",
			token:      "stored-token-value",
			wantHeader: "Bearer stored-token-value",
		},
		{
			name:       "no token",
			token:      "",
			wantHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHeader string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotHeader = r.Header.Get("Authorization")
				w.Write([]byte(`[]`))
			})

			client, session := newTestClient(t, handler)
			if tt.token != "" {
				session.Set(tt.token, &User{ID: "u1"})
			}

			_, err := client.Notices.List(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeader, gotHeader)
		})
	}
}

func TestClient_UnauthorizedTeardown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	})

	var expiredCalls int
	client, session := newTestClient(t, handler, WithSessionExpiredHook(func() {
		expiredCalls++
	}))
	session.Set("stale-token", &User{ID: "u1", Email: "a@b.com"})

	_, err := client.Auth.Me(context.Background())
	require.Error(t, err)

	// Session state is torn down exactly once and the error still
	// reaches the caller.
	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())
	assert.Equal(t, 1, expiredCalls)
	assert.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Could not validate credentials", apiErr.Detail())
}

func TestClient_NonUnauthorizedErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "bad request", status: http.StatusBadRequest},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]string{"detail": "An error occurred"})
			})

			var expiredCalls int
			client, session := newTestClient(t, handler, WithSessionExpiredHook(func() {
				expiredCalls++
			}))
			session.Set("valid-token", &User{ID: "u1"})

			_, err := client.Auth.Me(context.Background())
			require.Error(t, err)

			assert.Equal(t, "valid-token", session.Token())
			assert.NotNil(t, session.User())
			assert.Zero(t, expiredCalls)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestClient_DetailShapes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantDetail string
		wantItems  int
	}{
		{
			name:       "string detail",
			body:       `{"detail": "Employee not found"}`,
			wantDetail: "Employee not found",
		},
		{
			name:       "list detail",
			body:       `{"detail": [{"msg": "Password must be at least 8 characters long"}, {"msg": "Country must be one of ASEAN countries"}]}`,
			wantDetail: "Password must be at least 8 characters long",
			wantItems:  2,
		},
		{
			name:       "no detail",
			body:       `{}`,
			wantDetail: "",
		},
		{
			name:       "non-json body",
			body:       `internal server error`,
			wantDetail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(tt.body))
			})

			client, _ := newTestClient(t, handler)
			_, err := client.Auth.Me(context.Background())
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantDetail, apiErr.Detail())
			assert.Len(t, apiErr.DetailItems, tt.wantItems)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.Auth.Me(context.Background())
	require.Error(t, err)

	// No response means no APIError; callers see a plain transport error.
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestResolveBaseURL(t *testing.T) {
	t.Setenv("VITE_BACKEND_URL", "")
	t.Setenv("REACT_APP_BACKEND_URL", "")
	assert.Equal(t, "", ResolveBaseURL())

	t.Setenv("REACT_APP_BACKEND_URL", "https://legacy.example.com")
	assert.Equal(t, "https://legacy.example.com", ResolveBaseURL())

	// First non-empty wins.
	t.Setenv("VITE_BACKEND_URL", "https://api.example.com")
	assert.Equal(t, "https://api.example.com", ResolveBaseURL())
}

func TestClient_APIPrefix(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})

	client, _ := newTestClient(t, handler)
	_, err := client.Auth.Companies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/companies", gotPath)
}
