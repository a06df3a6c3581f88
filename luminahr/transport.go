package luminahr

import (
	"log/slog"
	"net/http"
)

// sessionTransport is the interceptor pair of the client: it attaches
// the bearer token to every outgoing request and tears the session down
// when the backend answers 401. The 401 still propagates to the caller
// so call sites can handle the failure after the teardown runs.
type sessionTransport struct {
	next             http.RoundTripper
	session          Session
	onSessionExpired func()
	logger           *slog.Logger
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.session.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.logger.Warn("session invalidated by backend",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
		)
		t.session.Clear()
		if t.onSessionExpired != nil {
			t.onSessionExpired()
		}
	}

	return resp, nil
}
