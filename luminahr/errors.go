package luminahr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSession is returned by operations that need a stored token when
// the session is anonymous.
var ErrNoSession = errors.New("no active session")

// APIError is an error response from the backend. The backend's detail
// field is either a plain string or a list of {msg} objects when the
// framework returns validation errors unwrapped, so both shapes are
// kept and normalized lazily by Detail.
type APIError struct {
	StatusCode  int
	RawDetail   json.RawMessage
	DetailItems []DetailItem
	detail      string
}

// DetailItem is one entry of a list-shaped validation detail.
type DetailItem struct {
	Msg string `json:"msg"`
}

func newAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Detail == nil {
		return apiErr
	}
	apiErr.RawDetail = envelope.Detail

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		apiErr.detail = s
		return apiErr
	}

	var items []DetailItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		apiErr.DetailItems = items
		if len(items) > 0 {
			apiErr.detail = items[0].Msg
		}
	}

	return apiErr
}

// Detail returns the user-facing message: the detail string, or the
// first message of a list-shaped detail. Empty when the body carried
// neither form.
func (e *APIError) Detail() string {
	return e.detail
}

func (e *APIError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404. The public careers
// page uses this to show its dedicated "job no longer available" state.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
