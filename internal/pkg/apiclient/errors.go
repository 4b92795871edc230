package apiclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// ErrNoResponse is matched by every TransportError.
var ErrNoResponse = errors.New("no response from reservation api")

// TransportError reports a call that never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNoResponse.Error(), e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrNoResponse
}

// Error is a non-2xx response from the reservation API.
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("reservation api responded %d", e.Status)
	}
	return fmt.Sprintf("reservation api responded %d: %s", e.Status, strings.Join(e.Messages, "; "))
}

// Message returns the first server-provided message, or empty string.
func (e *Error) Message() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

// StatusCode returns the HTTP status of err when it is an *Error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// errorBody accepts the error shapes the API is known to send:
// {"error": "..."}, {"error": "...", "details": "..."}, {"message": "..."} and {"errors": [...]}.
type errorBody struct {
	Error   string   `json:"error"`
	Details string   `json:"details"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

func (b *errorBody) messages() []string {
	var out []string
	for _, m := range []string{b.Error, b.Message, b.Details} {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	for _, m := range b.Errors {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func newError(resp *resty.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode()}

	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		apiErr.Messages = body.messages()
	}
	if len(apiErr.Messages) == 0 {
		if raw := strings.TrimSpace(resp.String()); raw != "" && !strings.HasPrefix(raw, "{") {
			apiErr.Messages = []string{raw}
		}
	}

	return apiErr
}
