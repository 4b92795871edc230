package apperror

import "errors"

// AppError is a custom error type that includes an HTTP status code and optional details.
type AppError struct {
	Code    int      // HTTP Status Code (e.g., 400, 409)
	Message string   // User-facing error message
	Details []string // Extra messages, usually relayed from the reservation API
	Err     error    // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails returns a copy of e carrying the given details.
// The copy wraps e, so errors.Is still matches the original sentinel.
func (e *AppError) WithDetails(message string, details ...string) *AppError {
	if message == "" {
		message = e.Message
	}
	return &AppError{
		Code:    e.Code,
		Message: message,
		Details: details,
		Err:     e,
	}
}

// StatusOf returns the HTTP status carried by err, or fallback when err is not an AppError.
func StatusOf(err error, fallback int) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return fallback
}
