// Package respond provides utilities for sending HTTP responses in JSON format.
// Error bodies have the shape {"detail": "..."}; internal errors are sanitized
// and logged instead of being returned to the client.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Detail string `json:"detail" example:"Video not found"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Detail writes an error response carrying msg verbatim.
func Detail(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Detail: msg})
}

// Error writes err's message verbatim. Use only for errors known to be safe.
func Error(w http.ResponseWriter, code int, err error) {
	Detail(w, code, err.Error())
}

// safeKeywords mark validation-style messages that may be shown to users.
var safeKeywords = []string{
	"required",
	"invalid",
	"not found",
	"already",
	"must be",
	"cannot be",
	"more views",
	"expected",
}

// SafeError sends err to the client only when it is safe to show.
//
// An *AppError always sends its UserMsg. Otherwise messages matching a
// validation keyword are sent as-is, and everything else (and any 5xx) becomes
// "internal server error" with the sanitized cause logged.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("application error",
				slog.String("status", http.StatusText(appErr.Code)),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		Detail(w, appErr.Code, appErr.UserMsg)
		return
	}

	msg := err.Error()
	if code < 500 && isSafeMessage(msg) {
		Detail(w, code, msg)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	Detail(w, code, "internal server error")
}

func isSafeMessage(msg string) bool {
	lower := strings.ToLower(msg)
	for _, kw := range safeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// AppError is an error type that carries a user-facing message.
type AppError struct {
	UserMsg string // Message to display to users
	Err     error  // Internal error (logged for debugging)
	Code    int    // HTTP status code
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}
