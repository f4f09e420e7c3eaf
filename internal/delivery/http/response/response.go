// Package response implements the JSON envelope shared by every booking
// service. Handlers never call c.JSON directly; the shared shape keeps the
// gateway and the owning services indistinguishable to API clients.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the wire envelope. Code mirrors the HTTP status so clients
// behind status-rewriting intermediaries can still branch on it.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable error code, e.g. "PROPERTY_NOT_FOUND",
// plus an optional human-readable elaboration.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Success writes a 2xx envelope around data.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. An empty message falls back to the
// standard status text.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

func reject(c echo.Context, statusCode int, errorCode string, message string) error {
	return Error(c, statusCode, errorCode, message, "")
}

// BadRequest rejects malformed input before it reaches a usecase.
func BadRequest(c echo.Context, errorCode string, message string) error {
	return reject(c, http.StatusBadRequest, errorCode, message)
}

// BindingError rejects a request body that could not be bound.
func BindingError(c echo.Context, errorCode string, message string) error {
	return reject(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized reports a missing or invalid bearer token.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return reject(c, http.StatusUnauthorized, errorCode, message)
}

// Forbidden reports a valid token that lacks the required authority.
func Forbidden(c echo.Context, errorCode string, message string) error {
	return reject(c, http.StatusForbidden, errorCode, message)
}

// NotFound reports an unknown resource.
func NotFound(c echo.Context, errorCode string, message string) error {
	return reject(c, http.StatusNotFound, errorCode, message)
}
