// Package response writes the JSON bodies shared by every HTTP handler.
// Success payloads are route specific; errors share ErrorResponse.
package response

import (
	"net/http"

	deliverycontext "performiq/internal/delivery/context"
	domainerrors "performiq/internal/domain/errors"
	"performiq/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every JSON error.
type ErrorResponse struct {
	Error     string `json:"error"`             // User-friendly message
	Message   string `json:"message,omitempty"` // Detailed description, omitted for 500s
	Code      string `json:"code"`              // Business error code, e.g. "OAUTH_UNAVAILABLE"
	RequestID string `json:"request_id,omitempty"`
}

// SuccessResponse is returned by mutations without a payload of their own.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// JSON writes data as is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes {"success": true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Error writes an error body. Details of internal errors never reach the client.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode == http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Message:   details,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BadRequestWithDetails 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError writes domain errors. Anything else is returned for the
// error middleware to log.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
