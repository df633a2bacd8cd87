// Package response defines the wire shapes of the HTTP API. Listings are
// returned as {items, meta}, errors as {error, message, details}.
package response

import (
	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload returned for every failed request.
type ErrorBody struct {
	Error   string `json:"error"`             // machine-readable kind
	Message string `json:"message"`           // human-readable explanation
	Details any    `json:"details,omitempty"` // optional structured context
}

// Error writes an error payload with the given status.
func Error(c echo.Context, statusCode int, kind, message string, details any) error {
	return c.JSON(statusCode, ErrorBody{
		Error:   kind,
		Message: message,
		Details: details,
	})
}
