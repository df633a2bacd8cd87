// Package middleware contains the HTTP-level error mapping.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"hvacops/internal/delivery/http/response"
	domainerrors "hvacops/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware maps errors escaping the handlers onto the API error body.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.Kind(), appErr.Error(), appErr.Details())
		return
	}

	// Echo raises its own errors for unknown routes and bad methods.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		kind := domainerrors.KindValidation
		if httpErr.Code == http.StatusNotFound {
			kind = domainerrors.KindNotFound
		} else if httpErr.Code >= http.StatusInternalServerError {
			kind = domainerrors.KindInternal
		}
		_ = response.Error(c, httpErr.Code, kind, fmt.Sprintf("%v", httpErr.Message), nil)
		return
	}

	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.KindInternal,
		"internal server error", nil)
}
