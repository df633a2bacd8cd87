// Package handler contains the HTTP handlers, one per resource. Handlers
// bind and forward; all domain rules live in the entity services, and errors
// bubble up to the error middleware.
package handler

import (
	"encoding/json"
	"io"

	domainerrors "hvacops/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindJSON decodes the request body into dest, rejecting unknown fields so a
// misspelled key fails loudly instead of being silently dropped.
func bindJSON(c echo.Context, dest any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dest); err != nil {
		return domainerrors.NewValidationError(
			"request body is not valid for this operation.",
			map[string]string{"reason": err.Error()})
	}
	// A second document after the first is also malformed input.
	if dec.More() {
		return domainerrors.NewValidationError(
			"request body contains trailing content.", nil)
	}
	_, _ = io.Copy(io.Discard, c.Request().Body)

	return nil
}
