// Package impl implements the entity services. Every service follows the
// same shape: reads load a deep copy of the snapshot document, writes run a
// validate-then-mutate function under the store's serialization so the
// read-modify-write cycle cannot lose updates.
package impl

import (
	"fmt"
	"net/url"
	"strings"

	domainerrors "hvacops/internal/domain/errors"

	"github.com/google/uuid"
)

// newID mints a prefixed identifier, retrying on the vanishingly unlikely
// collision with an existing record.
func newID(prefix string, exists func(string) bool) string {
	for {
		id := fmt.Sprintf("%s-%s", prefix, uuid.NewString())
		if !exists(id) {
			return id
		}
	}
}

// resolveID honors a caller-supplied id after confirming it is unused in the
// collection, and mints a fresh one when the caller supplied none.
func resolveID(supplied *string, prefix, resource string, exists func(string) bool) (string, error) {
	if supplied == nil {
		return newID(prefix, exists), nil
	}

	id := strings.TrimSpace(*supplied)
	if id == "" {
		return "", domainerrors.NewValidationError(
			fmt.Sprintf("%s id must not be blank.", resource), nil)
	}
	if exists(id) {
		return "", domainerrors.NewValidationError(
			fmt.Sprintf("%s id %q is already in use.", resource, id),
			map[string]string{"id": id})
	}

	return id, nil
}

// trimPtr trims the pointed-to string in place, preserving nil.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

// withFilter copies the raw query and pins one filter parameter, used by the
// nested listings to scope children to their parent record.
func withFilter(raw url.Values, field, value string) url.Values {
	forced := url.Values{}
	for k, v := range raw {
		forced[k] = append([]string(nil), v...)
	}
	forced.Set(field, value)
	return forced
}

func notFound(resource, id string) error {
	return domainerrors.NewNotFoundError(resource, map[string]string{"id": id})
}

// blockedDelete reports a delete refused because dependent records still
// reference the target.
func blockedDelete(resource, id string, dependents []string) error {
	return domainerrors.NewValidationError(
		fmt.Sprintf("%s %q has dependent records and cannot be deleted.", resource, id),
		map[string]any{"dependents": dependents})
}
