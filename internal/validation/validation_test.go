package validation

import (
	"testing"

	domainerrors "hvacops/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name  string  `json:"name" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Phone string  `json:"phone" validate:"omitempty,phone"`
	Date  *string `json:"date" validate:"omitempty,isodate"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct("Sample", &samplePayload{Name: "x", Email: "x@example.com"})
	assert.NoError(t, err)
}

func TestStruct_CollectsFieldReasons(t *testing.T) {
	badDate := "yesterday"
	err := Struct("Sample", &samplePayload{Phone: "abc", Date: &badDate})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.KindValidation, appErr.Kind())

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "phone")
	assert.Contains(t, details, "date")
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2025-06-01"))
	assert.True(t, IsISODate("2025-06-01T10:30:00Z"))
	assert.False(t, IsISODate("06/01/2025"))
	assert.False(t, IsISODate(""))
}
