package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("settings.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "settings.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "settings.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("settings.yaml", 0, fmt.Errorf("bad document"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.NotContains(t, err.Error(), "line")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("columns[2].key", "duplicate column key \"name\"", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "columns[2].key", validationErr.Field)
	require.Contains(t, validationErr.Message, "duplicate column key")
}

func TestValidationErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("collision")
	err := NewValidationError("rows[4]", "row key \"7\" already used", underlying)

	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "rows[4]")
}
