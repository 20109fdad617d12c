package oaserrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidInputError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &InvalidInputError{Path: "item.1.item", Expected: "array", Actual: "object", Message: "folder children"}
		assert.Equal(t, "invalid input shape at item.1.item: expected array, got object: folder children", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "invalid input shape", (&InvalidInputError{}).Error())
	})

	t.Run("Matches sentinel through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("converter: %w", &InvalidInputError{Path: "$"})
		assert.ErrorIs(t, wrapped, ErrInvalidInput)
		assert.NotErrorIs(t, wrapped, ErrParse)

		var target *InvalidInputError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "$", target.Path)
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("unexpected EOF")
		err := &ParseError{Path: "collection.json", Message: "invalid JSON", Cause: cause}
		assert.Equal(t, "parse error in collection.json: invalid JSON: unexpected EOF", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		assert.NoError(t, (&ParseError{}).Unwrap())
	})
}

func TestResourceLimitError(t *testing.T) {
	tests := []struct {
		name string
		err  *ResourceLimitError
		want string
	}{
		{"empty", &ResourceLimitError{}, "resource limit exceeded"},
		{"type only", &ResourceLimitError{ResourceType: "nesting_depth"}, "resource limit exceeded: nesting_depth"},
		{"limit and actual", &ResourceLimitError{ResourceType: "nesting_depth", Limit: 64, Actual: 65}, "resource limit exceeded: nesting_depth (limit: 64, actual: 65)"},
		{"limit with message", &ResourceLimitError{ResourceType: "input_size", Limit: 10, Message: "too big"}, "resource limit exceeded: input_size (limit: 10): too big"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrResourceLimit)
		})
	}
}

func TestConfigError(t *testing.T) {
	cause := errors.New("bad version")
	err := &ConfigError{Option: "WithTargetVersion", Value: "3.1.0", Message: "only 3.0.x is supported", Cause: cause}
	assert.Equal(t, "configuration error for WithTargetVersion (value: 3.1.0): only 3.0.x is supported: bad version", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, cause)
}
