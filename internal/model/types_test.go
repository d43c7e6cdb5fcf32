package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSortOrder_String verifies that the empty order renders as "asc",
// since callers treat it as the default direction.
func TestSortOrder_String(t *testing.T) {
	tests := []struct {
		order    SortOrder
		expected string
	}{
		{OrderAsc, "asc"},
		{OrderDesc, "desc"},
		{"", "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.order.String())
		})
	}
}

// TestSortOrder_IsValid checks that only defined directions pass validation.
func TestSortOrder_IsValid(t *testing.T) {
	assert.True(t, OrderAsc.IsValid())
	assert.True(t, OrderDesc.IsValid())
	assert.True(t, SortOrder("").IsValid())
	assert.False(t, SortOrder("up").IsValid())
}

// TestSortOrder_IsDesc verifies that only OrderDesc reports descending.
func TestSortOrder_IsDesc(t *testing.T) {
	assert.True(t, OrderDesc.IsDesc())
	assert.False(t, OrderAsc.IsDesc())
	assert.False(t, SortOrder("").IsDesc())
}

// TestParseSortOrder verifies string-to-order conversion,
// including case normalization and error cases.
func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input    string
		expected SortOrder
		hasError bool
	}{
		{"asc", OrderAsc, false},
		{"desc", OrderDesc, false},
		{"DESC", OrderDesc, false}, // case insensitive
		{" asc ", OrderAsc, false}, // surrounding spaces
		{"", OrderAsc, false},      // default
		{"random", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseSortOrder(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestListLine_String checks that a ListLine reassembles its source line.
func TestListLine_String(t *testing.T) {
	l := ListLine{Prefix: "  - [ ] ", Content: "buy milk"}
	assert.Equal(t, "  - [ ] buy milk", l.String())
	assert.Equal(t, "", ListLine{}.String())
}

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitConfigNotFound, "config file not found")
		assert.Equal(t, ExitConfigNotFound, err.Code)
		assert.Equal(t, "config file not found", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitSourceUnreadable, "failed to read source", inner)
		assert.Equal(t, ExitSourceUnreadable, err.Code)
		assert.Equal(t, "failed to read source: permission denied", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.Is chain", func(t *testing.T) {
		inner := errors.New("unexpected token")
		err := WrapCLIError(ExitTransformFailed, "type erasure failed", inner)
		assert.True(t, errors.Is(err, inner))

		var cliErr *CLIError
		require.True(t, errors.As(error(err), &cliErr))
		assert.Equal(t, ExitTransformFailed, cliErr.Code)
	})
}
