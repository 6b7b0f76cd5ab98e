package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeState, "encoder is not fitted")

	assert.Equal(t, ErrorTypeState, err.Type)
	assert.Equal(t, "state: encoder is not fitted", err.Error())
	assert.NotEmpty(t, err.Stack)
	assert.Nil(t, err.Cause)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrorTypeNotFound, "column %q not found", "bar")
	assert.Equal(t, "not_found: column \"bar\" not found", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("expected string, got int64")
	err := Wrap(cause, ErrorTypeData, "cannot expand column")

	assert.Equal(t, "data: cannot expand column: expected string, got int64", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeData, "ignored"))
}

func TestWrapPreservesStack(t *testing.T) {
	inner := New(ErrorTypeData, "bad value")
	outer := Wrap(inner, ErrorTypeValidation, "row rejected")

	require.NotEmpty(t, outer.Stack)
	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeState, "not fitted")

	assert.True(t, IsType(err, ErrorTypeState))
	assert.False(t, IsType(err, ErrorTypeData))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeState))

	// Wrapped errors report the outermost type
	wrapped := Wrap(err, ErrorTypeConfig, "bad setup")
	assert.True(t, IsType(wrapped, ErrorTypeConfig))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeData, "cannot expand").
		WithDetail("column", "bar").
		WithDetail("rows", 42)

	assert.Equal(t, "bar", err.Details["column"])
	assert.Equal(t, 42, err.Details["rows"])
}
