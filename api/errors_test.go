package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorContextAndUnwrap(t *testing.T) {
	err := NewError(ErrCodeInvalidArgument, "bad size")
	assert.Equal(t, "bad size", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	err.WithContext("size", 0)
	assert.Equal(t, "bad size (context: map[size:0])", err.Error())

	internal := &Error{Code: ErrCodeInternal, Message: "boom"}
	assert.False(t, errors.Is(internal, ErrInvalidArgument))
	internal.WithContext("k", "v")
	assert.Equal(t, "v", internal.Context["k"])
}
