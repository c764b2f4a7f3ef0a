package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	inner := errors.New("node not found")

	err := NewError("load board", inner)

	assert.EqualError(t, err, "error in load board: node not found")
	assert.ErrorIs(t, err, inner, "Expected the wrapped error to stay unwrappable")
}
