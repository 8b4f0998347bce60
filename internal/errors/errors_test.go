package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := NewUserError("subject name cannot be empty", "Provide a name")
	assert.Equal(t, "subject name cannot be empty", err.Error())
	assert.True(t, IsUserError(err))
	assert.False(t, IsSystemError(err))

	withField := NewUserErrorWithField("weight", "abc", "invalid weight", "Use a number")
	assert.Equal(t, "invalid weight: 'abc'", withField.Error())

	ue, ok := AsUserError(Wrap(withField, "creating subject"))
	assert.True(t, ok)
	assert.Equal(t, "Use a number", ue.Suggestion)
}

func TestSystemError(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewSystemErrorWithOp("save", "cannot write data file", cause)

	assert.Equal(t, "cannot write data file during save", err.Error())
	assert.True(t, IsSystemError(err))
	assert.ErrorIs(t, err, cause)

	se, ok := AsSystemError(err)
	assert.True(t, ok)
	assert.Equal(t, "save", se.Op)

	plain := NewSystemError("cannot write data file", cause)
	assert.Equal(t, "cannot write data file", plain.Error())
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))

	base := stderrors.New("boom")
	wrapped := Wrapf(base, "doing %s", "thing")
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "doing thing: boom", wrapped.Error())
}
