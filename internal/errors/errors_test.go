package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidArgumentError(t *testing.T) {
	tests := []struct {
		name string
		err  *InvalidArgumentError
		want string
	}{
		{
			name: "with argument",
			err:  NewInvalidArgumentError("--api", "unknown API %q", "fast"),
			want: `invalid argument --api: unknown API "fast"`,
		},
		{
			name: "without argument",
			err:  NewInvalidArgumentError("", "input file is required"),
			want: "invalid argument: input file is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, IsInvalidArgument(tt.err))
			assert.False(t, IsInvalidInput(tt.err))
		})
	}
}

func TestInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("data.ion", fs.ErrNotExist)

	assert.Contains(t, err.Error(), `"data.ion"`)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, IsInvalidInput(err))

	wrapped := fmt.Errorf("read benchmark: %w", err)
	assert.True(t, IsInvalidInput(wrapped))
	assert.False(t, IsInvalidArgument(wrapped))
}

func TestIsNotImplemented(t *testing.T) {
	err := fmt.Errorf("read with iterator API: %w", ErrNotImplemented)
	assert.True(t, IsNotImplemented(err))
	assert.False(t, IsNotImplemented(errors.New("other")))
	assert.False(t, IsNotImplemented(nil))
}
