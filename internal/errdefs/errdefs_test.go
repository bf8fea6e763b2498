package errdefs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NotFound("template %q not found", "web"), `template "web" not found`},
		{"with path", AlreadyExists("demo", "destination is not empty"), "destination is not empty (demo)"},
		{"with cause", IO(fs.ErrPermission, "src/main.py", "writing file"), "writing file (src/main.py): permission denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("resolving template: %w", NotFound("missing"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsIO(err))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestUnwrapKeepsCause(t *testing.T) {
	err := IO(fs.ErrNotExist, "t.yaml", "reading template source")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, IsIO(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(InvalidArgument("bad")))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidTemplate", KindInvalidTemplate.String())
	assert.Equal(t, "IOError", KindIO.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}
