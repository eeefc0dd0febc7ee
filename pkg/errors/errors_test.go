// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, OS codes and lookups through chains

package errors_test

import (
	stderrors "errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stdwriter/pkg/errors"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.Error
		want string
	}{
		{
			name: "message only",
			err:  errors.New(errors.ErrInvalidHandle, "no standard output"),
			want: "[INVALID_HANDLE] no standard output",
		},
		{
			name: "formatted message",
			err:  errors.Newf(errors.ErrConfigValid, "unknown mode %q", "rainbow"),
			want: `[CONFIG_INVALID] unknown mode "rainbow"`,
		},
		{
			name: "os code",
			err:  errors.New(errors.ErrConsoleWrite, "console write failed").WithOSCode(6),
			want: "[CONSOLE_WRITE] console write failed (code 6)",
		},
		{
			name: "os code and cause",
			err:  errors.Wrap(syscall.EBADF, errors.ErrFileWrite, "write failed").WithOSCode(9),
			want: "[FILE_WRITE] write failed (code 9): " + syscall.EBADF.Error(),
		},
		{
			name: "wrapped with format",
			err:  errors.Wrapf(stderrors.New("denied"), errors.ErrFileAccess, "open %s", "out.log"),
			want: "[FILE_ACCESS] open out.log: denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewInitializesDetails(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "missing")

	require.NotNil(t, err.Details)
	assert.Equal(t, errors.NoOSCode, err.OSCode)
	assert.Nil(t, err.Wrapped)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrConsoleWrite, "console write failed").
		WithDetail("handle", uintptr(7)).
		WithDetails(map[string]interface{}{"chars": 12, "mode": "legacy"})

	assert.Equal(t, uintptr(7), err.Details["handle"])
	assert.Equal(t, 12, err.Details["chars"])
	assert.Equal(t, "legacy", err.Details["mode"])

	wrapped := fmt.Errorf("probe: %w", err)
	assert.Equal(t, err.Details, errors.GetErrorDetails(wrapped))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIsMatchesCode(t *testing.T) {
	a := errors.New(errors.ErrConsoleMode, "stdout")
	b := errors.New(errors.ErrConsoleMode, "stderr")
	c := errors.New(errors.ErrConsoleWrite, "stdout")

	assert.True(t, stderrors.Is(a, b))
	assert.False(t, stderrors.Is(a, c))
}

func TestCodeLookup(t *testing.T) {
	root := syscall.EINVAL
	fileErr := errors.Wrap(root, errors.ErrFileAccess, "cannot read config")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")
	cliErr := fmt.Errorf("setup: %w", configErr)

	tests := []struct {
		name   string
		err    error
		code   errors.ErrorCode
		is     bool
		lookup errors.ErrorCode
	}{
		{"outermost structured error wins", cliErr, errors.ErrConfigLoad, true, errors.ErrConfigLoad},
		{"inner code does not match", cliErr, errors.ErrFileAccess, false, errors.ErrConfigLoad},
		{"direct", fileErr, errors.ErrFileAccess, true, errors.ErrFileAccess},
		{"plain error", root, errors.ErrFileAccess, false, errors.ErrUnknown},
		{"nil", nil, errors.ErrUnknown, false, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.is, errors.IsErrorCode(tt.err, tt.code))
			assert.Equal(t, tt.lookup, errors.GetErrorCode(tt.err))
		})
	}

	assert.True(t, stderrors.Is(cliErr, root))
}

func TestGetOSCode(t *testing.T) {
	inner := errors.New(errors.ErrConsoleMode, "set mode").WithOSCode(87)
	outer := errors.Wrap(inner, errors.ErrInternal, "detect")

	tests := []struct {
		name string
		err  error
		want int64
	}{
		{"direct", inner, 87},
		{"found through chain", fmt.Errorf("cli: %w", outer), 87},
		{"no code", errors.New(errors.ErrInternal, "x"), errors.NoOSCode},
		{"plain error", stderrors.New("plain"), errors.NoOSCode},
		{"nil", nil, errors.NoOSCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.GetOSCode(tt.err))
		})
	}
}
