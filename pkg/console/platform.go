package console

import (
	stderrors "errors"
	"syscall"
)

// Handle is a native output handle: a Win32 HANDLE on Windows, a file
// descriptor elsewhere.
type Handle uintptr

// InvalidHandle mirrors INVALID_HANDLE_VALUE
const InvalidHandle = ^Handle(0)

// Valid reports whether h is neither null nor INVALID_HANDLE_VALUE
func (h Handle) Valid() bool {
	return h != 0 && h != InvalidHandle
}

// Stream identifies one of the two standard output streams
type Stream int

const (
	StreamOutput Stream = iota
	StreamError
)

func (s Stream) String() string {
	if s == StreamError {
		return "stderr"
	}
	return "stdout"
}

// FileType is the kind of object behind a handle
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeDisk
	FileTypeChar
	FileTypePipe
)

// Platform is the set of OS primitives the detector and the writer need.
// NewPlatform returns the implementation for the running OS; tests supply fakes.
type Platform interface {
	// StdHandle returns the native handle of a standard stream
	StdHandle(s Stream) (Handle, error)
	// FileType reports what kind of object h refers to
	FileType(h Handle) (FileType, error)
	// EnableVirtualTerminal turns on ANSI processing for a console handle.
	// The change persists for the lifetime of the console.
	EnableVirtualTerminal(h Handle) error
	// VirtualTerminalEnabled reports whether ANSI processing is already on
	VirtualTerminalEnabled(h Handle) (bool, error)
	// WriteConsole writes UTF-16 code units to a console, returning units written
	WriteConsole(h Handle, text []uint16) (int, error)
	// WriteFile writes raw bytes, returning bytes written
	WriteFile(h Handle, b []byte) (int, error)
	// IsCygwinPipe reports whether h is a Cygwin or MSYS pty pipe
	IsCygwinPipe(h Handle) bool
}

// osCode extracts the numeric platform error from err, or 0
func osCode(err error) int64 {
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		return int64(errno)
	}
	return 0
}
