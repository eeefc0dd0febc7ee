//go:build !windows && !unix

package console

import (
	"errors"
	"os"
	"unicode/utf16"
)

var errUnsupported = errors.New("console: unsupported platform")

// osPlatform treats every handle as a plain stream backed by os.Stdout or os.Stderr.
type osPlatform struct{}

// NewPlatform returns a stream-only implementation
func NewPlatform() Platform {
	return osPlatform{}
}

func (osPlatform) StdHandle(s Stream) (Handle, error) {
	if s == StreamError {
		return Handle(os.Stderr.Fd()), nil
	}
	return Handle(os.Stdout.Fd()), nil
}

func (osPlatform) FileType(Handle) (FileType, error) { return FileTypePipe, nil }

func (osPlatform) EnableVirtualTerminal(Handle) error { return errUnsupported }

func (osPlatform) VirtualTerminalEnabled(Handle) (bool, error) { return false, errUnsupported }

func (p osPlatform) WriteConsole(h Handle, text []uint16) (int, error) {
	if _, err := p.WriteFile(h, []byte(string(utf16.Decode(text)))); err != nil {
		return 0, err
	}
	return len(text), nil
}

func (osPlatform) WriteFile(h Handle, b []byte) (int, error) {
	switch uintptr(h) {
	case os.Stdout.Fd():
		return os.Stdout.Write(b)
	case os.Stderr.Fd():
		return os.Stderr.Write(b)
	}
	return 0, errUnsupported
}

func (osPlatform) IsCygwinPipe(Handle) bool { return false }
