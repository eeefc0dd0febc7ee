//go:build unix

package console

import (
	"unicode/utf16"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// osPlatform maps the console primitives onto file descriptors. Terminals
// interpret ANSI sequences natively, so enabling virtual terminal processing
// succeeds exactly when the descriptor is a terminal.
type osPlatform struct{}

// NewPlatform returns the file descriptor based implementation
func NewPlatform() Platform {
	return osPlatform{}
}

func (osPlatform) StdHandle(s Stream) (Handle, error) {
	if s == StreamError {
		return Handle(unix.Stderr), nil
	}
	return Handle(unix.Stdout), nil
}

func (osPlatform) FileType(h Handle) (FileType, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(h), &st); err != nil {
		return FileTypeUnknown, err
	}
	switch uint32(st.Mode) & unix.S_IFMT {
	case unix.S_IFREG, unix.S_IFBLK, unix.S_IFDIR:
		return FileTypeDisk, nil
	case unix.S_IFCHR:
		return FileTypeChar, nil
	case unix.S_IFIFO, unix.S_IFSOCK:
		return FileTypePipe, nil
	default:
		return FileTypeUnknown, nil
	}
}

func (osPlatform) EnableVirtualTerminal(h Handle) error {
	if !term.IsTerminal(int(h)) {
		return unix.ENOTTY
	}
	return nil
}

func (osPlatform) VirtualTerminalEnabled(h Handle) (bool, error) {
	if !term.IsTerminal(int(h)) {
		return false, unix.ENOTTY
	}
	return true, nil
}

func (p osPlatform) WriteConsole(h Handle, text []uint16) (int, error) {
	if _, err := p.WriteFile(h, []byte(string(utf16.Decode(text)))); err != nil {
		return 0, err
	}
	return len(text), nil
}

func (osPlatform) WriteFile(h Handle, b []byte) (int, error) {
	written := 0
	for written < len(b) {
		n, err := unix.Write(int(h), b[written:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}

func (osPlatform) IsCygwinPipe(h Handle) bool {
	return isatty.IsCygwinTerminal(uintptr(h))
}
