//go:build windows

package console

import (
	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

type osPlatform struct{}

// NewPlatform returns the Win32 console implementation
func NewPlatform() Platform {
	return osPlatform{}
}

func (osPlatform) StdHandle(s Stream) (Handle, error) {
	id := uint32(windows.STD_OUTPUT_HANDLE)
	if s == StreamError {
		id = uint32(windows.STD_ERROR_HANDLE)
	}
	h, err := windows.GetStdHandle(id)
	if err != nil {
		return InvalidHandle, err
	}
	return Handle(h), nil
}

func (osPlatform) FileType(h Handle) (FileType, error) {
	ft, err := windows.GetFileType(windows.Handle(h))
	if err != nil {
		return FileTypeUnknown, err
	}
	switch ft {
	case windows.FILE_TYPE_DISK:
		return FileTypeDisk, nil
	case windows.FILE_TYPE_CHAR:
		return FileTypeChar, nil
	case windows.FILE_TYPE_PIPE:
		return FileTypePipe, nil
	default:
		return FileTypeUnknown, nil
	}
}

func (osPlatform) EnableVirtualTerminal(h Handle) error {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(windows.Handle(h), mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}

func (osPlatform) VirtualTerminalEnabled(h Handle) (bool, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return false, err
	}
	return mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0, nil
}

func (osPlatform) WriteConsole(h Handle, text []uint16) (int, error) {
	if len(text) == 0 {
		return 0, nil
	}
	var written uint32
	if err := windows.WriteConsole(windows.Handle(h), &text[0], uint32(len(text)), &written, nil); err != nil {
		return int(written), err
	}
	return int(written), nil
}

func (osPlatform) WriteFile(h Handle, b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	var written uint32
	if err := windows.WriteFile(windows.Handle(h), b, &written, nil); err != nil {
		return int(written), err
	}
	return int(written), nil
}

func (osPlatform) IsCygwinPipe(h Handle) bool {
	return isatty.IsCygwinTerminal(uintptr(h))
}
