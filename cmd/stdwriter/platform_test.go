package stdwriter

import (
	"bytes"
	"errors"
	"unicode/utf16"

	"github.com/arthur-debert/stdwriter/pkg/console"
)

const (
	fakeStdout console.Handle = 1001
	fakeStderr console.Handle = 1002
)

// capturePlatform fakes the two standard streams and defers every other
// handle to the real platform
type capturePlatform struct {
	console.Platform

	stdoutType console.FileType
	stderrType console.FileType
	vt         bool

	enableCalls int

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newCapturePlatform(ft console.FileType, vt bool) *capturePlatform {
	return &capturePlatform{
		Platform:   console.NewPlatform(),
		stdoutType: ft,
		stderrType: ft,
		vt:         vt,
	}
}

func (p *capturePlatform) buffer(h console.Handle) *bytes.Buffer {
	switch h {
	case fakeStdout:
		return &p.stdout
	case fakeStderr:
		return &p.stderr
	}
	return nil
}

func (p *capturePlatform) StdHandle(s console.Stream) (console.Handle, error) {
	if s == console.StreamError {
		return fakeStderr, nil
	}
	return fakeStdout, nil
}

func (p *capturePlatform) FileType(h console.Handle) (console.FileType, error) {
	switch h {
	case fakeStdout:
		return p.stdoutType, nil
	case fakeStderr:
		return p.stderrType, nil
	}
	return p.Platform.FileType(h)
}

func (p *capturePlatform) EnableVirtualTerminal(h console.Handle) error {
	if p.buffer(h) == nil {
		return p.Platform.EnableVirtualTerminal(h)
	}
	p.enableCalls++
	if !p.vt {
		return errors.New("legacy console")
	}
	return nil
}

func (p *capturePlatform) VirtualTerminalEnabled(h console.Handle) (bool, error) {
	if p.buffer(h) == nil {
		return p.Platform.VirtualTerminalEnabled(h)
	}
	return p.vt, nil
}

func (p *capturePlatform) WriteConsole(h console.Handle, text []uint16) (int, error) {
	buf := p.buffer(h)
	if buf == nil {
		return p.Platform.WriteConsole(h, text)
	}
	buf.WriteString(string(utf16.Decode(text)))
	return len(text), nil
}

func (p *capturePlatform) WriteFile(h console.Handle, b []byte) (int, error) {
	buf := p.buffer(h)
	if buf == nil {
		return p.Platform.WriteFile(h, b)
	}
	return buf.Write(b)
}

func (p *capturePlatform) IsCygwinPipe(h console.Handle) bool {
	if p.buffer(h) == nil {
		return p.Platform.IsCygwinPipe(h)
	}
	return false
}
