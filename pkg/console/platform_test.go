package console

import (
	"github.com/stretchr/testify/mock"
)

// mockPlatform is a testify mock used where call expectations matter
type mockPlatform struct {
	mock.Mock
}

func (m *mockPlatform) StdHandle(s Stream) (Handle, error) {
	args := m.Called(s)
	return args.Get(0).(Handle), args.Error(1)
}

func (m *mockPlatform) FileType(h Handle) (FileType, error) {
	args := m.Called(h)
	return args.Get(0).(FileType), args.Error(1)
}

func (m *mockPlatform) EnableVirtualTerminal(h Handle) error {
	return m.Called(h).Error(0)
}

func (m *mockPlatform) VirtualTerminalEnabled(h Handle) (bool, error) {
	args := m.Called(h)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlatform) WriteConsole(h Handle, text []uint16) (int, error) {
	args := m.Called(h, text)
	return args.Int(0), args.Error(1)
}

func (m *mockPlatform) WriteFile(h Handle, b []byte) (int, error) {
	args := m.Called(h, b)
	return args.Int(0), args.Error(1)
}

func (m *mockPlatform) IsCygwinPipe(h Handle) bool {
	return m.Called(h).Bool(0)
}

// fakePlatform records writes per handle
type fakePlatform struct {
	std         map[Stream]Handle
	types       map[Handle]FileType
	vtRefused   map[Handle]bool
	vtOn        map[Handle]bool
	cygwin      map[Handle]bool
	enableCalls map[Handle]int
	console     map[Handle][]uint16
	files       map[Handle][]byte
	writeErr    error
	// shortBy makes every write report that many units fewer than given
	shortBy int
}

const (
	stdoutHandle Handle = 7
	stderrHandle Handle = 11
)

func newFakePlatform(stdout, stderr FileType) *fakePlatform {
	return &fakePlatform{
		std:         map[Stream]Handle{StreamOutput: stdoutHandle, StreamError: stderrHandle},
		types:       map[Handle]FileType{stdoutHandle: stdout, stderrHandle: stderr},
		vtRefused:   map[Handle]bool{},
		vtOn:        map[Handle]bool{},
		cygwin:      map[Handle]bool{},
		enableCalls: map[Handle]int{},
		console:     map[Handle][]uint16{},
		files:       map[Handle][]byte{},
	}
}

func (f *fakePlatform) StdHandle(s Stream) (Handle, error) {
	return f.std[s], nil
}

func (f *fakePlatform) FileType(h Handle) (FileType, error) {
	return f.types[h], nil
}

func (f *fakePlatform) EnableVirtualTerminal(h Handle) error {
	f.enableCalls[h]++
	if f.vtRefused[h] {
		return errFakeRefused
	}
	f.vtOn[h] = true
	return nil
}

func (f *fakePlatform) VirtualTerminalEnabled(h Handle) (bool, error) {
	return f.vtOn[h], nil
}

func (f *fakePlatform) WriteConsole(h Handle, text []uint16) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.console[h] = append(f.console[h], text...)
	return len(text) - f.shortBy, nil
}

func (f *fakePlatform) WriteFile(h Handle, b []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.files[h] = append(f.files[h], b...)
	return len(b) - f.shortBy, nil
}

func (f *fakePlatform) IsCygwinPipe(h Handle) bool {
	return f.cygwin[h]
}

func (f *fakePlatform) totalEnableCalls() int {
	total := 0
	for _, n := range f.enableCalls {
		total += n
	}
	return total
}
