package console

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/stdwriter/pkg/errors"
)

// OutputMode is the capability class of an output destination
type OutputMode int

const (
	// Disk is a regular file, or a stream with no usable handle
	Disk OutputMode = iota
	// GenericStream is a pipe or any other non-console stream
	GenericStream
	// LegacyConsole is a console without virtual terminal support
	LegacyConsole
	// VirtualTerminalConsole is a console that renders ANSI sequences
	VirtualTerminalConsole
)

var modeNames = map[OutputMode]string{
	Disk:                   "disk",
	GenericStream:          "stream",
	LegacyConsole:          "legacy",
	VirtualTerminalConsole: "vt",
}

// String returns the short name used in configuration and reports
func (m OutputMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("OutputMode(%d)", int(m))
}

// IsConsole reports whether writes in this mode go through the console API
func (m OutputMode) IsConsole() bool {
	return m == LegacyConsole || m == VirtualTerminalConsole
}

// ParseOutputMode parses the short mode names accepted in configuration
func ParseOutputMode(s string) (OutputMode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range modeNames {
		if name == want {
			return mode, nil
		}
	}
	return Disk, errors.Newf(errors.ErrInvalidInput, "unknown output mode %q (want disk, stream, legacy or vt)", s)
}
