package console

import (
	"unicode/utf16"

	"github.com/arthur-debert/stdwriter/pkg/errors"
)

// WriteFailed is the count returned alongside an error when the OS write fails
const WriteFailed = -1

// writeStrategy delivers text to a handle of one OutputMode. It returns the
// units written and the units it tried to write.
type writeStrategy interface {
	write(p Platform, h Handle, text string) (n, total int, err error)
}

// fileStrategy writes UTF-8 bytes; the count is in bytes
type fileStrategy struct{}

func (fileStrategy) write(p Platform, h Handle, text string) (int, int, error) {
	n, err := p.WriteFile(h, []byte(text))
	if err != nil {
		return n, len(text), errors.Wrap(err, errors.ErrFileWrite, "failed to write to file").
			WithOSCode(osCode(err)).
			WithDetails(map[string]interface{}{
				"handle": uint64(h),
				"bytes":  len(text),
			})
	}
	return n, len(text), nil
}

// consoleStrategy writes UTF-16 unchanged; the count is in code units
type consoleStrategy struct{}

func (consoleStrategy) write(p Platform, h Handle, text string) (int, int, error) {
	units := utf16.Encode([]rune(text))
	n, err := p.WriteConsole(h, units)
	if err != nil {
		return n, len(units), errors.Wrap(err, errors.ErrConsoleWrite, "failed to write to console").
			WithOSCode(osCode(err)).
			WithDetails(map[string]interface{}{
				"handle": uint64(h),
				"units":  len(units),
			})
	}
	return n, len(units), nil
}

// legacyStrategy removes SGR sequences before handing off to the console
type legacyStrategy struct {
	console consoleStrategy
}

func (s legacyStrategy) write(p Platform, h Handle, text string) (int, int, error) {
	return s.console.write(p, h, StripEscapes(text))
}

// strategyFor maps every OutputMode to its write strategy. stripLegacy false
// sends legacy consoles the raw text.
func strategyFor(mode OutputMode, stripLegacy bool) writeStrategy {
	if !mode.IsConsole() {
		return fileStrategy{}
	}
	if mode == LegacyConsole && stripLegacy {
		return legacyStrategy{}
	}
	return consoleStrategy{}
}
