package console

import (
	"github.com/arthur-debert/stdwriter/pkg/errors"
	"github.com/arthur-debert/stdwriter/pkg/logging"
)

// detector classifies handles. enableVT false means the console flags are
// never touched and every console is treated as legacy.
type detector struct {
	platform Platform
	enableVT bool
}

// Detect classifies h, enabling virtual terminal processing on it if it is a
// console. Callers are expected to cache the result; Detect itself keeps no state.
func Detect(p Platform, h Handle) OutputMode {
	return detector{platform: p, enableVT: true}.classify(h)
}

func (d detector) classify(h Handle) OutputMode {
	logger := logging.GetLogger("console.detect")

	if !h.Valid() {
		logger.Trace().Uint64("handle", uint64(h)).Msg("No usable handle, treating as disk")
		return Disk
	}

	ft, err := d.platform.FileType(h)
	if err != nil {
		logger.Debug().Err(err).Uint64("handle", uint64(h)).Msg("File type query failed")
	}
	switch ft {
	case FileTypeDisk:
		return Disk
	case FileTypeChar:
	default:
		return GenericStream
	}

	if !d.enableVT {
		return LegacyConsole
	}
	if err := d.platform.EnableVirtualTerminal(h); err != nil {
		modeErr := errors.Wrap(err, errors.ErrConsoleMode, "failed to enable virtual terminal processing").
			WithOSCode(osCode(err)).
			WithDetail("handle", uint64(h))
		logger.Debug().
			Err(modeErr).
			Fields(modeErr.Details).
			Msg("Virtual terminal processing unavailable, falling back to legacy console")
		return LegacyConsole
	}
	return VirtualTerminalConsole
}
