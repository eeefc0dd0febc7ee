package console

// Diagnostic labels returned by Label
const (
	LabelDisk      = "Disk File"
	LabelPipe      = "Pipe"
	LabelCygwinPTY = "Cygwin like PTY"
	LabelLegacy    = "Legacy Console"
	LabelVT        = "VT Mode Console"
	LabelUnknown   = "Unknown"
)

// Label describes what h is connected to. It only reads console state.
func Label(p Platform, h Handle) string {
	if !h.Valid() {
		return LabelUnknown
	}
	ft, err := p.FileType(h)
	if err != nil {
		return LabelUnknown
	}
	switch ft {
	case FileTypeDisk:
		return LabelDisk
	case FileTypePipe:
		if p.IsCygwinPipe(h) {
			return LabelCygwinPTY
		}
		return LabelPipe
	case FileTypeChar:
	default:
		return LabelUnknown
	}
	if on, err := p.VirtualTerminalEnabled(h); err == nil && on {
		return LabelVT
	}
	return LabelLegacy
}
