package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/stdwriter/pkg/console"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529", // Almost black
		Dark:  "#F8F9FA", // Almost white
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Medium gray
		Dark:  "#ADB5BD",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}
)

// Output mode colors
var (
	DiskColor = lipgloss.AdaptiveColor{
		Light: "#6C757D", // Gray
		Dark:  "#A0A8B0",
	}

	StreamColor = lipgloss.AdaptiveColor{
		Light: "#17A2B8", // Cyan
		Dark:  "#4DD0E1",
	}

	LegacyColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	VTColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}
)

// Styles are the styles of one renderer. Colors are only emitted when the
// renderer's color profile allows it.
type Styles struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style

	modes map[console.OutputMode]lipgloss.Style
}

// New builds Styles bound to r
func New(r *lipgloss.Renderer) *Styles {
	mode := func(c lipgloss.TerminalColor) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}
	return &Styles{
		Heading: r.NewStyle().Foreground(HeadingColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor).Faint(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		modes: map[console.OutputMode]lipgloss.Style{
			console.Disk:                   mode(DiskColor),
			console.GenericStream:          mode(StreamColor),
			console.LegacyConsole:          mode(LegacyColor),
			console.VirtualTerminalConsole: mode(VTColor).Bold(true),
		},
	}
}

// Mode returns the style for output mode m, Muted for unknown modes
func (s *Styles) Mode(m console.OutputMode) lipgloss.Style {
	if st, ok := s.modes[m]; ok {
		return st
	}
	return s.Muted
}
