package stdwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/stdwriter/pkg/console"
	"github.com/arthur-debert/stdwriter/pkg/errors"
	"github.com/arthur-debert/stdwriter/pkg/style"
)

type streamReport struct {
	Stream       string `json:"stream" yaml:"stream"`
	Mode         string `json:"mode" yaml:"mode"`
	Label        string `json:"label" yaml:"label"`
	ColorProfile string `json:"color_profile" yaml:"color_profile"`

	mode    console.OutputMode
	profile termenv.Profile
}

type probeReport struct {
	Streams []streamReport `json:"streams" yaml:"streams"`
}

func newProbeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "probe",
		Short:   MsgProbeShort,
		Long:    MsgProbeLong,
		Example: MsgProbeExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.probe()
			out := a.stdout()

			var err error
			switch format {
			case "text":
				err = renderProbeText(out, report)
			case "json":
				err = renderProbeJSON(out, report)
			case "yaml":
				err = renderProbeYAML(out, report)
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrFormat, format).
					WithDetail("format", format)
			}
			if err != nil {
				return fmt.Errorf(MsgErrRenderProbe, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", MsgFlagFormat)

	return cmd
}

func (a *app) probe() probeReport {
	streams := []struct {
		stream console.Stream
		dest   console.Destination
		file   *os.File
	}{
		{console.StreamOutput, console.Stdout, os.Stdout},
		{console.StreamError, console.Stderr, os.Stderr},
	}

	var report probeReport
	for _, s := range streams {
		mode := a.state.Mode(s.stream)
		profile := colorProfile(mode, s.file)
		report.Streams = append(report.Streams, streamReport{
			Stream:       s.stream.String(),
			Mode:         mode.String(),
			Label:        a.state.Label(s.dest),
			ColorProfile: profileName(profile),
			mode:         mode,
			profile:      profile,
		})
	}
	return report
}

// colorProfile is what a stream in mode can display. Only virtual terminal
// consoles get colors; legacy consoles have them stripped anyway.
func colorProfile(mode console.OutputMode, f *os.File) termenv.Profile {
	if mode != console.VirtualTerminalConsole {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

func renderProbeText(w io.Writer, report probeReport) error {
	profile := termenv.Ascii
	if len(report.Streams) > 0 {
		profile = report.Streams[0].profile
	}
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)
	styles := style.New(renderer)

	for _, s := range report.Streams {
		_, err := fmt.Fprintf(w, "%s  %s  %s %s\n",
			styles.Heading.Render(fmt.Sprintf("%-6s", s.Stream)),
			styles.Mode(s.mode).Render(fmt.Sprintf("%-6s", s.Mode)),
			s.Label,
			styles.Muted.Render("(colors: "+s.ColorProfile+")"),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func renderProbeJSON(w io.Writer, report probeReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderProbeYAML(w io.Writer, report probeReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
