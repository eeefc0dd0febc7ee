package stdwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/stdwriter/internal/version"
	"github.com/arthur-debert/stdwriter/pkg/config"
	"github.com/arthur-debert/stdwriter/pkg/console"
	"github.com/arthur-debert/stdwriter/pkg/errors"
	"github.com/arthur-debert/stdwriter/pkg/logging"
	"github.com/arthur-debert/stdwriter/pkg/style"
)

// Env is what the commands read from and write through
type Env struct {
	Platform console.Platform
	Fs       afero.Fs
	Stdin    io.Reader
}

// DefaultEnv returns the real OS environment
func DefaultEnv() Env {
	return Env{
		Platform: console.NewPlatform(),
		Fs:       afero.NewOsFs(),
		Stdin:    os.Stdin,
	}
}

// app carries flag values and the per-run console state between commands
type app struct {
	env Env

	verbosity  int
	configPath string
	forceMode  string
	noVT       bool
	noColor    bool

	cfg   *config.Config
	state *console.State
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(DefaultEnv())
}

// NewRootCmdWithEnv creates the root command over env
func NewRootCmdWithEnv(env Env) *cobra.Command {
	return (&app{env: env}).rootCmd()
}

// Execute runs stdwriter with args and returns the process exit code. A
// failure is reported on stderr through the console state the command ran
// with, so the streams are classified once per process.
func Execute(env Env, args []string) int {
	a := &app{env: env}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		a.reportError(err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "stdwriter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&a.configPath, "config", "", MsgFlagConfig)
	flags.StringVar(&a.forceMode, "force-mode", "", MsgFlagForceMode)
	flags.BoolVar(&a.noVT, "no-vt", false, MsgFlagNoVT)
	flags.BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newProbeCmd(a))
	rootCmd.AddCommand(newWriteCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads configuration, classifies the standard streams and points the
// logger at the classified stderr
func (a *app) setup(cmd *cobra.Command) error {
	// Console-only logger until we know how stderr can be written to
	logging.SetupLogger(a.verbosity, logging.WithFile(false))

	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("force-mode") {
		overrides["output.force_mode"] = a.forceMode
	}
	if flags.Changed("no-vt") {
		overrides["output.enable_virtual_terminal"] = !a.noVT
	}
	if flags.Changed("no-color") {
		overrides["log.no_color"] = a.noColor
	}

	cfg, err := config.Load(config.LoadOptions{
		Fs:        a.env.Fs,
		Path:      a.configPath,
		Overrides: overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}
	a.cfg = cfg
	a.state = console.New(a.env.Platform, cfg.ConsoleOptions()...)
	console.SetDefault(a.state)

	logging.SetupLogger(a.verbosity,
		logging.WithConsole(a.state.Writer(console.Stderr)),
		logging.WithNoColor(cfg.Log.NoColor),
		logging.WithFile(cfg.Log.File),
	)
	log.Debug().
		Str("command", cmd.Name()).
		Str("stdout", a.state.Mode(console.StreamOutput).String()).
		Str("stderr", a.state.Mode(console.StreamError).String()).
		Msg("Command started")
	return nil
}

// flagOptions are the console options given on the command line alone, for
// when configuration could not be loaded
func (a *app) flagOptions() []console.Option {
	opts := []console.Option{console.WithVirtualTerminal(!a.noVT)}
	if mode, err := console.ParseOutputMode(a.forceMode); a.forceMode != "" && err == nil {
		opts = append(opts,
			console.WithForcedMode(console.StreamOutput, mode),
			console.WithForcedMode(console.StreamError, mode),
		)
	}
	return opts
}

// reportError writes err to the classified stderr in the error style. Without
// a state from setup, one is built from the flags parsed so far.
func (a *app) reportError(err error) {
	if a.state == nil {
		a.state = console.New(a.env.Platform, a.flagOptions()...)
		console.SetDefault(a.state)
	}

	logger := logging.GetLogger("cmd")
	logger.Debug().
		Str("code", string(errors.GetErrorCode(err))).
		Int64("osCode", errors.GetOSCode(err)).
		Fields(errors.GetErrorDetails(err)).
		Msg("Command failed")

	w := a.state.Writer(console.Stderr)
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(colorProfile(a.state.Mode(console.StreamError), os.Stderr))
	_, _ = fmt.Fprintln(w, style.New(renderer).Error.Render(fmt.Sprintf(MsgErrorFormat, err)))
}

// stdout returns the classified standard output as an io.Writer
func (a *app) stdout() io.Writer {
	return a.state.Writer(console.Stdout)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
