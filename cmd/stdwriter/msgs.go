package stdwriter

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Detect terminal capabilities and write to them safely"
	MsgProbeShort      = "Show how stdout and stderr are classified"
	MsgWriteShort      = "Write text through the adaptive writer"
	MsgStripShort      = "Remove ANSI color sequences from input"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "stdwriter version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrorFormat    = "Error: %v"
	MsgErrNoCommand   = "no command specified"
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrReadInput   = "failed to read input: %w"
	MsgErrOpenFile    = "failed to open %s"
	MsgErrNoInput     = "no such file %s"
	MsgErrWrite       = "failed to write to %s: %w"
	MsgErrFormat      = "unknown format %q (want text, json or yaml)"
	MsgErrRenderProbe = "failed to render probe report: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/stdwriter/config.toml)"
	MsgFlagForceMode = "Skip detection and use this output mode (disk, stream, legacy, vt)"
	MsgFlagNoVT      = "Never switch consoles into virtual terminal mode"
	MsgFlagNoColor   = "Disable colors in log output"
	MsgFlagFormat    = "Output format: text, json or yaml"
	MsgFlagStderr    = "Write to standard error instead of standard output"
	MsgFlagFile      = "Write to this file instead of a standard stream"
	MsgFlagAppend    = "Append to --file instead of truncating it"
	MsgFlagEscapes   = "Interpret backslash escapes such as \\e and \\n"
	MsgFlagNoNewline = "Do not print the trailing newline"
	MsgFlagTemplate  = "Print a commented config file template instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/probe-long.txt
	msgProbeLongRaw string
	MsgProbeLong    = strings.TrimSpace(msgProbeLongRaw)

	//go:embed msgs/probe-example.txt
	msgProbeExampleRaw string
	MsgProbeExample    = strings.TrimRight(msgProbeExampleRaw, "\n")

	//go:embed msgs/write-long.txt
	msgWriteLongRaw string
	MsgWriteLong    = strings.TrimSpace(msgWriteLongRaw)

	//go:embed msgs/write-example.txt
	msgWriteExampleRaw string
	MsgWriteExample    = strings.TrimRight(msgWriteExampleRaw, "\n")

	//go:embed msgs/strip-long.txt
	msgStripLongRaw string
	MsgStripLong    = strings.TrimSpace(msgStripLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
