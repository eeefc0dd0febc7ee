package stdwriter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/stdwriter/pkg/console"
	"github.com/arthur-debert/stdwriter/pkg/errors"
	"github.com/arthur-debert/stdwriter/pkg/logging"
)

var escapeReplacer = strings.NewReplacer(
	`\\`, `\`,
	`\e`, "\x1b",
	`\033`, "\x1b",
	`\x1b`, "\x1b",
	`\n`, "\n",
	`\t`, "\t",
)

// expandEscapes turns the backslash escapes accepted by write into characters
func expandEscapes(s string) string {
	return escapeReplacer.Replace(s)
}

func newWriteCmd(a *app) *cobra.Command {
	var (
		toStderr   bool
		file       string
		appendFile bool
		escapes    bool
		noNewline  bool
	)

	cmd := &cobra.Command{
		Use:     "write [TEXT...]",
		Short:   MsgWriteShort,
		Long:    MsgWriteLong,
		Example: MsgWriteExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = strings.Join(args, " ")
				if !noNewline {
					text += "\n"
				}
			} else {
				data, err := io.ReadAll(a.env.Stdin)
				if err != nil {
					return fmt.Errorf(MsgErrReadInput, err)
				}
				text = string(data)
			}
			if escapes {
				text = expandEscapes(text)
			}

			dest, name := console.Stdout, "stdout"
			if toStderr {
				dest, name = console.Stderr, "stderr"
			}
			if file != "" {
				flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
				if appendFile {
					flag = os.O_CREATE | os.O_WRONLY | os.O_APPEND
				}
				f, err := os.OpenFile(file, flag, 0644)
				if err != nil {
					return errors.Wrapf(err, errors.ErrFileAccess, MsgErrOpenFile, file).
						WithDetail("path", file)
				}
				defer f.Close()
				dest, name = console.FileDestination(f), file
			}

			n, err := a.state.Write(dest, text)
			if err != nil {
				return fmt.Errorf(MsgErrWrite, name, err)
			}

			logger := logging.WithFields(map[string]interface{}{
				"component":   "cmd.write",
				"destination": name,
				"written":     n,
			})
			logger.Info().Msg("Write completed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&toStderr, "stderr", false, MsgFlagStderr)
	cmd.Flags().StringVar(&file, "file", "", MsgFlagFile)
	cmd.Flags().BoolVar(&appendFile, "append", false, MsgFlagAppend)
	cmd.Flags().BoolVarP(&escapes, "escapes", "e", false, MsgFlagEscapes)
	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.MarkFlagsMutuallyExclusive("stderr", "file")

	return cmd
}
