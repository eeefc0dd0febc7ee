package stdwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/stdwriter/pkg/console"
	"github.com/arthur-debert/stdwriter/pkg/errors"
)

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [FILE]",
		Short:   MsgStripShort,
		Long:    MsgStripLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				path := args[0]
				data, err = afero.ReadFile(a.env.Fs, path)
				switch {
				case os.IsNotExist(err):
					return errors.Newf(errors.ErrNotFound, MsgErrNoInput, path).WithDetail("path", path)
				case err != nil:
					return errors.Wrapf(err, errors.ErrFileAccess, MsgErrOpenFile, path).WithDetail("path", path)
				}
			} else if data, err = io.ReadAll(a.env.Stdin); err != nil {
				return fmt.Errorf(MsgErrReadInput, err)
			}

			if _, err := a.state.Write(console.Stdout, console.StripEscapes(string(data))); err != nil {
				return fmt.Errorf(MsgErrWrite, "stdout", err)
			}
			return nil
		},
	}
}
