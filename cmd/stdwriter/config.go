package stdwriter

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/stdwriter/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var template bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if template {
				_, err := a.stdout().Write([]byte(config.GenerateConfigContent()))
				return err
			}
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = a.stdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)

	return cmd
}
