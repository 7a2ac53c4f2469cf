package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/cmdkit/internal/banner"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the program banner",
		Long: `Print the program banner: title and version, the copyright notice if one
was stamped in, and a blank line.

Build-time values can be overridden with CMDKIT_TITLE, CMDKIT_VERSION and
CMDKIT_COPYRIGHT (also read from a .env file in the working directory).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return banner.WriteLogo(cmd.OutOrStdout())
		},
	}

	return cmd
}
