package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bytex/pkg/core/version"
)

func newVersionCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, &versionResult{version.Get()})
		},
	}
}
