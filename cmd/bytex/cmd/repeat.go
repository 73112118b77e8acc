package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bytex/foundation/utils/bytex"
)

func newRepeatCmd(o *rootOptions) *cobra.Command {
	var (
		count int
		chop  bool
	)

	cmd := &cobra.Command{
		Use:   "repeat [file]",
		Short: "Repeat input a number of times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			data := in.data
			if chop {
				data = chomp(data)
			}

			timer := o.logger.StartTimer("repeat").WithField("count", count)
			out, err := bytex.Repeat(data, count)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newBytesResult("repeat", out))
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of repetitions")
	cmd.Flags().BoolVar(&chop, "chomp", false, "drop a trailing newline before repeating")
	cmd.MarkFlagRequired("count")
	return cmd
}
