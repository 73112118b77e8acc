package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bytex/foundation/utils/bytex"
)

func newPartCmd(o *rootOptions) *cobra.Command {
	var start, length int

	cmd := &cobra.Command{
		Use:   "part [file]",
		Short: "Extract bytes by offset and length",
		Long: `Extract length bytes starting at byte offset start.

A negative length selects the bytes before start. The range must lie
within the input; otherwise the command fails with exit status 2.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			timer := o.logger.StartTimer("part").
				WithField("start", start).
				WithField("length", length)
			out, err := bytex.Part(in.data, start, length)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.Stop()

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newBytesResult("part", out))
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", 0, "byte offset of the first byte")
	cmd.Flags().IntVarP(&length, "length", "n", 0, "number of bytes, negative to count backwards")
	cmd.MarkFlagRequired("length")
	return cmd
}

func newSliceCmd(o *rootOptions) *cobra.Command {
	var start, end int

	cmd := &cobra.Command{
		Use:   "slice [file]",
		Short: "Extract a byte range with clamped bounds",
		Long: `Extract the bytes from start up to, not including, end.

Negative offsets count from the end of the input. Bounds outside the
input are clamped, so slice never fails on range. Without --end the
range runs to the end of the input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			timer := o.logger.StartTimer("slice").WithField("start", start)
			var out []byte
			if cmd.Flags().Changed("end") {
				out = bytex.Slice(in.data, start, end)
			} else {
				out = bytex.SliceFrom(in.data, start)
			}
			timer.Stop()

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newBytesResult("slice", out))
		},
	}

	cmd.Flags().IntVarP(&start, "start", "s", 0, "start offset, negative counts from the end")
	cmd.Flags().IntVarP(&end, "end", "e", 0, "end offset (exclusive), negative counts from the end")
	return cmd
}
