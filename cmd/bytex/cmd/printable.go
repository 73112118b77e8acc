package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/bytex/foundation/core/log"
)

func newPrintableCmd(o *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "printable [file...]",
		Short: "Check whether input is printable UTF-8",
		Long: `Check whether each input consists of printable UTF-8 only.

Printable means well-formed UTF-8 without surrogates, overlong forms
or the non-characters U+FFFE and U+FFFF, and no control characters
other than \n \r \t \v \b \f and ESC.

With --limit only the first N code points are checked. The exit
status is 1 when any input is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = o.settings.Printable.Limit
			}
			if limit < 0 {
				return invalidFlag("limit", limit, "a non-negative number of code points")
			}

			inputs, err := readInputs(cmd, args)
			if err != nil {
				return err
			}

			res := &printableResult{}
			for _, in := range inputs {
				timer := o.logger.StartTimer("printable").WithField("input", in.name)
				rep := newPrintableReport(in, limit)
				timer.Stop()
				if !rep.Printable && o.logger.IsLevelEnabled(mdwlog.LevelInfo) {
					o.logger.Info("input rejected",
						mdwlog.String("input", in.name),
						mdwlog.Int("offset", rep.Offset))
				}
				res.Reports = append(res.Reports, rep)
			}

			if err := writeResult(cmd.OutOrStdout(), o.settings.Output.Format, res); err != nil {
				return err
			}
			if !res.ok() {
				return ErrNotPrintable
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "check only the first N code points (0: all)")
	return cmd
}
