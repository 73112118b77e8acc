package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bytex/foundation/utils/bytex"
)

func newReplaceCmd(o *rootOptions) *cobra.Command {
	var (
		literals []string
		expr     string
		with     string
		first    bool
		insert   []int
	)

	cmd := &cobra.Command{
		Use:   "replace [file]",
		Short: "Replace occurrences of a pattern",
		Long: `Replace every occurrence of a literal or regular expression.

--literal may be repeated and, like --with, resolves escapes such as
\n or \x00. --insert re-inserts the matched text into the replacement
at the given byte offsets, e.g. --with '[]' --insert 1 wraps each
match in brackets.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMatcher(literals, expr)
			if err != nil {
				return err
			}
			repl, err := bytex.Unescape([]byte(with))
			if err != nil {
				return err
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			timer := o.logger.StartTimer("replace").
				WithField("input", in.name).
				WithField("global", !first)
			out := bytex.Replace(in.data, m, repl, bytex.ReplaceOptions{
				Global:         !first,
				InsertReplaced: insert,
			})
			timer.Stop()

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newBytesResult("replace", out))
		},
	}

	cmd.Flags().StringArrayVar(&literals, "literal", nil, "literal pattern, may be repeated")
	cmd.Flags().StringVar(&expr, "regex", "", "regular expression pattern")
	cmd.Flags().StringVar(&with, "with", "", "replacement bytes")
	cmd.Flags().BoolVar(&first, "first", false, "replace only the first occurrence")
	cmd.Flags().IntSliceVar(&insert, "insert", nil, "offsets in the replacement where the match is inserted")
	cmd.MarkFlagsMutuallyExclusive("literal", "regex")
	cmd.MarkFlagsOneRequired("literal", "regex")
	return cmd
}
