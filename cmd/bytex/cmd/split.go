package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/bytex/foundation/core/log"
	"github.com/msto63/bytex/foundation/utils/bytex"
)

func newSplitCmd(o *rootOptions) *cobra.Command {
	var (
		sep   []string
		expr  string
		parts int
		trim  bool
	)

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split input on a separator or regular expression",
		Long: `Split input into parts and print one part per line.

--sep takes literal separators and may be repeated; escapes such as
\t or \x00 are resolved. --regex takes an RE2 expression. With
--parts the last part holds the unsplit rest; --trim drops empty
parts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildMatcher(sep, expr)
			if err != nil {
				return err
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			timer := o.logger.StartTimer("split").WithField("input", in.name)
			out := bytex.Split(in.data, m, bytex.SplitOptions{Parts: parts, Trim: trim})
			timer.Stop()
			o.logger.Debug("split done", mdwlog.Int("parts", len(out)))

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newPartsResult("split", out))
		},
	}

	cmd.Flags().StringArrayVar(&sep, "sep", nil, "literal separator, may be repeated")
	cmd.Flags().StringVar(&expr, "regex", "", "regular expression separator")
	cmd.Flags().IntVar(&parts, "parts", 0, "maximum number of parts (0: unlimited)")
	cmd.Flags().BoolVar(&trim, "trim", false, "drop empty parts")
	cmd.MarkFlagsMutuallyExclusive("sep", "regex")
	cmd.MarkFlagsOneRequired("sep", "regex")
	return cmd
}

// buildMatcher matches the unescaped literals, or expr when there are
// no literals.
func buildMatcher(literals []string, expr string) (bytex.Matcher, error) {
	if len(literals) == 0 {
		return bytex.Compile(expr)
	}
	patterns := make([][]byte, 0, len(literals))
	for _, lit := range literals {
		p, err := bytex.Unescape([]byte(lit))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return bytex.Literal(patterns...)
}
