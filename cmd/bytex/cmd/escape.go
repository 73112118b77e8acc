package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/bytex/foundation/core/errors"
	"github.com/msto63/bytex/foundation/utils/bytex"
)

func newEscapeCmd(o *rootOptions) *cobra.Command {
	var (
		quote string
		wrap  bool
	)

	cmd := &cobra.Command{
		Use:   "escape [file]",
		Short: "Escape input into a printable literal",
		Long: `Escape input so that the result is printable and can be
unescaped back into the original bytes.

Backslash, the quote character and the common control characters
use their short forms; other non-printable bytes become \xHH.
Valid printable UTF-8 is kept as it is.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			esc := o.settings.Escape
			if cmd.Flags().Changed("quote") {
				esc.Quote = quote
			}
			if cmd.Flags().Changed("wrap") {
				esc.Wrap = wrap
			}
			if len(esc.Quote) > 1 {
				return invalidFlag("quote", esc.Quote, "a single byte or empty")
			}

			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			timer := o.logger.StartTimer("escape").
				WithField("input", in.name).
				WithField("size", len(in.data))
			out := bytex.Escape(in.data, esc.QuoteByte())
			if esc.Wrap && esc.Quote != "" {
				out = append(append([]byte(esc.Quote), out...), esc.Quote...)
			}
			timer.Stop()

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newBytesResult("escape", out))
		},
	}

	cmd.Flags().StringVar(&quote, "quote", `"`, "quote character to escape (empty: none)")
	cmd.Flags().BoolVar(&wrap, "wrap", false, "surround the result with the quote character")
	return cmd
}

func newUnescapeCmd(o *rootOptions) *cobra.Command {
	var unwrap bool

	cmd := &cobra.Command{
		Use:   "unescape [file]",
		Short: "Turn an escaped literal back into bytes",
		Long: `Resolve escape sequences such as \n, \x41, \u00e9 and \u{1F600}.

Unknown escapes stand for the character itself. A single trailing
newline of the input is ignored. With --unwrap a pair of surrounding
quotes is removed first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			data := chomp(in.data)
			if unwrap {
				data = unquote(data)
			}

			timer := o.logger.StartTimer("unescape").WithField("input", in.name)
			out, err := bytex.Unescape(data)
			if err != nil {
				timer.StopWithError(err)
				return errors.OperationFailed(errors.ModuleBytex, "unescape", err).
					WithDetail("input", in.name)
			}
			timer.Stop()

			return writeResult(cmd.OutOrStdout(), o.settings.Output.Format, newBytesResult("unescape", out))
		},
	}

	cmd.Flags().BoolVar(&unwrap, "unwrap", false, "remove surrounding quotes before unescaping")
	return cmd
}

// unquote strips one matching pair of single or double quotes
func unquote(b []byte) []byte {
	if len(b) >= 2 && b[0] == b[len(b)-1] && (b[0] == '"' || b[0] == '\'') {
		return b[1 : len(b)-1]
	}
	return b
}

func invalidFlag(name string, value interface{}, expected string) error {
	return errors.NewErrorBuilder(errors.ModuleCLI).
		Operation("flags").
		Messagef("invalid --%s %v: expected %s", name, value, expected).
		Detail("flag", name).
		Build()
}
