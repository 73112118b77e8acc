package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/bytex/foundation/core/error"
	"github.com/msto63/bytex/foundation/core/errors"
	mdwlog "github.com/msto63/bytex/foundation/core/log"
	"github.com/msto63/bytex/pkg/core/config"
	"github.com/msto63/bytex/pkg/core/logging"
)

// ErrNotPrintable is returned by the printable command when at least one
// input was rejected. It carries no message of its own.
var ErrNotPrintable = stderrors.New("input is not printable")

// rootOptions holds the state shared by all subcommands of one invocation
type rootOptions struct {
	cfgFile string
	verbose bool
	format  string

	settings *config.Settings
	logger   *mdwlog.Logger
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "bytex",
		Short: "Byte-sequence text tool",
		Long: `bytex works on raw byte sequences: it checks whether input is
printable UTF-8, escapes and unescapes quoted literals, extracts
parts by offset, splits and replaces by pattern, and repeats input.

Input is read from the file given as argument or from stdin.
Results go to stdout, diagnostics to stderr.

Configuration is read from ./bytex.toml, ./bytex.yaml or
$HOME/.config/bytex/config.toml; BYTEX_* variables override it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: discovered, see $BYTEX_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVarP(&o.format, "format", "f", "", "output format: text, json, cbor or dump")

	rootCmd.AddCommand(
		newPrintableCmd(o),
		newEscapeCmd(o),
		newUnescapeCmd(o),
		newPartCmd(o),
		newSliceCmd(o),
		newSplitCmd(o),
		newReplaceCmd(o),
		newRepeatCmd(o),
		newVersionCmd(o),
	)
	return rootCmd
}

// setup loads the configuration and creates the logger for cmd
func (o *rootOptions) setup(cmd *cobra.Command) error {
	settings, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		if err := checkOutputFormat(o.format); err != nil {
			return err
		}
		settings.Output.Format = o.format
	}

	level := settings.Log.Level
	if o.verbose {
		if l, err := mdwlog.ParseLevel(level); err != nil || l > mdwlog.LevelDebug {
			level = mdwlog.LevelDebug.String()
		}
	}

	o.settings = settings
	o.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   cmd.Name(),
		Level:  level,
		Format: settings.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	o.logger.Debug("configuration loaded",
		mdwlog.String("source", settings.Source),
		mdwlog.String("output", settings.Output.Format))
	return nil
}

func checkOutputFormat(format string) error {
	switch format {
	case config.OutputText, config.OutputJSON, config.OutputCBOR, config.OutputDump:
		return nil
	}
	return errors.InvalidInput(errors.ModuleCLI, "format", format, "one of text, json, cbor, dump")
}

// Execute runs the command line and reports failures on stderr
func Execute() error {
	return execute(newRootCmd(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(rootCmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil || stderrors.Is(err, ErrNotPrintable) {
		return err
	}

	// Errors without a code come from argument and flag parsing
	var mErr *mdwerror.Error
	if !stderrors.As(err, &mErr) {
		err = errors.NewErrorBuilder(errors.ModuleCLI).
			Operation("usage").
			Message(err.Error()).
			Build()
	}
	fmt.Fprintf(stderr, "%s %v\n", color.FgRed.Render("bytex:"), err)
	return err
}

// ExitCode maps an error returned by Execute to a process exit status:
// 1 for rejected input and unclassified failures, 2 for invalid
// arguments and input, 3 for configuration and 4 for I/O errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if stderrors.Is(err, ErrNotPrintable) {
		return 1
	}
	return mdwerror.GetCode(err).ExitCode()
}
