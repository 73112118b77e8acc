package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/bytex/foundation/core/errors"
)

const stdinName = "<stdin>"

// input is one byte sequence read from a file or stdin
type input struct {
	name string
	data []byte
}

// readInput reads the file named by the first argument, or stdin when no
// argument or "-" is given.
func readInput(cmd *cobra.Command, args []string) (input, error) {
	if len(args) == 0 || args[0] == "-" {
		return readFrom(stdinName, cmd.InOrStdin())
	}
	return readFile(args[0])
}

// readInputs reads every argument in order; stdin stands in for an
// empty argument list and may be named at most once.
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]input, 0, len(args))
	stdinSeen := false
	for _, arg := range args {
		if arg == "-" {
			if stdinSeen {
				return nil, errors.InvalidInput(errors.ModuleCLI, "args", arg, "stdin (-) at most once")
			}
			stdinSeen = true
		}
		in, err := readInput(cmd, []string{arg})
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readFile(path string) (input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return input{}, readError(path, err)
	}
	return input{name: path, data: data}, nil
}

func readFrom(name string, r io.Reader) (input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return input{}, readError(name, err)
	}
	return input{name: name, data: data}, nil
}

func readError(name string, err error) error {
	return errors.NewErrorBuilder(errors.ModuleCLI).
		Operation("read_input").
		Messagef("cannot read %s", name).
		Detail("input", name).
		Cause(err).
		Build()
}

// chomp removes a single trailing line break
func chomp(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	return bytes.TrimSuffix(b, []byte("\r"))
}
