// Command dungaf answers single queries against an abstract
// argumentation framework read from a file in the arg()/att() format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/dungaf/accept"
	"github.com/katalvlaran/dungaf/core"
	"github.com/katalvlaran/dungaf/enumerate"
	"github.com/katalvlaran/dungaf/meter"
	"github.com/katalvlaran/dungaf/parser"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		command string
		file    string
		arg     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:           "dungaf",
		Short:         "Query complete and stable semantics of an abstract argumentation framework",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), command, file, arg, verbose)
		},
	}

	cmd.Flags().StringVarP(&command, "program", "p", "", "query command: SE-CO, SE-ST, DC-CO, DS-CO, DC-ST, DS-ST")
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the arg()/att() input file")
	cmd.Flags().StringVarP(&arg, "argument", "a", "", "argument name, required by decision commands")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the explored-state count after decision commands")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// decisionCommands is the set of commands requiring -a.
var decisionCommands = map[string]bool{
	"DC-CO": true, "DS-CO": true, "DC-ST": true, "DS-ST": true,
}

func run(out io.Writer, command, file, arg string, verbose bool) error {
	if command == "" {
		return fmt.Errorf("bad-usage: -p is required")
	}
	if file == "" {
		return fmt.Errorf("bad-usage: -f is required")
	}
	if decisionCommands[command] && arg == "" {
		return fmt.Errorf("bad-usage: command %s requires -a", command)
	}

	f, err := parser.ParseFile(file)
	if err != nil {
		return err
	}

	var counter meter.Counter
	result, err := dispatch(f, command, arg, &counter)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result)
	if verbose && decisionCommands[command] {
		fmt.Fprintf(out, "States explored: %d\n", counter.Count())
	}
	return nil
}

// dispatch runs command against f and renders its result using spec.md
// §6's output grammar.
func dispatch(f *core.Framework, command, arg string, counter *meter.Counter) (string, error) {
	switch command {
	case "SE-CO":
		e := enumerate.FindOneComplete(f, counter)
		return formatExtension(f, e, true), nil
	case "SE-ST":
		e, ok := enumerate.FindOneStable(f, counter)
		return formatExtension(f, e, ok), nil
	case "DC-CO":
		ok, err := accept.NaiveCredulousComplete(f, arg, counter)
		return formatYesNo(ok), err
	case "DS-CO":
		ok, err := accept.NaiveSkepticalComplete(f, arg, counter)
		return formatYesNo(ok), err
	case "DC-ST":
		ok, err := accept.NaiveCredulousStable(f, arg, counter)
		return formatYesNo(ok), err
	case "DS-ST":
		ok, err := accept.NaiveSkepticalStable(f, arg, counter)
		return formatYesNo(ok), err
	default:
		return "", fmt.Errorf("unknown-command: %q", command)
	}
}

// formatExtension renders a found extension as [a,b,c] in insertion
// order, or NO when found is false. An empty-but-found extension prints
// as [], per spec.md §6.
func formatExtension(f *core.Framework, e core.Set, found bool) string {
	if !found {
		return "NO"
	}
	names := e.Names(f)
	out := "["
	for i, n := range names {
		if i > 0 {
			out += ","
		}
		out += n
	}
	return out + "]"
}

func formatYesNo(ok bool) string {
	if ok {
		return "YES"
	}
	return "NO"
}
