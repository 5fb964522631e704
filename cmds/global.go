package cmds

import (
	"fmt"
	"os"
)

var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

// Execute runs the default executor over the process arguments, printing
// usage and exiting non-zero on failure.
func Execute(args []string) {
	if err := defaultExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		defaultExecutor.PrintUsage()
		os.Exit(1)
	}
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}
