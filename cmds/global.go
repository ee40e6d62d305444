package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor holds process arguments defined by package-level Var, Switch and Collect.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs process arguments, exiting with status 2 on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
}
