// Command simcli runs one dynamic execution simulation against a demo
// STNU fixture and prints the resulting assignment. It is deliberately
// minimal: no batch runs, no CSV reporting, no statistics aggregation —
// spec.md §1 places that whole layer out of scope. This is the runnable
// entry point a complete repository needs, not a reimplementation of the
// excluded tooling.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	c := cli.NewCLI("simcli", "0.1.0")
	c.Args = os.Args[1:]
	c.Commands = map[string]cli.CommandFactory{
		"run": func() (cli.Command, error) {
			return &RunCommand{}, nil
		},
	}

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitStatus
}
