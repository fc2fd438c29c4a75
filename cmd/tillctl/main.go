// Command tillctl reconciles a drawer count from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

var tablePath = flag.String("table", "", "Path to a currency table YAML file (defaults to the built-in tables)")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&reconcileCmd{}, "")
	commander.Register(&currenciesCmd{}, "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
