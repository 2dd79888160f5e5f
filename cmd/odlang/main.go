// Command odlang is the interactive System F REPL. It takes no flags and
// no subcommands: load the optional config, start the prompt loop, exit.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/TurtlePU/odlang/internal/config"
	"github.com/TurtlePU/odlang/internal/repl"
)

var red = color.New(color.FgRed).SprintFunc()

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("error"), err)
		os.Exit(1)
	}

	if err := repl.New(cfg).Run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("fatal"), err)
		os.Exit(1)
	}
}
