// Command asm is the two-pass assembler's command-line entrypoint.
package main

import (
	"context"
	"os"

	"github.com/idorombaut/asm/internal/cli"
	"github.com/idorombaut/asm/internal/cli/cmd"
)

func main() {
	commander := cli.New(context.Background()).
		WithLogger(os.Stderr).
		WithCommands([]cli.Command{cmd.Assemble()}).
		WithHelp(cmd.Help([]cli.Command{cmd.Assemble()}))

	os.Exit(commander.Execute(os.Args[1:]))
}
