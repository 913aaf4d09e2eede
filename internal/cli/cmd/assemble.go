package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"golang.org/x/term"

	"github.com/idorombaut/asm/internal/asm"
	"github.com/idorombaut/asm/internal/cli"
	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/fsys"
	"github.com/idorombaut/asm/internal/log"
)

type assemble struct {
	flags *flag.FlagSet
	fs    fsys.FileSystem
}

var _ cli.Command = (*assemble)(nil)

// Assemble returns the "assemble" sub-command, which runs the macro
// preprocessor and both assembly passes over every basename given on the
// command line.
func Assemble() *assemble {
	return &assemble{
		flags: flag.NewFlagSet("assemble", flag.ExitOnError),
		fs:    fsys.OS{},
	}
}

func (assemble) Description() string {
	return "assemble one or more source files"
}

func (a *assemble) FlagSet() *cli.FlagSet {
	return a.flags
}

func (a *assemble) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "assemble <basename> [<basename>...]")
	return err
}

func (a *assemble) Run(_ context.Context, args []string, out io.Writer, logger *log.Logger) int {
	sink := newStdoutSink(out)

	code := asm.Assemble(args, a.fs, sink)

	if logger != nil {
		logger.Debug("assemble finished", "files", len(args), "exit", code)
	}

	return code
}

// stdoutSink renders diagnostics as human-readable lines, colored red when
// out is an attached terminal.
type stdoutSink struct {
	out   io.Writer
	color bool
}

func newStdoutSink(out io.Writer) *stdoutSink {
	color := false

	if f, ok := out.(interface{ Fd() uintptr }); ok {
		color = term.IsTerminal(int(f.Fd()))
	}

	return &stdoutSink{out: out, color: color}
}

func (s *stdoutSink) Report(kind diag.ErrorKind, line int) {
	msg := (&diag.SyntaxError{Kind: kind, Line: line}).Error()

	if s.color {
		fmt.Fprintf(s.out, "\x1b[31mERROR\x1b[0m %s\n", msg)
	} else {
		fmt.Fprintf(s.out, "ERROR %s\n", msg)
	}
}
