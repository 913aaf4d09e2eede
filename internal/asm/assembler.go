package asm

import (
	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/fsys"
	"github.com/idorombaut/asm/internal/macro"
	"github.com/idorombaut/asm/internal/output"
)

// Assemble processes every basename independently, in order, resetting all
// per-file state between iterations. It returns the process exit code: 1 if
// no basenames were given, 0 otherwise regardless of individual file
// failures (each file's errors are reported through sink and that file's
// outputs are simply skipped).
func Assemble(basenames []string, fs fsys.FileSystem, sink diag.ErrorSink) int {
	if len(basenames) < 1 {
		sink.Report(diag.NotEnoughParams, 0)
		return 1
	}

	for _, base := range basenames {
		assembleOne(base, fs, sink)
	}

	return 0
}

func assembleOne(base string, fs fsys.FileSystem, sink diag.ErrorSink) {
	asPath := base + ".as"
	amPath := base + ".am"

	in, err := fs.Open(asPath)
	if err != nil {
		sink.Report(diag.FileOpenError, 0)
		return
	}

	amOut, err := fs.Create(amPath)
	if err != nil {
		in.Close()
		sink.Report(diag.FileOpenError, 0)
		return
	}

	macroOK := macro.New(sink).Expand(in, amOut)
	in.Close()
	amOut.Close()

	if !macroOK {
		fs.Remove(amPath)
		return
	}

	ctx := NewContext(sink)

	amIn1, err := fs.Open(amPath)
	if err != nil {
		sink.Report(diag.FileOpenError, 0)
		return
	}

	pass1OK := ctx.FirstPass(amIn1)
	amIn1.Close()

	amIn2, err := fs.Open(amPath)
	if err != nil {
		sink.Report(diag.FileOpenError, 0)
		return
	}

	pass2OK := ctx.SecondPass(amIn2)
	amIn2.Close()

	if !pass1OK || !pass2OK {
		return
	}

	err = output.Write(
		base,
		ctx.IC, ctx.DC,
		ctx.Code, ctx.Data,
		ctx.Symbols.Entries(), ctx.Externals.Refs(),
		ctx.IsEntryExists, ctx.IsExternExists,
		fs,
	)
	if err != nil {
		sink.Report(diag.FileWriteError, 0)
	}
}
