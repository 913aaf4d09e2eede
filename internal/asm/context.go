package asm

import (
	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/symtab"
	"github.com/idorombaut/asm/internal/word"
)

// Context holds the full mutable state of one file's translation. It is
// created fresh for each input basename and discarded once its outputs are
// written or either pass fails.
type Context struct {
	Sink diag.ErrorSink

	Code []word.Word
	Data []word.Word

	IC int
	DC int

	Symbols   *symtab.Table
	Externals *symtab.ExternalLog

	IsEntryExists  bool
	IsExternExists bool

	LineNum int
}

// NewContext creates an empty per-file assembler context.
func NewContext(sink diag.ErrorSink) *Context {
	return &Context{
		Sink:      sink,
		Symbols:   symtab.New(),
		Externals: symtab.NewExternalLog(),
	}
}

func (c *Context) report(kind diag.ErrorKind) {
	c.Sink.Report(kind, c.LineNum)
}
