// Package diag declares the assembler's diagnostics: a closed enumeration of
// error kinds, the wrapped error type that carries a line number, and the
// ErrorSink interface through which the assembler reports problems. diag
// deliberately knows nothing about files, terminals, or color -- rendering
// diagnostics to the user is the caller's concern (see internal/cli/cmd).
package diag

import "fmt"

// ErrorKind enumerates every diagnostic the assembler can emit. Values group
// by the pipeline stage that detects them.
type ErrorKind int

const (
	// Macro preprocessor.
	MCRMcroExtraneousText ErrorKind = iota
	MCRMissingName
	MCREndmcroExtraneousText
	MCRNameTooLong
	MCRNameIsRegister
	MCRNameIsOpcode
	MCRNameIsDirective

	// Lexical / symbol validation.
	SymbolTooLong
	SymbolMissingColon
	SymbolUnexpectedColon
	SymbolIsRegister
	SymbolIsOpcode
	SymbolIsDirective
	SymbolNotAlpha
	SymbolNotAlnum

	// First-pass line parsing.
	SymbolOnly
	IllegalComma
	ConsecutiveCommas
	UndefinedOpDir
	SymbolAlreadyExists

	// Operation (instruction) parsing.
	OpExtraneousComma
	OpMissingOperand
	OpExtraneousText
	OpInvalidAddrMode
	OpInvalidOperandsNum
	OpInvalidOperandsMode

	// Directive parsing.
	DirMissingParams
	DataNotNum
	DataMissingComma
	DataExtraneousText
	StringNotStr
	EntryMissingSymbol
	EntryExtraneousText

	// Second pass.
	EntrySymbolNotFound
	EntryCannotBeExtern
	SymbolNotFound

	// Resource limits.
	MemoryOverflow

	// I/O and argument errors (the out-of-scope CLI/filesystem collaborator
	// reports these through the same sink).
	NotEnoughParams
	FileOpenError
	FileWriteError
)

//go:generate go run golang.org/x/tools/cmd/stringer -type ErrorKind -output errorkind_string.go

// SyntaxError wraps a diagnostic with the source line on which it occurred.
type SyntaxError struct {
	Kind ErrorKind
	Line int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: at line %d", e.Kind, e.Line)
	}

	return e.Kind.String()
}

// Is reports whether target is a *SyntaxError with the same Kind, allowing
// tests and callers to use errors.Is against a bare sentinel built from Kind
// alone.
func (e *SyntaxError) Is(target error) bool {
	other, ok := target.(*SyntaxError)
	if !ok {
		return false
	}

	return other.Kind == e.Kind
}

// ErrorSink is the out-of-scope collaborator that consumes diagnostics as
// they're discovered. The assembler never buffers diagnostics itself beyond
// the per-pass "any error" flag; every event is reported as it's found so
// that, given a source file with many mistakes, as many as possible are
// surfaced in one invocation.
type ErrorSink interface {
	Report(kind ErrorKind, line int)
}

// SinkFunc adapts a plain function to an ErrorSink.
type SinkFunc func(kind ErrorKind, line int)

func (f SinkFunc) Report(kind ErrorKind, line int) { f(kind, line) }

// DiscardSink is an ErrorSink that drops every diagnostic; useful for tests
// that only care about the return value of a pass.
var DiscardSink ErrorSink = SinkFunc(func(ErrorKind, int) {})

// CollectingSink is an ErrorSink that records every diagnostic it receives,
// in order, for tests and for harnesses that want to inspect full output.
type CollectingSink struct {
	Errors []SyntaxError
}

func (s *CollectingSink) Report(kind ErrorKind, line int) {
	s.Errors = append(s.Errors, SyntaxError{Kind: kind, Line: line})
}
