// Package macro implements the assembler's macro preprocessor: it expands
// "mcro name ... endmcro" definitions inline at every invocation site,
// producing .am source from .as source.
package macro

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/lex"
)

// Expander runs the macro preprocessing pass over a single source file.
type Expander struct {
	sink diag.ErrorSink

	bodies      map[string][]string
	order       []string
	insideMacro bool
	current     string
}

// New creates an Expander that reports diagnostics to sink.
func New(sink diag.ErrorSink) *Expander {
	return &Expander{
		sink:   sink,
		bodies: make(map[string][]string),
	}
}

// Expand reads .as source from in and writes the expanded .am source to out.
// It reports whether expansion succeeded; when it returns false, the caller
// is responsible for deleting the partially-written output.
func (e *Expander) Expand(in io.Reader, out io.Writer) bool {
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	anyError := false
	line := 0

	for scanner.Scan() {
		line++
		raw := scanner.Text()
		trimmed := lex.Trim(raw)

		switch {
		case strings.HasPrefix(trimmed, "mcro"):
			if !e.beginMacro(trimmed, line) {
				anyError = true
			}

		case e.insideMacro && trimmed == "endmcro":
			if !e.endMacro(trimmed, line) {
				anyError = true
			}

		case e.insideMacro && strings.HasPrefix(trimmed, "endmcro"):
			e.sink.Report(diag.MCREndmcroExtraneousText, line)
			anyError = true
			e.endMacroForce()

		case e.insideMacro:
			e.bodies[e.current] = append(e.bodies[e.current], raw)

		case e.knownMacro(trimmed):
			for _, body := range e.bodies[trimmed] {
				fmt.Fprintln(writer, body)
			}

		default:
			fmt.Fprintln(writer, raw)
		}
	}

	return !anyError
}

func (e *Expander) knownMacro(name string) bool {
	_, ok := e.bodies[name]
	return ok
}

func (e *Expander) beginMacro(trimmed string, line int) bool {
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "mcro"))

	fields := strings.Fields(rest)

	if len(fields) == 0 {
		e.sink.Report(diag.MCRMissingName, line)
		return false
	}

	if len(fields) > 1 {
		e.sink.Report(diag.MCRMcroExtraneousText, line)
		return false
	}

	name := fields[0]
	if kind, ok := validateMacroName(name); !ok {
		e.sink.Report(kind, line)
		return false
	}

	e.bodies[name] = nil
	e.order = append(e.order, name)
	e.current = name
	e.insideMacro = true

	return true
}

func (e *Expander) endMacro(trimmed string, line int) bool {
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "endmcro"))
	e.insideMacro = false
	e.current = ""

	if rest != "" {
		e.sink.Report(diag.MCREndmcroExtraneousText, line)
		return false
	}

	return true
}

func (e *Expander) endMacroForce() {
	e.insideMacro = false
	e.current = ""
}

// validateMacroName checks a macro name: at most lex.MaxSymbolLength
// characters, and not a register, opcode, or directive keyword.
func validateMacroName(name string) (diag.ErrorKind, bool) {
	switch {
	case len(name) > lex.MaxSymbolLength:
		return diag.MCRNameTooLong, false
	case lex.IsRegister(name):
		return diag.MCRNameIsRegister, false
	case lex.IsOpcode(name):
		return diag.MCRNameIsOpcode, false
	case lex.IsDirective(name):
		return diag.MCRNameIsDirective, false
	default:
		return 0, true
	}
}
