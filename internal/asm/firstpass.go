package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/lex"
	"github.com/idorombaut/asm/internal/symtab"
	"github.com/idorombaut/asm/internal/word"
)

// FirstPass reads expanded source, builds the symbol table, and sizes every
// instruction and directive. It returns false if any line failed.
func (c *Context) FirstPass(in io.Reader) bool {
	scanner := bufio.NewScanner(in)
	ok := true

	for scanner.Scan() {
		c.LineNum++

		if !c.parseLine1(scanner.Text()) {
			ok = false
		}
	}

	c.Symbols.Relocate(word.Instruction, MemStart)
	c.Symbols.Relocate(word.DirectiveKind, uint16(c.IC)+MemStart)

	if MemStart+c.IC+c.DC > MemSize {
		c.Sink.Report(diag.MemoryOverflow, 0)
		ok = false
	}

	return ok
}

func (c *Context) parseLine1(line string) bool {
	if lex.ShouldIgnore(line) {
		return true
	}

	rest := line
	hasLabel := false
	label := ""

	firstTok, firstRem := lex.CopyNextToken(line, ":\t ")

	if strings.HasSuffix(firstTok, ":") {
		res := lex.IsSymbol(firstTok, true)
		if !res.OK {
			c.report(res.ErrorKind())
			return false
		}

		label = firstTok[:len(firstTok)-1]

		if !c.Symbols.Insert(symtab.Symbol{Name: label, Kind: word.Instruction}) {
			c.report(diag.SymbolAlreadyExists)
			return false
		}

		hasLabel = true
		rest = firstRem

		if lex.IsEmpty(rest) {
			c.Symbols.Retract(label)
			c.report(diag.SymbolOnly)
			return false
		}
	}

	nameTok, nameRest := lex.CopyNextToken(rest, ",\t ")

	if kind, ok := preflightCommas(nameRest); !ok {
		if hasLabel {
			c.Symbols.Retract(label)
		}

		c.report(kind)
		return false
	}

	switch {
	case lex.IsOpcode(nameTok):
		if hasLabel {
			c.Symbols.Set(symtab.Symbol{Name: label, Kind: word.Instruction, Address: uint16(c.IC)})
		}

		if !c.processOperation(nameTok, nameRest) {
			if hasLabel {
				c.Symbols.Retract(label)
			}

			return false
		}

		return true

	case isDirectiveToken(nameTok):
		return c.processDirective(nameTok, nameRest, hasLabel, label)

	default:
		if hasLabel {
			c.Symbols.Retract(label)
		}

		c.report(diag.UndefinedOpDir)
		return false
	}
}

func isDirectiveToken(tok string) bool {
	return strings.HasPrefix(tok, ".") && lex.IsDirective(tok[1:])
}

// preflightCommas checks for a leading comma or two commas separated only by
// whitespace, before the operand string is otherwise interpreted.
func preflightCommas(s string) (diag.ErrorKind, bool) {
	trimmed := lex.SkipWS(s)

	if strings.HasPrefix(trimmed, ",") {
		return diag.IllegalComma, false
	}

	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != ',' {
			continue
		}

		j := i + 1
		for j < len(trimmed) && (trimmed[j] == ' ' || trimmed[j] == '\t') {
			j++
		}

		if j < len(trimmed) && trimmed[j] == ',' {
			return diag.ConsecutiveCommas, false
		}
	}

	return 0, true
}

func (c *Context) processOperation(opcodeTok, rest string) bool {
	op := word.Mnemonics[opcodeTok]

	commas := lex.CountCommas(rest)
	if commas > 1 {
		c.report(diag.OpExtraneousComma)
		return false
	}

	var operandStrs []string

	switch commas {
	case 1:
		parts := strings.SplitN(rest, ",", 2)
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		if left == "" || right == "" {
			c.report(diag.OpMissingOperand)
			return false
		}

		rightTok, rightRem := lex.CopyNextToken(right, "\t ")
		if strings.TrimSpace(rightRem) != "" {
			c.report(diag.OpExtraneousText)
			return false
		}

		operandStrs = []string{left, rightTok}

	default:
		trimmed := strings.TrimSpace(rest)

		if trimmed == "" {
			if !zeroOperandOps[op] {
				c.report(diag.OpMissingOperand)
				return false
			}
		} else {
			tok, remainder := lex.CopyNextToken(trimmed, "\t ")
			if strings.TrimSpace(remainder) != "" {
				c.report(diag.OpExtraneousText)
				return false
			}

			operandStrs = []string{tok}
		}
	}

	if len(operandStrs) != operandCount(op) {
		c.report(diag.OpInvalidOperandsNum)
		return false
	}

	modes := make([]word.AddressingMode, len(operandStrs))

	for i, tok := range operandStrs {
		m, ok := detectMode(tok)
		if !ok {
			c.report(diag.OpInvalidAddrMode)
			return false
		}

		modes[i] = m
	}

	if !validModes(op, modes) {
		c.report(diag.OpInvalidOperandsMode)
		return false
	}

	srcMode, dstMode := word.None, word.None

	switch len(modes) {
	case 1:
		dstMode = modes[0]
	case 2:
		srcMode, dstMode = modes[0], modes[1]
	}

	c.Code, _ = word.Append(c.Code, word.InstructionWord(srcMode, dstMode, op, word.Absolute))
	c.IC++

	extra := additionalWords(modes)
	for i := 0; i < extra; i++ {
		c.Code, _ = word.Append(c.Code, word.Word(0))
	}

	c.IC += extra

	return true
}

func (c *Context) processDirective(dirTok, rest string, hasLabel bool, label string) bool {
	dirName := strings.TrimPrefix(dirTok, ".")
	dir := word.Directives[dirName]

	if dir == word.Entry || dir == word.Extern {
		if hasLabel {
			c.Symbols.Retract(label)
		}

		return c.processEntryExtern(dir, rest)
	}

	if lex.IsEmpty(rest) {
		if hasLabel {
			c.Symbols.Retract(label)
		}

		c.report(diag.DirMissingParams)
		return false
	}

	if hasLabel {
		c.Symbols.Set(symtab.Symbol{Name: label, Kind: word.DirectiveKind, Address: uint16(c.DC)})
	}

	var ok bool

	switch dir {
	case word.Data:
		ok = c.processData(rest)
	case word.String:
		ok = c.processString(rest)
	}

	if !ok && hasLabel {
		c.Symbols.Retract(label)
	}

	return ok
}

func (c *Context) processEntryExtern(dir word.Directive, rest string) bool {
	token, remainder := lex.CopyNextToken(strings.TrimSpace(rest), "\t ")

	if token == "" {
		c.report(diag.EntryMissingSymbol)
		return false
	}

	res := lex.IsSymbol(token, false)
	if !res.OK {
		c.report(res.ErrorKind())
		return false
	}

	if strings.TrimSpace(remainder) != "" {
		c.report(diag.EntryExtraneousText)
		return false
	}

	if dir == word.Extern {
		if !c.Symbols.Insert(symtab.Symbol{Name: token, Kind: word.DirectiveKind, IsExternal: true}) {
			c.report(diag.SymbolAlreadyExists)
			return false
		}

		c.IsExternExists = true
	}

	return true
}

func (c *Context) processData(rest string) bool {
	remaining := rest

	for {
		remaining = lex.SkipWS(remaining)
		if remaining == "" {
			return true
		}

		i := 0
		for i < len(remaining) && remaining[i] != ',' && remaining[i] != ' ' && remaining[i] != '\t' {
			i++
		}

		token := remaining[:i]

		if !lex.IsNumber(token) {
			c.report(diag.DataNotNum)
			return false
		}

		v, _ := strconv.Atoi(token)
		c.Data, _ = word.Append(c.Data, word.New(v))
		c.DC++

		after := lex.SkipWS(remaining[i:])

		if after == "" {
			return true
		}

		if after[0] != ',' {
			c.report(diag.DataMissingComma)
			return false
		}

		after = lex.SkipWS(after[1:])

		if after == "" {
			c.report(diag.DataExtraneousText)
			return false
		}

		remaining = after
	}
}

func (c *Context) processString(rest string) bool {
	trimmed := lex.Trim(rest)

	if !lex.IsString(trimmed) {
		c.report(diag.StringNotStr)
		return false
	}

	inner := trimmed[1 : len(trimmed)-1]

	for _, r := range inner {
		c.Data, _ = word.Append(c.Data, word.New(int(r)))
		c.DC++
	}

	c.Data, _ = word.Append(c.Data, word.New(0))
	c.DC++

	return true
}
