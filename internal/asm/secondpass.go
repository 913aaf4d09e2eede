package asm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/lex"
	"github.com/idorombaut/asm/internal/word"
)

// SecondPass re-reads the expanded source, fills in operand words for every
// instruction already sized by FirstPass, records external references, and
// marks .entry labels. It returns false if any line failed.
func (c *Context) SecondPass(in io.Reader) bool {
	scanner := bufio.NewScanner(in)
	ok := true
	c.IC = 0
	c.LineNum = 0

	for scanner.Scan() {
		c.LineNum++

		if !c.parseLine2(scanner.Text()) {
			ok = false
		}
	}

	return ok
}

func (c *Context) parseLine2(line string) bool {
	if lex.ShouldIgnore(line) {
		return true
	}

	rest := line

	firstTok, firstRem := lex.CopyNextToken(line, ":\t ")
	if strings.HasSuffix(firstTok, ":") {
		rest = firstRem
	}

	nameTok, nameRest := lex.CopyNextToken(rest, ",\t ")

	switch {
	case lex.IsOpcode(nameTok):
		return c.emitOperands(nameRest)

	case isDirectiveToken(nameTok):
		dirName := strings.TrimPrefix(nameTok, ".")
		if word.Directives[dirName] == word.Entry {
			return c.actionEntry(nameRest)
		}

		return true

	default:
		return true
	}
}

func (c *Context) emitOperands(rest string) bool {
	instrWord := c.Code[c.IC]
	c.IC++

	srcMode := decodeMode(word.SrcMode(instrWord))
	dstMode := decodeMode(word.DstMode(instrWord))

	var modes []word.AddressingMode
	if srcMode != word.None {
		modes = append(modes, srcMode)
	}
	if dstMode != word.None {
		modes = append(modes, dstMode)
	}

	operandStrs := splitOperandTokens(rest, len(modes))

	if len(modes) == 2 && modes[0] == word.RegisterDirect && modes[1] == word.RegisterDirect {
		srcReg := lex.RegisterNumber(operandStrs[0])
		dstReg := lex.RegisterNumber(operandStrs[1])
		c.Code[c.IC] = word.RegisterPairWord(srcReg, dstReg, word.Absolute)
		c.IC++

		return true
	}

	ok := true

	for i, tok := range operandStrs {
		isDest := i == len(operandStrs)-1

		if !c.emitOperandWord(tok, modes[i], isDest) {
			ok = false
		}

		c.IC++
	}

	return ok
}

func splitOperandTokens(rest string, count int) []string {
	switch count {
	case 1:
		tok, _ := lex.CopyNextToken(strings.TrimSpace(rest), "\t ")
		return []string{tok}

	case 2:
		parts := strings.SplitN(rest, ",", 2)
		left := strings.TrimSpace(parts[0])
		right := ""

		if len(parts) > 1 {
			rightTok, _ := lex.CopyNextToken(strings.TrimSpace(parts[1]), "\t ")
			right = rightTok
		}

		return []string{left, right}

	default:
		return nil
	}
}

func (c *Context) emitOperandWord(tok string, mode word.AddressingMode, isDest bool) bool {
	switch mode {
	case word.Immediate:
		v, _ := strconv.Atoi(strings.TrimPrefix(tok, "#"))
		payload := uint16(v) & 0x3FF
		c.Code[c.IC] = word.OperandWord(payload, word.Absolute)

		return true

	case word.RegisterDirect:
		reg := lex.RegisterNumber(tok)

		if isDest {
			c.Code[c.IC] = word.RegisterPairWord(0, reg, word.Absolute)
		} else {
			c.Code[c.IC] = word.RegisterPairWord(reg, 0, word.Absolute)
		}

		return true

	case word.Direct:
		sym, found := c.Symbols.Lookup(tok)
		if !found {
			c.report(diag.SymbolNotFound)
			return false
		}

		if sym.IsExternal {
			c.Externals.Add(tok, uint16(c.IC)+MemStart)
			c.Code[c.IC] = word.SpliceARE(word.OperandWord(0, word.Absolute), word.External)

			return true
		}

		c.Code[c.IC] = word.SpliceARE(word.OperandWord(sym.Address&0x3FF, word.Absolute), word.Relocatable)

		return true

	default:
		return true
	}
}

func (c *Context) actionEntry(rest string) bool {
	tok, _ := lex.CopyNextToken(strings.TrimSpace(rest), "\t ")

	sym, found := c.Symbols.Lookup(tok)
	if !found {
		c.report(diag.EntrySymbolNotFound)
		return false
	}

	if sym.IsExternal {
		c.report(diag.EntryCannotBeExtern)
		return false
	}

	sym.IsEntry = true
	c.Symbols.Set(sym)
	c.IsEntryExists = true

	return true
}
