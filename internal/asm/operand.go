package asm

import (
	"strings"

	"github.com/idorombaut/asm/internal/lex"
	"github.com/idorombaut/asm/internal/word"
)

var twoOperandOps = map[word.Opcode]bool{
	word.MOV: true, word.CMP: true, word.ADD: true, word.SUB: true, word.LEA: true,
}

var oneOperandOps = map[word.Opcode]bool{
	word.NOT: true, word.CLR: true, word.INC: true, word.DEC: true,
	word.JMP: true, word.BNE: true, word.RED: true, word.PRN: true, word.JSR: true,
}

var zeroOperandOps = map[word.Opcode]bool{
	word.RTS: true, word.STOP: true,
}

// noModeRestriction opcodes accept operands of any detected mode once the
// operand count matches; cmp and prn impose no further constraint.
var noModeRestriction = map[word.Opcode]bool{
	word.CMP: true, word.PRN: true,
}

func operandCount(op word.Opcode) int {
	switch {
	case twoOperandOps[op]:
		return 2
	case oneOperandOps[op]:
		return 1
	default:
		return 0
	}
}

// detectMode classifies a single operand token: a leading '#' marks an
// immediate value, "@rN" a register, anything else a bare symbol reference.
func detectMode(token string) (word.AddressingMode, bool) {
	switch {
	case strings.HasPrefix(token, "#"):
		if lex.IsNumber(token[1:]) {
			return word.Immediate, true
		}

		return word.None, false

	case lex.IsRegister(token):
		return word.RegisterDirect, true

	default:
		if lex.IsSymbol(token, false).OK {
			return word.Direct, true
		}

		return word.None, false
	}
}

func validModes(op word.Opcode, modes []word.AddressingMode) bool {
	if noModeRestriction[op] {
		return true
	}

	switch op {
	case word.MOV, word.ADD, word.SUB:
		return isOneOf(modes[0], word.Immediate, word.Direct, word.RegisterDirect) &&
			isOneOf(modes[1], word.Direct, word.RegisterDirect)

	case word.LEA:
		return modes[0] == word.Direct && isOneOf(modes[1], word.Direct, word.RegisterDirect)

	case word.NOT, word.CLR, word.INC, word.DEC, word.JMP, word.BNE, word.RED, word.JSR:
		return isOneOf(modes[0], word.Direct, word.RegisterDirect)

	case word.RTS, word.STOP:
		return true

	default:
		return false
	}
}

func isOneOf(m word.AddressingMode, opts ...word.AddressingMode) bool {
	for _, o := range opts {
		if m == o {
			return true
		}
	}

	return false
}

// additionalWords reports how many words beyond an instruction's first word
// its operand list occupies: a register-direct pair packs into one word.
func additionalWords(modes []word.AddressingMode) int {
	switch len(modes) {
	case 1:
		return 1
	case 2:
		if modes[0] == word.RegisterDirect && modes[1] == word.RegisterDirect {
			return 1
		}

		return 2
	default:
		return 0
	}
}

func decodeMode(raw uint16) word.AddressingMode {
	switch word.AddressingMode(raw) {
	case word.Immediate:
		return word.Immediate
	case word.Direct:
		return word.Direct
	case word.RegisterDirect:
		return word.RegisterDirect
	default:
		return word.None
	}
}
