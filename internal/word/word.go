// Package word defines the basic data types of the target machine: the
// 12-bit Word and the bit layouts that are spliced onto it, plus a handful of
// bit-packing utilities used by both passes of the assembler.
package word

import "fmt"

// Word is the base data type the machine operates on. Every value is masked
// to 12 bits; two's-complement negative values are represented by the
// unmodified low 12 bits of the Go int that produced them.
type Word uint16

// Mask is the set of bits that make up a Word; values are always truncated to
// this width.
const Mask = 0x0FFF

// New truncates v to 12 bits.
func New(v int) Word {
	return Word(v) & Mask
}

func (w Word) String() string {
	return fmt.Sprintf("%03x", uint16(w)&Mask)
}

// Int returns the word's value as a signed 12-bit integer, sign-extended to
// an int.
func (w Word) Int() int {
	v := int16(w&Mask) << 4
	return int(v >> 4)
}

// ARE is the two-bit relocation tag carried in the low bits of every emitted
// word.
type ARE uint8

// ARE values. The numeric values are the exact bit patterns stored in a word.
const (
	Absolute    ARE = 0
	External    ARE = 1
	Relocatable ARE = 2
)

//go:generate go run golang.org/x/tools/cmd/stringer -type ARE -output are_string.go

// AddressingMode identifies how an operand's value is located. The nonzero
// values are the exact bit patterns stored in the mode fields of an
// instruction's first word.
type AddressingMode int8

const (
	None           AddressingMode = -1
	Immediate      AddressingMode = 1
	Direct         AddressingMode = 3
	RegisterDirect AddressingMode = 5
)

//go:generate go run golang.org/x/tools/cmd/stringer -type AddressingMode -output addressingmode_string.go

// Opcode identifies one of the sixteen instruction operators.
type Opcode uint8

// Opcodes, numbered exactly as the machine defines them.
const (
	MOV Opcode = iota
	CMP
	ADD
	SUB
	NOT
	CLR
	LEA
	INC
	DEC
	JMP
	BNE
	RED
	PRN
	JSR
	RTS
	STOP
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Opcode -output opcode_string.go

// Mnemonics maps the canonical lowercase mnemonic to its Opcode.
var Mnemonics = map[string]Opcode{
	"mov":  MOV,
	"cmp":  CMP,
	"add":  ADD,
	"sub":  SUB,
	"not":  NOT,
	"clr":  CLR,
	"lea":  LEA,
	"inc":  INC,
	"dec":  DEC,
	"jmp":  JMP,
	"bne":  BNE,
	"red":  RED,
	"prn":  PRN,
	"jsr":  JSR,
	"rts":  RTS,
	"stop": STOP,
}

// Directive identifies one of the four assembler directives.
type Directive uint8

const (
	Data Directive = iota
	String
	Entry
	Extern
)

//go:generate go run golang.org/x/tools/cmd/stringer -type Directive -output directive_string.go

// Directives maps the directive keyword (without its leading '.') to its
// Directive value.
var Directives = map[string]Directive{
	"data":   Data,
	"string": String,
	"entry":  Entry,
	"extern": Extern,
}

// StatementKind identifies which counter (IC or DC) a label's address was
// taken from.
type StatementKind uint8

const (
	Instruction StatementKind = iota
	DirectiveKind
)

//go:generate go run golang.org/x/tools/cmd/stringer -type StatementKind -output statementkind_string.go

// InstructionWord packs the first word of an instruction: src mode, opcode,
// dst mode, and the ARE tag, per the machine's fixed layout.
//
//	[11..9] src_mode | [8..5] opcode | [4..2] dst_mode | [1..0] ARE
func InstructionWord(srcMode, dstMode AddressingMode, op Opcode, are ARE) Word {
	var src, dst uint16

	if srcMode > 0 {
		src = uint16(srcMode)
	}

	if dstMode > 0 {
		dst = uint16(dstMode)
	}

	return Word(src<<9|uint16(op)<<5|dst<<2|uint16(are)) & Mask
}

// SrcMode extracts the src_mode field from an instruction's first word.
func SrcMode(w Word) uint16 { return Bits(w, 11, 9) }

// DstMode extracts the dst_mode field from an instruction's first word.
func DstMode(w Word) uint16 { return Bits(w, 4, 2) }

// OpcodeOf extracts the opcode field from an instruction's first word.
func OpcodeOf(w Word) Opcode { return Opcode(Bits(w, 8, 5)) }

// AREOf extracts the ARE tag from the low two bits of any word.
func AREOf(w Word) ARE { return ARE(Bits(w, 1, 0)) }

// OperandWord packs a 10-bit payload and an ARE tag into an operand word.
//
//	payload(10 bits) | ARE(2 bits)
func OperandWord(payload uint16, are ARE) Word {
	return Word(payload<<2|uint16(are)&0x3) & Mask
}

// RegisterPairWord packs a register-direct/register-direct operand pair into
// a single word.
//
//	[11..7] src_reg | [6..2] dst_reg | [1..0] ARE
func RegisterPairWord(srcReg, dstReg uint16, are ARE) Word {
	return Word(srcReg<<7|dstReg<<2|uint16(are)&0x3) & Mask
}

// Append adds a word to the end of a code or data buffer and returns the new
// slice along with the index the word now occupies.
func Append(buf []Word, w Word) ([]Word, int) {
	buf = append(buf, w)
	return buf, len(buf) - 1
}

// Bits extracts the inclusive bit range [hi:lo] from w.
func Bits(w Word, hi, lo uint8) uint16 {
	width := hi - lo + 1
	mask := uint16(1)<<width - 1

	return (uint16(w) >> lo) & mask
}

// SpliceARE replaces the low two bits of w with are, leaving the rest of the
// word untouched.
func SpliceARE(w Word, are ARE) Word {
	return (w &^ 0x3) | Word(are&0x3)
}
