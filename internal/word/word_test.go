package word_test

import (
	"testing"

	"github.com/idorombaut/asm/internal/word"
)

func TestInstructionWord_BitLayout(t *testing.T) {
	w := word.InstructionWord(word.Immediate, word.RegisterDirect, word.ADD, word.Absolute)

	if got := word.AREOf(w); got != word.Absolute {
		t.Errorf("ARE = %s, want %s", got, word.Absolute)
	}

	if got := word.DstMode(w); got != uint16(word.RegisterDirect) {
		t.Errorf("dst mode = %d, want %d", got, word.RegisterDirect)
	}

	if got := word.OpcodeOf(w); got != word.ADD {
		t.Errorf("opcode = %s, want %s", got, word.ADD)
	}

	if got := word.SrcMode(w); got != uint16(word.Immediate) {
		t.Errorf("src mode = %d, want %d", got, word.Immediate)
	}
}

func TestInstructionWord_ZeroOperand(t *testing.T) {
	w := word.InstructionWord(word.None, word.None, word.RTS, word.Absolute)

	if got := word.SrcMode(w); got != 0 {
		t.Errorf("src mode = %d, want 0", got)
	}

	if got := word.DstMode(w); got != 0 {
		t.Errorf("dst mode = %d, want 0", got)
	}
}

func TestRegisterPairWord(t *testing.T) {
	// mov @r3, @r5 -> (3<<7)|(5<<2)|0
	w := word.RegisterPairWord(3, 5, word.Absolute)
	want := word.Word(3<<7 | 5<<2)

	if w != want {
		t.Errorf("got %03x, want %03x", uint16(w), uint16(want))
	}
}

func TestOperandWord_NegativeImmediate(t *testing.T) {
	// add #-1, @r2 -> operand word for -1 is ((-1)<<2)|0, low 12 bits preserved.
	w := word.OperandWord(uint16(word.New(-1)), word.Absolute)
	if uint16(w)&0xFFF != uint16(word.New(-1))<<2&0xFFF {
		t.Errorf("got %03x", uint16(w))
	}
}

func TestWord_Int_SignExtends(t *testing.T) {
	w := word.New(-1)
	if got := w.Int(); got != -1 {
		t.Errorf("Int() = %d, want -1", got)
	}

	w = word.New(5)
	if got := w.Int(); got != 5 {
		t.Errorf("Int() = %d, want 5", got)
	}
}

func TestBits(t *testing.T) {
	w := word.Word(0b1010_1100_1101)
	if got := word.Bits(w, 11, 9); got != 0b101 {
		t.Errorf("Bits(11,9) = %b, want 101", got)
	}

	if got := word.Bits(w, 1, 0); got != 0b01 {
		t.Errorf("Bits(1,0) = %b, want 01", got)
	}
}

func TestSpliceARE(t *testing.T) {
	w := word.Word(0b1111_1111_1111)
	w = word.SpliceARE(w, word.Relocatable)

	if word.AREOf(w) != word.Relocatable {
		t.Errorf("ARE = %s, want %s", word.AREOf(w), word.Relocatable)
	}

	if w&^0x3 != 0b1111_1111_1100 {
		t.Errorf("high bits clobbered: %03x", uint16(w))
	}
}
