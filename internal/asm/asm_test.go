package asm_test

import (
	"strings"
	"testing"

	"github.com/idorombaut/asm/internal/asm"
	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/word"
)

func assemble(t *testing.T, source string) (*asm.Context, *diag.CollectingSink) {
	t.Helper()

	sink := &diag.CollectingSink{}
	ctx := asm.NewContext(sink)

	if !ctx.FirstPass(strings.NewReader(source)) {
		t.Logf("first pass errors: %+v", sink.Errors)
	}

	ctx.SecondPass(strings.NewReader(source))

	return ctx, sink
}

func TestString_Directive(t *testing.T) {
	ctx, sink := assemble(t, `HELLO: .string "hi"`+"\n")

	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", sink.Errors)
	}

	want := []word.Word{word.New('h'), word.New('i'), word.New(0)}
	if len(ctx.Data) != len(want) {
		t.Fatalf("data = %v, want %v", ctx.Data, want)
	}

	for i := range want {
		if ctx.Data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, ctx.Data[i], want[i])
		}
	}

	sym, ok := ctx.Symbols.Lookup("HELLO")
	if !ok {
		t.Fatal("HELLO not found")
	}

	if sym.Kind != word.DirectiveKind {
		t.Errorf("HELLO.Kind = %v, want DirectiveKind", sym.Kind)
	}

	if sym.Address != asm.MemStart+uint16(ctx.IC) {
		t.Errorf("HELLO.Address = %d, want %d", sym.Address, asm.MemStart+uint16(ctx.IC))
	}
}

func TestExternJump(t *testing.T) {
	source := ".extern X\njmp X\n"
	ctx, sink := assemble(t, source)

	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", sink.Errors)
	}

	if len(ctx.Code) != 2 {
		t.Fatalf("code = %v, want 2 words", ctx.Code)
	}

	if word.DstMode(ctx.Code[0]) != uint16(word.Direct) {
		t.Errorf("dst_mode = %d, want Direct", word.DstMode(ctx.Code[0]))
	}

	if word.AREOf(ctx.Code[1]) != word.External {
		t.Errorf("operand word ARE = %v, want External", word.AREOf(ctx.Code[1]))
	}

	refs := ctx.Externals.Refs()
	if len(refs) != 1 || refs[0].Name != "X" || refs[0].ReferenceAddress != asm.MemStart+1 {
		t.Fatalf("externals = %+v", refs)
	}
}

func TestTwoRegisterOperands(t *testing.T) {
	ctx, sink := assemble(t, "mov @r3, @r5\n")

	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", sink.Errors)
	}

	if len(ctx.Code) != 2 {
		t.Fatalf("code = %v, want 2 words", ctx.Code)
	}

	if ctx.IC != 2 {
		t.Errorf("IC = %d, want 2", ctx.IC)
	}

	want := word.RegisterPairWord(3, 5, word.Absolute)
	if ctx.Code[1] != want {
		t.Errorf("packed register word = %v, want %v", ctx.Code[1], want)
	}
}

func TestImmediateAndRegister(t *testing.T) {
	ctx, sink := assemble(t, "add #-1, @r2\n")

	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", sink.Errors)
	}

	if len(ctx.Code) != 3 {
		t.Fatalf("code = %v, want 3 words", ctx.Code)
	}

	wantImm := word.OperandWord(uint16(word.New(-1))&0x3FF, word.Absolute)
	if ctx.Code[1] != wantImm {
		t.Errorf("immediate operand word = %v, want %v", ctx.Code[1], wantImm)
	}

	wantReg := word.RegisterPairWord(0, 2, word.Absolute)
	if ctx.Code[2] != wantReg {
		t.Errorf("register operand word = %v, want %v", ctx.Code[2], wantReg)
	}
}

func TestDuplicateLabel(t *testing.T) {
	source := "FOO: .data 1\nFOO: .data 2\n"

	sink := &diag.CollectingSink{}
	ctx := asm.NewContext(sink)
	ok := ctx.FirstPass(strings.NewReader(source))

	if ok {
		t.Fatal("expected first pass to fail")
	}

	found := false
	for _, e := range sink.Errors {
		if e.Kind == diag.SymbolAlreadyExists {
			found = true
		}
	}

	if !found {
		t.Fatalf("expected SymbolAlreadyExists, got %+v", sink.Errors)
	}
}

func TestConsecutiveCommas(t *testing.T) {
	sink := &diag.CollectingSink{}
	ctx := asm.NewContext(sink)
	ok := ctx.FirstPass(strings.NewReader(".data 1, , 2\n"))

	if ok {
		t.Fatal("expected first pass to fail")
	}

	if len(sink.Errors) != 1 || sink.Errors[0].Kind != diag.ConsecutiveCommas {
		t.Fatalf("errors = %+v, want one ConsecutiveCommas", sink.Errors)
	}
}

func TestBitLayout_Invariant(t *testing.T) {
	ctx, sink := assemble(t, "mov @r3, @r5\nadd #-1, @r2\n")

	if len(sink.Errors) != 0 {
		t.Fatalf("unexpected errors: %+v", sink.Errors)
	}

	for _, w := range []word.Word{ctx.Code[0], ctx.Code[2]} {
		if word.AREOf(w) != word.Absolute {
			t.Errorf("ARE(%v) = %v, want Absolute", w, word.AREOf(w))
		}
	}
}
