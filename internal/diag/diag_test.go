package diag_test

import (
	"errors"
	"testing"

	"github.com/idorombaut/asm/internal/diag"
)

func TestSyntaxError_Error(t *testing.T) {
	err := &diag.SyntaxError{Kind: diag.ConsecutiveCommas, Line: 6}

	want := "CONSECUTIVE_COMMAS: at line 6"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSyntaxError_Is(t *testing.T) {
	a := &diag.SyntaxError{Kind: diag.SymbolAlreadyExists, Line: 1}
	b := &diag.SyntaxError{Kind: diag.SymbolAlreadyExists, Line: 99}
	c := &diag.SyntaxError{Kind: diag.IllegalComma, Line: 1}

	if !errors.Is(a, b) {
		t.Error("expected errors with the same Kind to match")
	}

	if errors.Is(a, c) {
		t.Error("expected errors with different Kind to not match")
	}
}

func TestCollectingSink(t *testing.T) {
	sink := &diag.CollectingSink{}

	sink.Report(diag.DataNotNum, 3)
	sink.Report(diag.OpMissingOperand, 4)

	if len(sink.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(sink.Errors))
	}

	if sink.Errors[0].Kind != diag.DataNotNum || sink.Errors[0].Line != 3 {
		t.Errorf("unexpected first error: %+v", sink.Errors[0])
	}
}

func TestErrorKind_String(t *testing.T) {
	if got := diag.SymbolOnly.String(); got != "SYMBOL_ONLY" {
		t.Errorf("String() = %q, want SYMBOL_ONLY", got)
	}
}
