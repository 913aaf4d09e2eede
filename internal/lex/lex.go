// Package lex implements the assembler's lexical primitives: whitespace
// trimming, token extraction, and the predicate tests used throughout both
// passes to classify a token as a register, a symbol, a number, or a string.
//
// These model a traditional null-terminated, mutated-in-place C buffer API.
// Go strings are immutable, so every function here returns a fresh slice of
// the input instead of writing through a destination pointer -- the same
// contract, expressed the idiomatic way.
package lex

import (
	"strings"
	"unicode"

	"github.com/idorombaut/asm/internal/diag"
	"github.com/idorombaut/asm/internal/word"
)

// MaxLineLength is the maximum length of a source line.
const MaxLineLength = 80

// MaxSymbolLength is the maximum length of a label or macro name.
const MaxSymbolLength = 30

// Trim removes leading and trailing whitespace, as classified by
// unicode.IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// SkipWS returns the slice beginning at the first non-whitespace byte.
func SkipWS(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// IsEmpty reports whether s contains only whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ShouldIgnore reports whether a line should be skipped entirely: blank, or
// a comment starting with ';'.
func ShouldIgnore(s string) bool {
	s = SkipWS(s)
	return s == "" || s[0] == ';'
}

// CopyNextToken skips leading whitespace, then copies characters from src
// until a byte in seps is found or the string ends. If the terminating
// character is ':', it is included in the returned token -- this sentinel is
// what makes label recognition a purely lexical property ("FOO:" is one
// token). The remainder of the string (after the token and its terminator,
// if any) is returned as rest.
func CopyNextToken(src, seps string) (token, rest string) {
	src = SkipWS(src)

	i := strings.IndexAny(src, seps)
	if i < 0 {
		return src, ""
	}

	if src[i] == ':' {
		return src[:i+1], src[i+1:]
	}

	return src[:i], src[i+1:]
}

// ExtractRemaining skips leading whitespace in src, advances past the first
// byte that is in seps, and returns what follows with its leading whitespace
// skipped. Only that one separator byte is consumed: in "FOO:  mov" the ':' is
// consumed, but in "FOO : mov" the separator found is the space, so the ':'
// stays at the start of the result.
func ExtractRemaining(src, seps string) string {
	src = SkipWS(src)

	i := strings.IndexAny(src, seps)
	if i < 0 {
		return ""
	}

	return SkipWS(src[i+1:])
}

// IsRegister reports whether token has the exact shape "@rN" for N in 0..7.
func IsRegister(token string) bool {
	if len(token) != 3 {
		return false
	}

	return token[0] == '@' && token[1] == 'r' && token[2] >= '0' && token[2] <= '7'
}

// RegisterNumber returns the register digit of a token already known to
// satisfy IsRegister.
func RegisterNumber(token string) uint16 {
	return uint16(token[2] - '0')
}

// IsSymbolResult is returned by IsSymbol: ok reports validity, and Kind
// explains the first failure encountered.
type IsSymbolResult struct {
	OK   bool
	Kind symbolFailure
}

type symbolFailure int

const (
	symbolOK symbolFailure = iota
	symbolMissingColon
	symbolUnexpectedColon
	symbolTooLong
	symbolIsRegister
	symbolIsOpcode
	symbolIsDirective
	symbolNotAlpha
	symbolNotAlnum
)

// ErrorKind translates a symbol validation failure into the matching
// diagnostic. It panics if called on a successful result, since there is no
// failure to report.
func (k symbolFailure) ErrorKind() diag.ErrorKind {
	switch k {
	case symbolMissingColon:
		return diag.SymbolMissingColon
	case symbolUnexpectedColon:
		return diag.SymbolUnexpectedColon
	case symbolTooLong:
		return diag.SymbolTooLong
	case symbolIsRegister:
		return diag.SymbolIsRegister
	case symbolIsOpcode:
		return diag.SymbolIsOpcode
	case symbolIsDirective:
		return diag.SymbolIsDirective
	case symbolNotAlpha:
		return diag.SymbolNotAlpha
	case symbolNotAlnum:
		return diag.SymbolNotAlnum
	default:
		panic("lex: ErrorKind called on a valid symbol")
	}
}

// ErrorKind returns the diagnostic explaining why the symbol was rejected.
// It must only be called when OK is false.
func (r IsSymbolResult) ErrorKind() diag.ErrorKind {
	return r.Kind.ErrorKind()
}

// IsSymbol validates token as a label/symbol reference. colonRequired
// distinguishes a label definition ("FOO:", trailing colon already included
// in token) from a bare reference ("FOO"). Checks run in this order so the
// caller can report the first failure as a distinct diagnostic.
func IsSymbol(token string, colonRequired bool) IsSymbolResult {
	hasColon := strings.HasSuffix(token, ":")

	switch {
	case colonRequired && !hasColon:
		return IsSymbolResult{false, symbolMissingColon}
	case !colonRequired && hasColon:
		return IsSymbolResult{false, symbolUnexpectedColon}
	}

	name := token
	if hasColon {
		name = token[:len(token)-1]
	}

	if len(name) == 0 || len(name) > MaxSymbolLength {
		return IsSymbolResult{false, symbolTooLong}
	}

	if IsRegister(name) {
		return IsSymbolResult{false, symbolIsRegister}
	}

	if IsOpcode(name) {
		return IsSymbolResult{false, symbolIsOpcode}
	}

	if IsDirective(name) {
		return IsSymbolResult{false, symbolIsDirective}
	}

	if !isAlpha(rune(name[0])) {
		return IsSymbolResult{false, symbolNotAlpha}
	}

	for _, r := range name[1:] {
		if !isAlnum(r) {
			return IsSymbolResult{false, symbolNotAlnum}
		}
	}

	return IsSymbolResult{true, symbolOK}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnum(r rune) bool {
	return isAlpha(r) || (r >= '0' && r <= '9')
}

// IsNumber reports whether token is an optional sign followed by one or more
// digits.
func IsNumber(token string) bool {
	if token == "" {
		return false
	}

	i := 0
	if token[0] == '+' || token[0] == '-' {
		i++
	}

	if i >= len(token) {
		return false
	}

	for ; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}

	return true
}

// IsString reports whether token is a double-quote-delimited string with no
// interior quote: begins and ends with '"', length >= 2, no '"' inside.
func IsString(token string) bool {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return false
	}

	return !strings.Contains(token[1:len(token)-1], `"`)
}

// IsOpcode reports whether token is one of the sixteen canonical mnemonics.
func IsOpcode(token string) bool {
	_, ok := word.Mnemonics[token]
	return ok
}

// IsDirective reports whether token (without its leading '.') is one of the
// four directive keywords.
func IsDirective(token string) bool {
	_, ok := word.Directives[token]
	return ok
}

// CountCommas counts top-level commas in s. The assembler's operand grammar
// never nests, so a simple count suffices to detect OP_EXTRANEOUS_COMMA.
// ILLEGAL_COMMA and CONSECUTIVE_COMMAS depend on comma positions and are
// detected separately.
func CountCommas(s string) int {
	return strings.Count(s, ",")
}
