// Package output writes the assembler's three output files: the object file
// (.ob, code and data words in a compact base-64 encoding), the entries file
// (.ent, exported label addresses), and the externals file (.ext, reference
// sites for labels defined elsewhere).
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/idorombaut/asm/internal/fsys"
	"github.com/idorombaut/asm/internal/symtab"
	"github.com/idorombaut/asm/internal/word"
)

// alphabet is the base-64 character set used to render a word: two
// characters per word, six bits each.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// EncodeWord renders a 12-bit word as two base-64 characters: the first
// encodes bits [11..6], the second bits [5..0].
func EncodeWord(w word.Word) string {
	v := uint16(w) & word.Mask
	hi := (v >> 6) & 0x3F
	lo := v & 0x3F

	return string([]byte{alphabet[hi], alphabet[lo]})
}

// DecodeWord parses two base-64 characters back into a 12-bit word.
func DecodeWord(s string) (word.Word, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("output: malformed word %q", s)
	}

	hi, err := digit(s[0])
	if err != nil {
		return 0, err
	}

	lo, err := digit(s[1])
	if err != nil {
		return 0, err
	}

	return word.Word(hi<<6 | lo), nil
}

func digit(b byte) (uint16, error) {
	i := strings.IndexByte(alphabet, b)
	if i < 0 {
		return 0, fmt.Errorf("output: invalid base-64 digit %q", b)
	}

	return uint16(i), nil
}

// Write emits the .ob file unconditionally, and the .ent/.ext files only
// when the corresponding flag is set -- a file with no entries or externs is
// never created.
func Write(
	basename string,
	ic, dc int,
	code, data []word.Word,
	entries []symtab.Symbol,
	externals []symtab.ExternalRef,
	hasEntries, hasExterns bool,
	fs fsys.FileSystem,
) error {
	if err := writeObject(basename+".ob", ic, dc, code, data, fs); err != nil {
		return err
	}

	if hasEntries {
		if err := writeEntries(basename+".ent", entries, fs); err != nil {
			return err
		}
	}

	if hasExterns {
		if err := writeExternals(basename+".ext", externals, fs); err != nil {
			return err
		}
	}

	return nil
}

func writeObject(path string, ic, dc int, code, data []word.Word, fs fsys.FileSystem) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d\t%d\n", ic, dc); err != nil {
		return err
	}

	for _, w := range code {
		if err := writeLine(f, EncodeWord(w)); err != nil {
			return err
		}
	}

	for _, w := range data {
		if err := writeLine(f, EncodeWord(w)); err != nil {
			return err
		}
	}

	return nil
}

func writeEntries(path string, entries []symtab.Symbol, fs fsys.FileSystem) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range entries {
		if _, err := fmt.Fprintf(f, "%s\t%d\n", s.Name, s.Address); err != nil {
			return err
		}
	}

	return nil
}

func writeExternals(path string, refs []symtab.ExternalRef, fs fsys.FileSystem) error {
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, r := range refs {
		if _, err := fmt.Fprintf(f, "%s\t%d\n", r.Name, r.ReferenceAddress); err != nil {
			return err
		}
	}

	return nil
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
