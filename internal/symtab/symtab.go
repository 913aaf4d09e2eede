// Package symtab implements the assembler's symbol table and external
// reference log. Both are insertion-ordered: lookups are O(1) through a
// name-to-index map, but iteration (used when writing .ent and .ext) walks
// the records in the order they were added.
package symtab

import "github.com/idorombaut/asm/internal/word"

// Symbol is a single entry in the symbol table.
type Symbol struct {
	Name       string
	Address    uint16
	Kind       word.StatementKind
	IsExternal bool
	IsEntry    bool
}

// Table is an insertion-ordered mapping from label name to Symbol.
type Table struct {
	order []string
	byName map[string]*Symbol
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{byName: make(map[string]*Symbol)}
}

// Insert adds a new symbol. It reports false if the name already exists; the
// caller is responsible for turning that into a SYMBOL_ALREADY_EXISTS
// diagnostic.
func (t *Table) Insert(sym Symbol) bool {
	if _, exists := t.byName[sym.Name]; exists {
		return false
	}

	t.order = append(t.order, sym.Name)
	s := sym
	t.byName[sym.Name] = &s

	return true
}

// Retract removes a symbol, undoing a tentative Insert when a line fails to
// parse after the label was recorded.
func (t *Table) Retract(name string) {
	if _, exists := t.byName[name]; !exists {
		return
	}

	delete(t.byName, name)

	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Lookup returns the symbol named name, if any.
func (t *Table) Lookup(name string) (Symbol, bool) {
	s, ok := t.byName[name]
	if !ok {
		return Symbol{}, false
	}

	return *s, true
}

// Set overwrites a symbol's record in place, e.g. to commit a tentative
// symbol's final kind and address, or to flip its IsEntry flag.
func (t *Table) Set(sym Symbol) {
	if s, ok := t.byName[sym.Name]; ok {
		*s = sym
	}
}

// Count returns the number of symbols in the table.
func (t *Table) Count() int { return len(t.order) }

// Relocate adds offset to the address of every non-external symbol whose
// Kind matches kind. It is used at the end of the first pass: Instruction
// symbols are offset by MEM_START, Directive symbols by IC+MEM_START.
func (t *Table) Relocate(kind word.StatementKind, offset uint16) {
	for _, name := range t.order {
		s := t.byName[name]
		if !s.IsExternal && s.Kind == kind {
			s.Address += offset
		}
	}
}

// Range calls fn for every symbol in insertion order. Iteration stops early
// if fn returns false.
func (t *Table) Range(fn func(Symbol) bool) {
	for _, name := range t.order {
		if !fn(*t.byName[name]) {
			return
		}
	}
}

// Entries returns every symbol with IsEntry set, in insertion order.
func (t *Table) Entries() []Symbol {
	var out []Symbol

	t.Range(func(s Symbol) bool {
		if s.IsEntry {
			out = append(out, s)
		}

		return true
	})

	return out
}

// ExternalRef records one reference site to a name defined in another file.
type ExternalRef struct {
	Name             string
	ReferenceAddress uint16
}

// ExternalLog is the ordered sequence of external reference sites. Multiple
// references to the same name are permitted and preserved in order.
type ExternalLog struct {
	refs []ExternalRef
}

// NewExternalLog creates an empty external reference log.
func NewExternalLog() *ExternalLog {
	return &ExternalLog{}
}

// Add appends a reference.
func (l *ExternalLog) Add(name string, referenceAddress uint16) {
	l.refs = append(l.refs, ExternalRef{Name: name, ReferenceAddress: referenceAddress})
}

// Len returns the number of recorded references.
func (l *ExternalLog) Len() int { return len(l.refs) }

// Refs returns the references in recording order. The caller must not mutate
// the returned slice.
func (l *ExternalLog) Refs() []ExternalRef { return l.refs }
