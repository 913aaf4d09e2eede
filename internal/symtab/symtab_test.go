package symtab_test

import (
	"testing"

	"github.com/idorombaut/asm/internal/symtab"
	"github.com/idorombaut/asm/internal/word"
)

func TestTable_InsertLookupRetract(t *testing.T) {
	tbl := symtab.New()

	if !tbl.Insert(symtab.Symbol{Name: "LOOP", Kind: word.Instruction}) {
		t.Fatal("first insert should succeed")
	}

	if tbl.Insert(symtab.Symbol{Name: "LOOP", Kind: word.Instruction}) {
		t.Fatal("duplicate insert should fail")
	}

	if _, ok := tbl.Lookup("LOOP"); !ok {
		t.Fatal("expected LOOP to be found")
	}

	tbl.Retract("LOOP")

	if _, ok := tbl.Lookup("LOOP"); ok {
		t.Fatal("expected LOOP to be gone after retract")
	}

	if tbl.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", tbl.Count())
	}
}

func TestTable_RelocateSeparatesKinds(t *testing.T) {
	tbl := symtab.New()
	tbl.Insert(symtab.Symbol{Name: "CODE", Kind: word.Instruction, Address: 3})
	tbl.Insert(symtab.Symbol{Name: "DATA", Kind: word.DirectiveKind, Address: 2})
	tbl.Insert(symtab.Symbol{Name: "EXT", Kind: word.DirectiveKind, IsExternal: true, Address: 0})

	const ic = 10
	const memStart = 100

	tbl.Relocate(word.Instruction, memStart)
	tbl.Relocate(word.DirectiveKind, ic+memStart)

	code, _ := tbl.Lookup("CODE")
	if code.Address != memStart+3 {
		t.Errorf("CODE address = %d, want %d", code.Address, memStart+3)
	}

	data, _ := tbl.Lookup("DATA")
	if data.Address != ic+memStart+2 {
		t.Errorf("DATA address = %d, want %d", data.Address, ic+memStart+2)
	}

	ext, _ := tbl.Lookup("EXT")
	if ext.Address != 0 {
		t.Errorf("external symbol address should stay 0, got %d", ext.Address)
	}
}

func TestTable_InsertionOrderPreserved(t *testing.T) {
	tbl := symtab.New()
	tbl.Insert(symtab.Symbol{Name: "C", IsEntry: true})
	tbl.Insert(symtab.Symbol{Name: "A", IsEntry: true})
	tbl.Insert(symtab.Symbol{Name: "B"})

	var names []string
	tbl.Range(func(s symtab.Symbol) bool {
		names = append(names, s.Name)
		return true
	})

	want := []string{"C", "A", "B"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("order[%d] = %s, want %s", i, names[i], n)
		}
	}

	entries := tbl.Entries()
	if len(entries) != 2 || entries[0].Name != "C" || entries[1].Name != "A" {
		t.Fatalf("Entries() = %+v", entries)
	}
}

func TestExternalLog(t *testing.T) {
	log := symtab.NewExternalLog()
	log.Add("X", 105)
	log.Add("X", 110)
	log.Add("Y", 108)

	refs := log.Refs()
	if len(refs) != 3 {
		t.Fatalf("Len() = %d, want 3", len(refs))
	}

	if refs[0].Name != "X" || refs[0].ReferenceAddress != 105 {
		t.Errorf("refs[0] = %+v", refs[0])
	}

	if refs[2].Name != "Y" || refs[2].ReferenceAddress != 108 {
		t.Errorf("refs[2] = %+v", refs[2])
	}
}
