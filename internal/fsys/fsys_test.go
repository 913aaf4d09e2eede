package fsys_test

import (
	"io"
	"os"
	"testing"

	"github.com/idorombaut/asm/internal/fsys"
)

func TestMemory_CreateThenOpen(t *testing.T) {
	mem := fsys.NewMemory()

	w, err := mem.Create("out.ob")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := io.WriteString(w, "hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := mem.Open("out.ob")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}

	if string(got) != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestMemory_OpenMissing(t *testing.T) {
	mem := fsys.NewMemory()

	if _, err := mem.Open("missing.as"); !os.IsNotExist(err) {
		t.Fatalf("Open(missing) err = %v, want IsNotExist", err)
	}
}

func TestMemory_Remove(t *testing.T) {
	mem := fsys.NewMemory()
	mem.Files["a.am"] = []byte("x")

	if err := mem.Remove("a.am"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if _, err := mem.Open("a.am"); !os.IsNotExist(err) {
		t.Fatalf("Open after Remove err = %v, want IsNotExist", err)
	}

	if err := mem.Remove("a.am"); err == nil {
		t.Fatal("Remove of missing file should error")
	}
}
