// Package fsys isolates the assembler's filesystem access behind a small
// interface, so the pipeline can be driven from in-memory fixtures in tests
// without touching disk.
package fsys

import (
	"bytes"
	"io"
	"os"
)

// FileSystem is the out-of-scope collaborator through which the assembler
// reads source files and writes its outputs.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	Create(name string) (io.WriteCloser, error)
	Remove(name string) error
}

// OS is a FileSystem backed by the real filesystem.
type OS struct{}

func (OS) Open(name string) (io.ReadCloser, error)   { return os.Open(name) }
func (OS) Create(name string) (io.WriteCloser, error) { return os.Create(name) }
func (OS) Remove(name string) error                  { return os.Remove(name) }

// Memory is an in-memory FileSystem, useful for tests and for the golden-file
// harness: Files holds every named buffer, pre-seeded inputs as well as
// whatever Create wrote.
type Memory struct {
	Files map[string][]byte
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *Memory {
	return &Memory{Files: make(map[string][]byte)}
}

func (m *Memory) Open(name string) (io.ReadCloser, error) {
	data, ok := m.Files[name]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *Memory) Create(name string) (io.WriteCloser, error) {
	return &memWriter{mem: m, name: name}, nil
}

func (m *Memory) Remove(name string) error {
	if _, ok := m.Files[name]; !ok {
		return os.ErrNotExist
	}

	delete(m.Files, name)

	return nil
}

type memWriter struct {
	mem  *Memory
	name string
	buf  []byte
}

func (w *memWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *memWriter) Close() error {
	w.mem.Files[w.name] = w.buf
	return nil
}
