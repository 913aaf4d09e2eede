// Package asm implements the two-pass assembler: it consumes expanded (.am)
// source, builds a symbol table and sized instruction/data buffers in the
// first pass, then resolves operands and external references in the second.
package asm

// MemStart is the canonical load address of the first code word.
const MemStart = 100

// MemSize is the total number of addressable words, code and data combined.
const MemSize = 1024
