// Package cpu implements the duck machine processor: a register
// file of sixteen 32-bit registers (r0 wired to zero, r15 the
// program counter), an arithmetic-logic unit producing condition
// flags, and the fetch-decode-execute cycle with predicated
// execution.
//
// The CPU does not own the main memory; it is handed a connection
// to a memory.Connection at construction. Each decoded instruction
// is broadcast to registered listeners before it executes.
package cpu
