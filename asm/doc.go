// Package asm implements a two-pass assembler for duck machine
// assembly, and the text object code format the emulator loads.
//
// Accepted line forms:
//
//	label: OP/COND target,src1,src2[offset]  # comment
//	label: DATA value
//	.equ NAME value
//
// OP is one of HALT, LOAD, STORE, ADD, SUB, MUL, DIV, and COND is
// ALWAYS, NEVER, or any combination of the letters M, Z, P, V
// (omitted means ALWAYS). Offsets and DATA values may be numbers,
// labels, or equates. The pseudo-instructions NOP, MOVE and JUMP
// expand to ADD forms, JUMP by storing into the program counter.
//
// $( ... ) evaluates a starlark expression at assembly time, with
// equates bound as variables.
package asm
