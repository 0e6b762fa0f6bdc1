// Package instr defines the duck machine instruction word: a 4-bit
// condition predicate, a 5-bit opcode, three 4-bit register
// indexes, and a 10-bit signed offset, packed with bit fields.
package instr

import (
	"fmt"

	"github.com/duckmachine/duckvm/bits"
)

// CondFlag is the condition flag bitmask produced by the ALU and
// matched against an instruction's predicate. An instruction
// executes when its predicate shares at least one bit with the
// current flags.
type CondFlag uint32

const (
	M = CondFlag(1 << 0) // Result was negative (minus).
	Z = CondFlag(1 << 1) // Result was zero.
	P = CondFlag(1 << 2) // Result was positive.
	V = CondFlag(1 << 3) // Result overflowed or was invalid.

	NEVER  = CondFlag(0)
	ALWAYS = M | Z | P | V
)

// String renders the flag combination, with the two special values
// spelled out.
func (cf CondFlag) String() (out string) {
	switch cf {
	case NEVER:
		return "NEVER"
	case ALWAYS:
		return "ALWAYS"
	}

	names := [](struct {
		flag CondFlag
		name string
	}){{M, "M"}, {Z, "Z"}, {P, "P"}, {V, "V"}}
	for _, entry := range names {
		if cf&entry.flag != 0 {
			out += entry.name
		}
	}

	return
}

// OpCode is the operation selector of an instruction.
type OpCode int

//go:generate go tool stringer -linecomment -type=OpCode
const (
	HALT  = OpCode(0) // HALT
	LOAD  = OpCode(1) // LOAD
	STORE = OpCode(2) // STORE
	ADD   = OpCode(3) // ADD
	SUB   = OpCode(4) // SUB
	MUL   = OpCode(5) // MUL
	DIV   = OpCode(6) // DIV
)

// Field widths of the instruction word.
const (
	OFFSET_BITS = 10 // Signed offset width.
	REG_BITS    = 4  // Register index width.
)

// Instruction word layout, low-order bit first. Bit 31 is reserved.
var (
	offsetField = bits.MustBitField(0, 9)
	src2Field   = bits.MustBitField(10, 13)
	src1Field   = bits.MustBitField(14, 17)
	targetField = bits.MustBitField(18, 21)
	condField   = bits.MustBitField(22, 25)
	opField     = bits.MustBitField(26, 30)
)

// Instruction is a decoded instruction word.
type Instruction struct {
	Cond      CondFlag // Predicate matched against the current flags.
	Op        OpCode   // Operation selector.
	RegTarget int      // Target register index.
	RegSrc1   int      // Left operand register index.
	RegSrc2   int      // Right operand register index.
	Offset    int32    // Signed offset added to the right operand.
}

// Decode unpacks a raw instruction word.
func Decode(word uint32) Instruction {
	return Instruction{
		Cond:      CondFlag(condField.Extract(word)),
		Op:        OpCode(opField.Extract(word)),
		RegTarget: int(targetField.Extract(word)),
		RegSrc1:   int(src1Field.Extract(word)),
		RegSrc2:   int(src2Field.Extract(word)),
		Offset:    offsetField.ExtractSigned(word),
	}
}

// Encode packs the instruction into a raw word.
func (in Instruction) Encode() (word uint32) {
	word = opField.Insert(uint32(in.Op), word)
	word = condField.Insert(uint32(in.Cond), word)
	word = targetField.Insert(uint32(in.RegTarget), word)
	word = src1Field.Insert(uint32(in.RegSrc1), word)
	word = src2Field.Insert(uint32(in.RegSrc2), word)
	word = offsetField.Insert(uint32(in.Offset), word)
	return
}

// String renders the instruction in assembly syntax.
func (in Instruction) String() string {
	cond := ""
	if in.Cond != ALWAYS {
		cond = "/" + in.Cond.String()
	}
	offset := ""
	if in.Offset != 0 {
		offset = fmt.Sprintf("[%d]", in.Offset)
	}
	return fmt.Sprintf("%v%v r%d,r%d,r%d%v", in.Op, cond, in.RegTarget, in.RegSrc1, in.RegSrc2, offset)
}
