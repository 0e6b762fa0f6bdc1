package cpu

import (
	"github.com/duckmachine/duckvm/instr"
)

// ALU computes one result word and the condition flags it raises.
type ALU struct{}

// Exec applies op to left and right. LOAD and STORE compute the
// effective address left+right, HALT computes nothing, and division
// by zero yields 0 with only the overflow flag set. Arithmetic
// wraps at 32 bits; comparisons for the flags are signed.
func (alu ALU) Exec(op instr.OpCode, left, right uint32) (result uint32, cc instr.CondFlag, err error) {
	switch op {
	case instr.HALT:
		result = 0
	case instr.LOAD, instr.STORE, instr.ADD:
		result = left + right
	case instr.SUB:
		result = left - right
	case instr.MUL:
		result = left * right
	case instr.DIV:
		if right == 0 {
			cc = instr.V
			return
		}
		result = uint32(int32(left) / int32(right))
	default:
		err = ErrBadOp(op)
		return
	}

	cc = flagsOf(result)
	return
}

// flagsOf derives the condition flags of a result word.
func flagsOf(result uint32) instr.CondFlag {
	switch {
	case result == 0:
		return instr.Z
	case int32(result) < 0:
		return instr.M
	default:
		return instr.P
	}
}
