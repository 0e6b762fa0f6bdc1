package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duckmachine/duckvm/instr"
)

func TestALUExec(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     instr.OpCode
		left   uint32
		right  uint32
		result uint32
		cc     instr.CondFlag
	}){
		{"add", instr.ADD, 2, 3, 5, instr.P},
		{"add_wraps", instr.ADD, 0xffffffff, 1, 0, instr.Z},
		{"sub", instr.SUB, 3, 5, 0xfffffffe, instr.M},
		{"mul", instr.MUL, 6, 7, 42, instr.P},
		{"div", instr.DIV, 42, 6, 7, instr.P},
		{"div_negative", instr.DIV, 0xfffffffa, 2, 0xfffffffd, instr.M},
		{"div_by_zero", instr.DIV, 42, 0, 0, instr.V},
		{"halt", instr.HALT, 9, 9, 0, instr.Z},
		{"load_address", instr.LOAD, 100, 4, 104, instr.P},
		{"store_address", instr.STORE, 0, 511, 511, instr.P},
	}

	alu := ALU{}
	for _, entry := range table {
		result, cc, err := alu.Exec(entry.op, entry.left, entry.right)
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, result, entry.name)
		assert.Equal(entry.cc, cc, entry.name)
	}
}

func TestALUBadOp(t *testing.T) {
	assert := assert.New(t)

	_, _, err := ALU{}.Exec(instr.OpCode(31), 1, 2)
	assert.ErrorIs(err, ErrBadOp(31))
}
