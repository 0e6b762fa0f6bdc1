package cpu

import (
	"github.com/duckmachine/duckvm/instr"
	"github.com/duckmachine/duckvm/translate"
)

var f = translate.From

// ErrBadOp reports an opcode outside the machine's instruction set.
type ErrBadOp instr.OpCode

func (err ErrBadOp) Error() string {
	return f("bad opcode %v", instr.OpCode(err))
}

func (err ErrBadOp) Is(target error) (ok bool) {
	_, ok = target.(ErrBadOp)
	return
}
