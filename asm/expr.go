package asm

import (
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// exprEval does compile-time $(...) evaluations. Equates with
// integer values are bound as starlark variables.
func (asm *Assembler) exprEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}

	for key, str := range asm.Equate {
		v64, nerr := strconv.ParseInt(str, 0, 64)
		if nerr != nil {
			// Non-integer equates may be registers or labels;
			// they are not visible to expressions.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}
