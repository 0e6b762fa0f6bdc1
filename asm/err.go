package asm

import (
	"errors"

	"github.com/duckmachine/duckvm/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrOperandSyntax   = errors.New(f("operand syntax"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrCondInvalid     = errors.New(f("condition invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrOffsetRange     = errors.New(f("offset out of range"))
	ErrValueRange      = errors.New(f("value out of range"))
)

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
