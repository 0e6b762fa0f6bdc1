package bits

import (
	"github.com/duckmachine/duckvm/translate"
)

var f = translate.From

// ErrInvalidRange reports a field range that is reversed or falls
// outside the 32-bit word.
type ErrInvalidRange struct {
	From int
	To   int
}

func (err *ErrInvalidRange) Error() string {
	return f("bit range %v..%v invalid", err.From, err.To)
}

func (err *ErrInvalidRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrInvalidRange)
	return
}

// ErrInvalidWidth reports a sign-extension width outside 2..32.
type ErrInvalidWidth int

func (err ErrInvalidWidth) Error() string {
	return f("sign extension width %v invalid", int(err))
}

func (err ErrInvalidWidth) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidWidth)
	return
}
