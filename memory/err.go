package memory

import (
	"github.com/duckmachine/duckvm/translate"
)

var f = translate.From

// ErrAddressRange reports an access outside the memory.
type ErrAddressRange uint32

func (err ErrAddressRange) Error() string {
	return f("address %v out of range", uint32(err))
}

func (err ErrAddressRange) Is(target error) (ok bool) {
	_, ok = target.(ErrAddressRange)
	return
}

// ErrInput reports a failed read on the mapped input address.
type ErrInput struct {
	Err error
}

func (err *ErrInput) Error() string {
	return f("mapped input: %v", err.Err)
}

func (err *ErrInput) Unwrap() error {
	return err.Err
}
