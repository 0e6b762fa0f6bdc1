package memory

import (
	"fmt"
	"io"
)

// Default mapped addresses of the machine.
const (
	ADDR_INPUT  = uint32(510) // A LOAD here consumes an integer from Input.
	ADDR_OUTPUT = uint32(511) // A STORE here prints an integer to Output.
)

// MappedIO is a RAM with two reserved addresses mapped onto an
// input and an output stream. Values are whole decimal integers,
// one per line, written and read as signed words.
type MappedIO struct {
	RAM

	InAddr  uint32 // Mapped input address.
	OutAddr uint32 // Mapped output address.

	Input  io.Reader
	Output io.Writer
}

var _ Connection = (*MappedIO)(nil)

// NewMappedIO creates a mapped memory of size words with the
// default input and output addresses.
func NewMappedIO(size uint32, input io.Reader, output io.Writer) (mem *MappedIO) {
	mem = &MappedIO{
		InAddr:  ADDR_INPUT,
		OutAddr: ADDR_OUTPUT,
		Input:   input,
		Output:  output,
	}
	mem.Cells = make([]uint32, size)
	return
}

func (mem *MappedIO) Get(addr uint32) (value uint32, err error) {
	if addr == mem.InAddr {
		var v int64
		_, err = fmt.Fscanln(mem.Input, &v)
		if err != nil {
			err = &ErrInput{Err: err}
			return
		}
		value = uint32(v)
		return
	}
	return mem.RAM.Get(addr)
}

func (mem *MappedIO) Put(addr uint32, value uint32) (err error) {
	if addr == mem.OutAddr {
		_, err = fmt.Fprintf(mem.Output, "%d\n", int32(value))
		return
	}
	return mem.RAM.Put(addr, value)
}
