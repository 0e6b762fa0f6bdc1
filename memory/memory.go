// Package memory provides the word-addressed memory a duck machine
// CPU is connected to, including a variant with two addresses
// mapped onto input and output streams.
package memory

// Connection is the CPU's window onto memory.
type Connection interface {
	// Get reads the word at addr.
	Get(addr uint32) (value uint32, err error)
	// Put writes the word at addr.
	Put(addr uint32, value uint32) (err error)
}

// RAM is a flat word-addressed memory.
type RAM struct {
	Cells []uint32
}

var _ Connection = (*RAM)(nil)

// NewRAM creates a zeroed memory of size words.
func NewRAM(size uint32) *RAM {
	return &RAM{Cells: make([]uint32, size)}
}

func (ram *RAM) Get(addr uint32) (value uint32, err error) {
	if addr >= uint32(len(ram.Cells)) {
		err = ErrAddressRange(addr)
		return
	}
	value = ram.Cells[addr]
	return
}

func (ram *RAM) Put(addr uint32, value uint32) (err error) {
	if addr >= uint32(len(ram.Cells)) {
		err = ErrAddressRange(addr)
		return
	}
	ram.Cells[addr] = value
	return
}

// Clear zeroes the memory.
func (ram *RAM) Clear() {
	clear(ram.Cells)
}
