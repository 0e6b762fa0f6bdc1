package cpu

// Register is one slot of the register file.
type Register interface {
	Get() uint32
	Put(value uint32)
}

// WordRegister is a general purpose 32-bit register.
type WordRegister struct {
	value uint32
}

func (reg *WordRegister) Get() uint32 {
	return reg.value
}

func (reg *WordRegister) Put(value uint32) {
	reg.value = value
}

// ZeroRegister reads as zero and discards stores, as register 0 of
// the machine does.
type ZeroRegister struct{}

func (reg *ZeroRegister) Get() uint32 {
	return 0
}

func (reg *ZeroRegister) Put(value uint32) {
}

var (
	_ Register = (*WordRegister)(nil)
	_ Register = (*ZeroRegister)(nil)
)
