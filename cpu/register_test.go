package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordRegister(t *testing.T) {
	assert := assert.New(t)

	reg := &WordRegister{}
	assert.Equal(uint32(0), reg.Get())

	reg.Put(0xdeadbeef)
	assert.Equal(uint32(0xdeadbeef), reg.Get())
}

func TestZeroRegister(t *testing.T) {
	assert := assert.New(t)

	reg := &ZeroRegister{}
	assert.Equal(uint32(0), reg.Get())

	reg.Put(42)
	assert.Equal(uint32(0), reg.Get())
}
