package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzBitField(f *testing.F) {
	f.Add(uint8(0), uint8(3), uint32(0xf), uint32(0xaa00aa00))
	f.Add(uint8(0), uint8(31), uint32(0xffffffff), uint32(0))
	f.Add(uint8(26), uint8(30), uint32(6), uint32(0xdeadbeef))
	f.Add(uint8(31), uint8(31), uint32(1), uint32(0x7fffffff))

	f.Fuzz(func(t *testing.T, from uint8, to uint8, value uint32, word uint32) {
		assert := assert.New(t)

		bf, err := NewBitField(int(from), int(to))
		if err != nil {
			assert.ErrorIs(err, &ErrInvalidRange{})
			return
		}

		inserted := bf.Insert(value, word)

		// Extraction recovers the truncated value.
		truncated := value & lowMask(bf.Width())
		assert.Equal(truncated, bf.Extract(inserted))

		// Untouched bits, idempotence.
		assert.Equal(word&bf.maskout, inserted&bf.maskout)
		assert.Equal(inserted, bf.Insert(value, inserted))

		// ExtractSigned agrees with the standalone SignExtend for
		// every width it accepts.
		if bf.Width() > 1 {
			extended, err := SignExtend(truncated, bf.Width())
			assert.NoError(err)
			assert.Equal(extended, bf.ExtractSigned(inserted))
		}
	})
}
