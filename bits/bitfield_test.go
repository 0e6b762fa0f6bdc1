package bits

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBitField(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		from int
		to   int
		ok   bool
	}){
		{"low_nibble", 0, 3, true},
		{"single_bit", 31, 31, true},
		{"full_word", 0, 31, true},
		{"reversed", 5, 2, false},
		{"negative", -1, 3, false},
		{"past_end", 28, 32, false},
	}

	for _, entry := range table {
		bf, err := NewBitField(entry.from, entry.to)
		if entry.ok {
			assert.NoError(err, entry.name)
			assert.Equal(entry.to-entry.from+1, bf.Width(), entry.name)
		} else {
			assert.ErrorIs(err, &ErrInvalidRange{}, entry.name)
		}
	}
}

func TestMustBitField(t *testing.T) {
	assert := assert.New(t)

	assert.NotPanics(func() { MustBitField(0, 9) })
	assert.Panics(func() { MustBitField(5, 2) })
}

func TestInsertExtract(t *testing.T) {
	assert := assert.New(t)

	// As in the hardware manual: inserting 0xf into bits 4..7 of
	// 0xaa00aa00 gives 0xaa00aaf0.
	bf := MustBitField(4, 7)
	assert.Equal(uint32(0xaa00aaf0), bf.Insert(0xf, 0xaa00aa00))
	assert.Equal(uint32(0xf), bf.Extract(0xaa00aaf0))

	// The round-trip law over every width, at both ends of the word
	// and somewhere in the middle.
	words := []uint32{0, 0xffffffff, 0xaa55aa55, 0xdeadbeef}
	for width := 1; width <= WORD_SIZE; width++ {
		for _, from := range []int{0, (WORD_SIZE - width) / 2, WORD_SIZE - width} {
			bf, err := NewBitField(from, from+width-1)
			assert.NoError(err)
			values := []uint32{0, 1, lowMask(width) >> 1, lowMask(width)}
			for _, value := range values {
				for _, word := range words {
					inserted := bf.Insert(value, word)
					assert.Equal(value, bf.Extract(inserted))

					// Bits outside the field are untouched.
					assert.Equal(word&bf.maskout, inserted&bf.maskout)

					// Insertion is idempotent.
					assert.Equal(inserted, bf.Insert(value, inserted))
				}
			}
		}
	}
}

func TestInsertTruncates(t *testing.T) {
	assert := assert.New(t)

	// A value wider than the field is silently truncated to the
	// field width, as a hardware latch would.
	bf := MustBitField(0, 3)
	assert.Equal(uint32(0xf), bf.Insert(0x1f, 0))
	assert.Equal(uint32(0xf), bf.Extract(bf.Insert(0x1f, 0)))

	high := MustBitField(28, 31)
	assert.Equal(uint32(0x50000000), high.Insert(0x15, 0))
}

func TestExtractSigned(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		from  int
		to    int
		word  uint32
		value int32
	}){
		{"three_bit_minus_one", 0, 2, 0b111, -1},
		{"four_bit_seven", 0, 3, 0b0111, 7},
		{"offset_minus_512", 0, 9, 0x200, -512},
		{"offset_511", 0, 9, 0x1ff, 511},
		{"high_field_minus_one", 28, 31, 0xf0000000, -1},
		{"full_word_minus_one", 0, 31, 0xffffffff, -1},
		{"zero", 0, 9, 0, 0},
	}

	for _, entry := range table {
		bf := MustBitField(entry.from, entry.to)
		assert.Equal(entry.value, bf.ExtractSigned(entry.word), entry.name)
	}
}

func TestSignExtend(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		field uint32
		width int
		value int32
	}){
		{"three_bit_minus_one", 0b111, 3, -1},
		{"four_bit_seven", 0b0111, 4, 7},
		{"two_bit_minus_two", 0b10, 2, -2},
		{"ten_bit_minus_512", 0x200, 10, -512},
		{"full_width_minus_one", 0xffffffff, 32, -1},
		{"full_width_min", 0x80000000, 32, -2147483648},
	}

	for _, entry := range table {
		value, err := SignExtend(entry.field, entry.width)
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, value, entry.name)
	}

	for _, width := range []int{1, 0, -4, 33} {
		_, err := SignExtend(1, width)
		assert.ErrorIs(err, ErrInvalidWidth(width))
		assert.True(errors.Is(err, ErrInvalidWidth(0)))
	}
}
