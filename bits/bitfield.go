package bits

// WORD_SIZE is the machine word width in bits.
const WORD_SIZE = 32

// BitField handles insertion and extraction of one field within a
// 32-bit word. The field bounds never change after construction;
// the masks and sign constants are derived from them once.
type BitField struct {
	from  int // Low-order bit position of the field.
	to    int // High-order bit position of the field.
	width int // Number of bits in the field.

	mask    uint32 // 1s in the field positions, 0s elsewhere.
	maskout uint32 // 0s in the field positions, 1s elsewhere.

	signBit uint32 // Sign bit of the field, in the low-order position.
	comp    uint64 // 2^width, the sign extension complement.
}

// NewBitField creates a field covering bits from..to inclusive,
// where 0 is the low-order bit and 31 the high-order bit. For
// example, the low-order 4 bits of a word are from=0, to=3.
func NewBitField(from, to int) (bf BitField, err error) {
	if from < 0 || from > to || to >= WORD_SIZE {
		err = &ErrInvalidRange{From: from, To: to}
		return
	}

	width := to - from + 1

	bf = BitField{
		from:    from,
		to:      to,
		width:   width,
		mask:    lowMask(width) << from,
		signBit: 1 << (width - 1),
		comp:    uint64(1) << width,
	}
	bf.maskout = ^bf.mask

	return
}

// MustBitField is NewBitField for package-level field definitions,
// panicking on an invalid range.
func MustBitField(from, to int) BitField {
	bf, err := NewBitField(from, to)
	if err != nil {
		panic(err)
	}
	return bf
}

// lowMask constructs a mask of width ones in the low-order bits.
func lowMask(width int) uint32 {
	return uint32((uint64(1) << width) - 1)
}

// Width returns the number of bits in the field.
func (bf BitField) Width() int {
	return bf.width
}

// Insert returns word with the field bits replaced by value. Bits
// of value above the field width are discarded, mirroring the
// truncation a hardware latch performs. Bits of word outside the
// field are unchanged.
func (bf BitField) Insert(value, word uint32) uint32 {
	inPlace := (value << bf.from) & bf.mask
	return (word & bf.maskout) | inPlace
}

// Extract returns the unsigned value of the field, shifted into the
// low-order bits. The result lies in [0, 2^width - 1].
func (bf BitField) Extract(word uint32) uint32 {
	return (word & bf.mask) >> bf.from
}

// ExtractSigned returns the field value with its high bit
// interpreted as a two's complement sign.
func (bf BitField) ExtractSigned(word uint32) int32 {
	value := bf.Extract(word)
	if value&bf.signBit != 0 {
		return int32(int64(value) - int64(bf.comp))
	}
	return int32(value)
}
