package bits

// SignExtend interprets field as a signed integer of the given
// width. If the sign bit (bit width-1) is clear the value is
// returned unchanged; otherwise the result is the negative two's
// complement interpretation.
//
// For example, a 3-bit field holding 0b111 is -4 + 2 + 1 = -1,
// while a 4-bit field holding 0b0111 is 4 + 2 + 1 = 7. The sign bit
// distinguishes the two.
//
// width must lie in 2..32.
func SignExtend(field uint32, width int) (value int32, err error) {
	if width <= 1 || width > WORD_SIZE {
		err = ErrInvalidWidth(width)
		return
	}

	signBit := uint32(1) << (width - 1)
	if field&signBit != 0 {
		mask := signBit - 1
		value = int32(int64(field&mask) - int64(signBit))
	} else {
		value = int32(field)
	}

	return
}
