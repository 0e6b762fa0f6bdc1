// Package bits implements the bit-field codec for 32-bit machine
// words. A bit field is a contiguous inclusive range of bit
// positions, bit 0 being the low-order bit (value 2^0) and bit 31
// the high-order bit of an unsigned 32-bit word.
//
// A BitField is an aid to encoding and decoding instructions by
// packing and unpacking parts of an instruction in different fields
// of individual instruction words. All arithmetic is true
// fixed-width unsigned arithmetic on uint32 values.
package bits
