package utf8x

import "math/bits"

const (
	// SeqMax is the largest byte sequence Encode can produce.
	SeqMax = 5

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxRune      = 0x10FFFF
)

// IsValid reports whether c is an encodable code point: anything below
// the UTF-16 surrogate range, or between it and the Unicode maximum.
func IsValid(c rune) bool {
	return uint32(c) < surrogateMin ||
		(uint32(c) > surrogateMax && uint32(c) <= maxRune)
}

// seqLenForRune derives the sequence length from the bit length of c.
// One byte below 128; above that, lengths step at 12, 17, 22, ... bits,
// so adding three and dividing by five maps bit length to byte count.
func seqLenForRune(c rune) int {
	if uint32(c) < 128 {
		return 1
	}
	return (bits.Len32(uint32(c)) + 3) / 5
}

// RuneSeqLen returns the number of bytes needed to encode a valid code
// point, or 0 for an invalid one.
func RuneSeqLen(c rune) int {
	if !IsValid(c) {
		return 0
	}
	return seqLenForRune(c)
}

// SeqLen classifies a UTF-8 lead byte into its expected sequence
// length. Continuation bytes (10xxxxxx) and lead patterns above 0xF7
// return 0.
func SeqLen(first byte) int {
	if first < 0x80 {
		return 1
	}
	if first > 0xF7 || first&0xC0 == 0x80 {
		return 0
	}
	// Count the leading one bits of the lead byte.
	return bits.LeadingZeros32(0xFF ^ uint32(first)) - 24
}

// Encode writes the UTF-8 sequence for c into dst and returns its
// length. Invalid code points return 0 with nothing written. dst must
// hold at least SeqMax bytes.
func Encode(c rune, dst []byte) int {
	if uint32(c) < 128 {
		dst[0] = byte(c)
		return 1
	}
	if !IsValid(c) {
		return 0
	}
	n := seqLenForRune(c)
	v := uint32(c)
	for i := n - 1; i > 0; i-- {
		dst[i] = byte(v&0x3F) | 0x80
		v >>= 6
	}
	dst[0] = byte(0xFF^(1<<(8-n)-1)) | byte(v)
	return n
}

// Decode reads one UTF-8 sequence from seq and returns the code point
// and the number of bytes consumed. Malformed input (a bad lead byte,
// a short sequence, or any continuation byte that is not 10xxxxxx)
// returns (0, 0).
func Decode(seq []byte) (rune, int) {
	if len(seq) == 0 {
		return 0, 0
	}
	n := SeqLen(seq[0])
	if n == 0 || n > len(seq) {
		return 0, 0
	}
	if n == 1 {
		return rune(seq[0]), 1
	}
	for _, c := range seq[1:n] {
		if c&0xC0 != 0x80 {
			return 0, 0
		}
	}
	var c uint32
	switch n {
	case 2:
		c = uint32(seq[0]&0x1F)<<6 | uint32(seq[1]&0x3F)
	case 3:
		c = uint32(seq[0]&0x0F)<<12 | uint32(seq[1]&0x3F)<<6 |
			uint32(seq[2]&0x3F)
	case 4:
		c = uint32(seq[0]&0x07)<<18 | uint32(seq[1]&0x3F)<<12 |
			uint32(seq[2]&0x3F)<<6 | uint32(seq[3]&0x3F)
	default:
		return 0, 0
	}
	return rune(c), n
}
