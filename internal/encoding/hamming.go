package encoding

import (
	"github.com/harlequix/hamfec/internal/bitstream"
)

const BlockLen = 7
const DataLen = 4

// places maps each parity position to the codeword positions it covers,
// in the classical 1-indexed Hamming numbering. A codeword slice reads
// positions 7..1 left to right, so slice index i holds position 7-i.
var places map[int][]int

// dataPlaces lists the data positions in stream order: the first bit of
// a nibble lands on position 7, the last on position 3.
var dataPlaces = []int{7, 6, 5, 3}

func init() {
	places = make(map[int][]int)
	places[1] = []int{1, 3, 5, 7}
	places[2] = []int{2, 3, 6, 7}
	places[4] = []int{4, 5, 6, 7}
}

func index(position int) int {
	return BlockLen - position
}

// EncodeBlock maps one 4-bit nibble to its 7-bit codeword. Each parity
// bit completes its place group to even parity.
func EncodeBlock(nibble []byte) []byte {
	code := make([]byte, BlockLen)
	for i, pos := range dataPlaces {
		code[index(pos)] = nibble[i]
	}
	for par := range places {
		if calculateParity(code, places[par]) {
			code[index(par)] = bitstream.ONE
		} else {
			code[index(par)] = bitstream.ZERO
		}
	}
	return code
}

// DecodeBlock recovers the 4 data bits from a codeword carrying at most
// one flipped bit, repairing the codeword in place when the syndrome is
// nonzero. The flag reports whether a correction was applied. Two or
// more simultaneous flips yield a confidently wrong nibble; the code
// cannot tell.
func DecodeBlock(code []byte) ([]byte, bool) {
	syndrome := 0
	for par := range places {
		if calculateParity(code, places[par]) {
			syndrome += par
		}
	}
	corrected := false
	if syndrome != 0 {
		bitstream.Flip(code, index(syndrome))
		corrected = true
	}
	nibble := make([]byte, DataLen)
	for i, pos := range dataPlaces {
		nibble[i] = code[index(pos)]
	}
	return nibble, corrected
}

// calculateParity reports whether the place group holds an odd number
// of one bits.
func calculateParity(code []byte, group []int) bool {
	count := 0
	for _, pos := range group {
		if code[index(pos)] == bitstream.ONE {
			count++
		}
	}
	return count%2 != 0
}
