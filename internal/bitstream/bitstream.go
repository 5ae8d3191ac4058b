package bitstream

// Bits travel between packages as byte slices holding one bit per
// element, most significant bit first within every source byte.

const ONE byte = 1
const ZERO byte = 0

// FromBytes unpacks data into one bit per element, MSB first.
func FromBytes(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for o := 7; o >= 0; o-- {
			bits = append(bits, (b>>uint(o))&1)
		}
	}
	return bits
}

// Pad appends zero bits until the length is a multiple of 8.
func Pad(bits []byte) []byte {
	for len(bits)%8 != 0 {
		bits = append(bits, ZERO)
	}
	return bits
}

// ToBytes packs bits MSB first. A trailing group of fewer than 8 bits
// does not form a byte and is dropped.
func ToBytes(bits []byte) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for o := 0; o < 8; o++ {
			b = b<<1 | bits[i+o]
		}
		out = append(out, b)
	}
	return out
}

// Flip inverts the bit at index.
func Flip(bits []byte, index int) {
	if bits[index] == ONE {
		bits[index] = ZERO
	} else {
		bits[index] = ONE
	}
}

func String(bits []byte) string {
	out := make([]byte, len(bits))
	for i, val := range bits {
		switch val {
		case ONE:
			out[i] = '1'
		case ZERO:
			out[i] = '0'
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
