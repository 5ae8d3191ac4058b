package hamfec

import (
	"fmt"
	"io/ioutil"

	"github.com/harlequix/hamfec/internal/bitstream"
	"github.com/harlequix/hamfec/internal/encoding"
	log "github.com/harlequix/hamfec/log"
	"github.com/harlequix/hamfec/noise"
)

var logger *log.Logger = log.NewLogger("hamfec")

// Encode expands every 4 data bits of data into a 7-bit Hamming
// codeword and packs the result, zero-padded to a byte boundary. The
// format carries no length header: up to 7 trailing padding bits are
// indistinguishable from payload, and Decode recovers the original
// length only because whole-byte inputs keep the codeword count even.
func Encode(data []byte) []byte {
	bits := bitstream.FromBytes(data)
	out := make([]byte, 0, len(bits)/encoding.DataLen*encoding.BlockLen+8)
	for off := 0; off+encoding.DataLen <= len(bits); off += encoding.DataLen {
		out = append(out, encoding.EncodeBlock(bits[off:off+encoding.DataLen])...)
	}
	return bitstream.ToBytes(bitstream.Pad(out))
}

// Corrupt runs the noise simulator over every full codeword of an
// encoded buffer. Trailing bits that do not fill a codeword are encoder
// padding and pass through untouched, so the output is exactly as long
// as the input.
func Corrupt(data []byte, sim *noise.Simulator) []byte {
	bits := bitstream.FromBytes(data)
	events := sim.Corrupt(bits)
	logger.WithField("blocks", len(bits)/encoding.BlockLen).WithField("flipped", len(events)).Debug("noise pass done")
	return bitstream.ToBytes(bits)
}

// Decode splits data into 7-bit codewords, corrects at most one flipped
// bit in each and packs the recovered data bits. Remainder bits past
// the last full codeword are dropped, as is a final partial byte of
// recovered bits. A codeword hit by two or more flips decodes to a
// wrong nibble without any indication; single-error correction is all
// the code affords.
func Decode(data []byte) []byte {
	bits := bitstream.FromBytes(data)
	out := make([]byte, 0, len(bits)/encoding.BlockLen*encoding.DataLen)
	corrections := 0
	for off := 0; off+encoding.BlockLen <= len(bits); off += encoding.BlockLen {
		nibble, corrected := encoding.DecodeBlock(bits[off : off+encoding.BlockLen])
		if corrected {
			corrections++
		}
		out = append(out, nibble...)
	}
	logger.WithField("corrected", corrections).Debug("decode pass done")
	return bitstream.ToBytes(out)
}

// EncodeFile reads from as raw bytes, encodes and writes the result to
// to. One-shot: nothing is written when the read fails.
func EncodeFile(from, to string) error {
	data, err := ioutil.ReadFile(from)
	if err != nil {
		return fmt.Errorf("read %s: %w", from, err)
	}
	if err := ioutil.WriteFile(to, Encode(data), 0644); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}
	return nil
}

// CorruptFile reads an encoded file, runs the noise simulator over it
// and writes the corrupted copy.
func CorruptFile(from, to string, sim *noise.Simulator) error {
	data, err := ioutil.ReadFile(from)
	if err != nil {
		return fmt.Errorf("read %s: %w", from, err)
	}
	if err := ioutil.WriteFile(to, Corrupt(data, sim), 0644); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}
	return nil
}

// DecodeFile reads an encoded (possibly corrupted) file, corrects and
// strips the parity bits and writes the recovered payload.
func DecodeFile(from, to string) error {
	data, err := ioutil.ReadFile(from)
	if err != nil {
		return fmt.Errorf("read %s: %w", from, err)
	}
	if err := ioutil.WriteFile(to, Decode(data), 0644); err != nil {
		return fmt.Errorf("write %s: %w", to, err)
	}
	return nil
}
