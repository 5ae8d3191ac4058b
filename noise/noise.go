package noise

import (
	"math/rand"

	"github.com/harlequix/hamfec/internal/bitstream"
	"github.com/harlequix/hamfec/internal/encoding"
	log "github.com/harlequix/hamfec/log"
	"github.com/jinzhu/copier"
)

// errSentinel is the one draw out of seven that triggers a bit flip,
// inherited from the historical encoder.
const errSentinel = 4

// Event records a single injected bit flip.
type Event struct {
	Block    int    // codeword index within the stream
	Pos      int    // flipped bit index within the codeword, 0 holds position 7
	Original []byte // codeword before the flip
}

// Simulator injects at most one bit flip per 7-bit codeword, each
// codeword independently suffering a flip with probability 1/7 at a
// uniformly random position.
type Simulator struct {
	rng *rand.Rand
	log *log.Logger
}

// NewSimulator wraps an explicitly seeded generator. Tests pass a fixed
// seed; the CLI seeds from the clock.
func NewSimulator(src rand.Source) *Simulator {
	return &Simulator{
		rng: rand.New(src),
		log: log.NewLogger("noise"),
	}
}

// CorruptBlock flips at most one bit of a codeword in place, returning
// the event applied or nil when the draw spares the block.
func (s *Simulator) CorruptBlock(code []byte) *Event {
	if s.rng.Intn(encoding.BlockLen) != errSentinel {
		return nil
	}
	pos := s.rng.Intn(encoding.BlockLen)
	event := &Event{Pos: pos}
	copier.Copy(&event.Original, code)
	bitstream.Flip(code, pos)
	return event
}

// Corrupt runs CorruptBlock over every full codeword of bits, leaving
// any trailing partial group untouched, and returns the events applied.
func (s *Simulator) Corrupt(bits []byte) []*Event {
	var events []*Event
	limit := len(bits) / encoding.BlockLen * encoding.BlockLen
	for off := 0; off < limit; off += encoding.BlockLen {
		event := s.CorruptBlock(bits[off : off+encoding.BlockLen])
		if event == nil {
			continue
		}
		event.Block = off / encoding.BlockLen
		s.log.WithField("block", event.Block).WithField("pos", event.Pos).WithField("was", bitstream.String(event.Original)).Trace("flipped bit")
		events = append(events, event)
	}
	return events
}
