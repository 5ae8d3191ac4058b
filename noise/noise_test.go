package noise

import (
	"math/rand"
	"testing"
	"time"

	"github.com/harlequix/hamfec/internal/encoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popcount(bits []byte) int {
	n := 0
	for _, b := range bits {
		if b == 1 {
			n++
		}
	}
	return n
}

func TestCorruptFlipsAtMostOneBitPerBlock(t *testing.T) {
	const blocks = 1000
	sim := NewSimulator(rand.NewSource(1))
	bits := make([]byte, blocks*encoding.BlockLen)

	events := sim.Corrupt(bits)

	// Started from all zeros, so every one bit is an injected flip and
	// no block may hold more than one.
	for b := 0; b < blocks; b++ {
		block := bits[b*encoding.BlockLen : (b+1)*encoding.BlockLen]
		assert.LessOrEqual(t, popcount(block), 1, "block %d", b)
	}
	require.Equal(t, popcount(bits), len(events), "event count must match flipped bits")
}

func TestCorruptEventsDescribeTheFlip(t *testing.T) {
	sim := NewSimulator(rand.NewSource(42))
	bits := make([]byte, 500*encoding.BlockLen)

	events := sim.Corrupt(bits)
	require.NotEmpty(t, events, "seeded run should corrupt at least one block")

	for _, ev := range events {
		block := bits[ev.Block*encoding.BlockLen : (ev.Block+1)*encoding.BlockLen]
		assert.Equal(t, byte(1), block[ev.Pos], "flipped bit must be set")
		assert.Equal(t, make([]byte, encoding.BlockLen), ev.Original, "snapshot must predate the flip")
		assert.NotSame(t, &block[0], &ev.Original[0], "snapshot must not alias the stream")
	}
}

func TestCorruptLeavesPartialTrailingGroup(t *testing.T) {
	sim := NewSimulator(rand.NewSource(7))
	bits := make([]byte, encoding.BlockLen+3)
	sim.Corrupt(bits)
	assert.Equal(t, []byte{0, 0, 0}, bits[encoding.BlockLen:], "remainder bits must pass through untouched")
}

func TestCorruptionRateApproachesOneInSeven(t *testing.T) {
	const trials = 100000
	sim := NewSimulator(rand.NewSource(time.Now().UnixNano()))
	bits := make([]byte, trials*encoding.BlockLen)

	events := sim.Corrupt(bits)

	rate := float64(len(events)) / float64(trials)
	assert.InDelta(t, 1.0/7.0, rate, 0.02, "corruption rate")
}
