package argon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMemory(t *testing.T) {
	m := NewMemory(3, 8)
	require.Equal(t, 24, m.Len())
	for i := uint32(0); i < 24; i++ {
		require.Equal(t, Block{}, *m.Block(i))
	}
}

func TestMemoryLaneAddressing(t *testing.T) {
	m := NewMemory(2, 8)

	var b Block
	b[0] = 42
	m.SetBlockAt(1, 3, &b)
	require.Equal(t, uint64(42), m.Block(11)[0])
	require.Same(t, m.Block(11), m.BlockAt(1, 3))

	// SetBlock stores a copy.
	b[0] = 7
	require.Equal(t, uint64(42), m.BlockAt(1, 3)[0])

	m.SetBlock(0, &b)
	require.Equal(t, uint64(7), m.BlockAt(0, 0)[0])

	m.Wipe()
	require.Equal(t, Block{}, *m.BlockAt(1, 3))
	require.Equal(t, Block{}, *m.Block(0))
}
