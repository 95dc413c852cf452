package argon

// Memory is the lanes × laneLength matrix of blocks the engine fills.
// Blocks are stored lane after lane; no bounds are checked beyond
// what the slice itself enforces.
type Memory struct {
	lanes      uint32
	laneLength uint32
	blocks     []Block
}

// NewMemory allocates lanes*laneLength zeroed blocks.
func NewMemory(lanes, laneLength uint32) *Memory {
	return &Memory{
		lanes:      lanes,
		laneLength: laneLength,
		blocks:     make([]Block, int(lanes)*int(laneLength)),
	}
}

// Len returns the number of blocks in m.
func (m *Memory) Len() int { return len(m.blocks) }

// Block returns the block at linear index i. The returned pointer
// aliases m.
func (m *Memory) Block(i uint32) *Block {
	return &m.blocks[i]
}

// SetBlock overwrites the block at linear index i with a copy of b.
func (m *Memory) SetBlock(i uint32, b *Block) {
	m.blocks[i] = *b
}

// BlockAt returns the block at offset within lane.
func (m *Memory) BlockAt(lane, offset uint32) *Block {
	return m.Block(lane*m.laneLength + offset)
}

// SetBlockAt overwrites the block at offset within lane with a copy of b.
func (m *Memory) SetBlockAt(lane, offset uint32, b *Block) {
	m.SetBlock(lane*m.laneLength+offset, b)
}

// Wipe zeroes every block.
func (m *Memory) Wipe() {
	clear(m.blocks)
}
