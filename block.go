package argon

import "encoding/binary"

const (
	// BlockSize is the size of a memory block in bytes.
	BlockSize = 1024

	// qwordsInBlock is the number of 64-bit words in a block.
	qwordsInBlock = BlockSize / 8

	// addressesInBlock is the number of reference addresses one
	// address block yields in data-independent mode.
	addressesInBlock = qwordsInBlock
)

// A Block is the 1 KiB unit of Argon2 memory, viewed as 128 words.
// Words are read and written by plain indexing. Arithmetic on them
// wraps at 2^64 because that is what uint64 does.
type Block [qwordsInBlock]uint64

// Zero sets every word of b to 0.
func (b *Block) Zero() {
	*b = Block{}
}

// XOR sets b[i] ^= rhs[i] for every word.
func (b *Block) XOR(rhs *Block) {
	for i, v := range rhs {
		b[i] ^= v
	}
}

// CopyTo copies b into dst.
func (b *Block) CopyTo(dst *Block) {
	*dst = *b
}

// Clone returns an independent copy of b.
func (b *Block) Clone() *Block {
	c := *b
	return &c
}

// Equal reports whether b and other hold the same words.
func (b *Block) Equal(other *Block) bool {
	return *b == *other
}

// Bytes returns the little-endian encoding of b's words.
// The layout does not depend on the host byte order.
func (b *Block) Bytes() []byte {
	out := make([]byte, BlockSize)
	for i, v := range b {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out
}

// SetBytes loads b from the first BlockSize bytes of p,
// reading each word as little-endian.
func (b *Block) SetBytes(p []byte) {
	_ = p[BlockSize-1]
	for i := range b {
		b[i] = binary.LittleEndian.Uint64(p[i*8:])
	}
}
