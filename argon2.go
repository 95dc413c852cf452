package argon

import (
	"encoding/hex"
	"hash"
	"log/slog"
	"math/bits"

	"github.com/dchest/blake2b"
)

const (
	// prehashDigestLength is the size of H0.
	prehashDigestLength = 64

	// prehashSeedLength is H0 followed by two little-endian words,
	// the block index and the lane.
	prehashSeedLength = prehashDigestLength + 8
)

// position is the cursor of one segment fill.
type position struct {
	pass  uint32
	lane  uint32
	slice uint32
	index uint32
}

// run computes the raw hash for a validated context.
// log, if non-nil, receives a debug trace of the computation.
func run(ctx *Context, log *slog.Logger) []byte {
	mem := NewMemory(ctx.config.Lanes, ctx.laneLength)
	defer mem.Wipe()

	initialize(ctx, mem, log)
	fillMemoryBlocks(ctx, mem, log)
	return finalize(ctx, mem, log)
}

// initialize computes H0 and uses it to fill the first two blocks of
// every lane.
func initialize(ctx *Context, mem *Memory, log *slog.Logger) {
	var seed [prehashSeedLength]byte
	h0 := initialHash(ctx, seed[:0])

	if log != nil {
		c := &ctx.config
		log.Debug("argon2 parameters",
			"variant", c.Variant.Name(),
			"version", c.Version,
			"memory_kib", c.MemCost,
			"passes", c.TimeCost,
			"lanes", c.Lanes,
			"tag_length", c.HashLength,
		)
		log.Debug("argon2 pre-hashing digest", "h0", hex.EncodeToString(h0))
	}

	fillFirstBlocks(ctx, mem, &seed)

	clear(seed[:])
}

// initialHash writes H0 into dst[:64] and returns it.
func initialHash(ctx *Context, dst []byte) []byte {
	c := &ctx.config

	h := blake2b.New512()
	write32(h, c.Lanes)
	write32(h, c.HashLength)
	write32(h, c.MemCost)
	write32(h, c.TimeCost)
	write32(h, uint32(c.Version))
	write32(h, uint32(c.Variant))
	write32(h, uint32(len(ctx.pwd)))
	h.Write(ctx.pwd)
	write32(h, uint32(len(ctx.salt)))
	h.Write(ctx.salt)
	write32(h, uint32(len(c.Secret)))
	h.Write(c.Secret)
	write32(h, uint32(len(c.Ad)))
	h.Write(c.Ad)
	return h.Sum(dst)
}

// fillFirstBlocks sets block 0 and 1 of each lane to H'(H0 || j || lane).
// seed holds H0 in its first 64 bytes.
func fillFirstBlocks(ctx *Context, mem *Memory, seed *[prehashSeedLength]byte) {
	var buf [BlockSize]byte
	for lane := uint32(0); lane < ctx.config.Lanes; lane++ {
		put32(seed[prehashDigestLength+4:], lane)

		put32(seed[prehashDigestLength:], 0)
		blake2bLong(buf[:], seed[:])
		mem.BlockAt(lane, 0).SetBytes(buf[:])

		put32(seed[prehashDigestLength:], 1)
		blake2bLong(buf[:], seed[:])
		mem.BlockAt(lane, 1).SetBytes(buf[:])
	}
	clear(buf[:])
}

// fillMemoryBlocks runs every pass. Within a pass slices are filled in
// order and each slice is complete in all lanes before the next one
// starts; blocks of slice s are only referenced from slice s onwards.
func fillMemoryBlocks(ctx *Context, mem *Memory, log *slog.Logger) {
	lanes := ctx.config.Lanes
	threads := min(ctx.config.Threads, int(lanes))

	for pass := uint32(0); pass < ctx.config.TimeCost; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			if threads > 1 {
				fillSliceParallel(ctx, mem, pass, slice, threads)
				continue
			}
			for lane := uint32(0); lane < lanes; lane++ {
				fillSegment(ctx, position{pass: pass, lane: lane, slice: slice}, mem)
			}
		}

		if log != nil {
			log.Debug("argon2 pass complete", "pass", pass)
			for i := 0; i < mem.Len(); i++ {
				log.Debug("argon2 block", "pass", pass, "block", i, "word0", mem.blocks[i][0])
			}
		}
	}
}

// dataIndependent reports whether the segment at pos uses the
// counter-driven address stream rather than memory contents.
func dataIndependent(v Variant, pos position) bool {
	switch v {
	case Argon2i:
		return true
	case Argon2id:
		return pos.pass == 0 && pos.slice < syncPoints/2
	}
	return false
}

// fillSegment computes the blocks of one (pass, slice, lane) segment.
func fillSegment(ctx *Context, pos position, mem *Memory) {
	var zeroBlock, inputBlock, addressBlock Block

	independent := dataIndependent(ctx.config.Variant, pos)
	if independent {
		inputBlock[0] = uint64(pos.pass)
		inputBlock[1] = uint64(pos.lane)
		inputBlock[2] = uint64(pos.slice)
		inputBlock[3] = uint64(ctx.memoryBlocks)
		inputBlock[4] = uint64(ctx.config.TimeCost)
		inputBlock[5] = uint64(ctx.config.Variant)
	}

	startingIndex := uint32(0)
	if pos.pass == 0 && pos.slice == 0 {
		// Blocks 0 and 1 come from H0.
		startingIndex = 2
		if independent {
			nextAddresses(&addressBlock, &inputBlock, &zeroBlock)
		}
	}

	laneLength := ctx.laneLength
	currOffset := pos.lane*laneLength + pos.slice*ctx.segmentLength + startingIndex
	prevOffset := currOffset - 1
	if currOffset%laneLength == 0 {
		prevOffset = currOffset + laneLength - 1
	}

	withXor := ctx.config.Version != Version10 && pos.pass > 0

	for i := startingIndex; i < ctx.segmentLength; i, currOffset, prevOffset = i+1, currOffset+1, prevOffset+1 {
		if currOffset%laneLength == 1 {
			prevOffset = currOffset - 1
		}

		var pseudoRand uint64
		if independent {
			if i%addressesInBlock == 0 {
				nextAddresses(&addressBlock, &inputBlock, &zeroBlock)
			}
			pseudoRand = addressBlock[i%addressesInBlock]
		} else {
			pseudoRand = mem.Block(prevOffset)[0]
		}

		refLane := pos.lane
		if pos.pass != 0 || pos.slice != 0 {
			refLane = uint32((pseudoRand >> 32) % uint64(ctx.config.Lanes))
		}

		pos.index = i
		refIndex := indexAlpha(ctx, pos, uint32(pseudoRand), refLane == pos.lane)
		ref := mem.Block(refLane*laneLength + refIndex)

		fillBlock(mem.Block(prevOffset), ref, mem.Block(currOffset), withXor)
	}
}

// indexAlpha maps the low half of a pseudo-random word to a block
// offset within the reference lane. The candidate area never contains a
// block that has not been written yet, nor the block just before the
// current one, and the mapping favors recently written blocks.
func indexAlpha(ctx *Context, pos position, pseudoRand uint32, sameLane bool) uint32 {
	segmentLength := ctx.segmentLength
	laneLength := ctx.laneLength

	var area uint32
	if pos.pass == 0 {
		switch {
		case pos.slice == 0:
			area = pos.index - 1
		case sameLane:
			area = pos.slice*segmentLength + pos.index - 1
		case pos.index == 0:
			area = pos.slice*segmentLength - 1
		default:
			area = pos.slice * segmentLength
		}
	} else {
		switch {
		case sameLane:
			area = laneLength - segmentLength + pos.index - 1
		case pos.index == 0:
			area = laneLength - segmentLength - 1
		default:
			area = laneLength - segmentLength
		}
	}

	x := uint64(pseudoRand)
	x = x * x >> 32
	relative := uint64(area) - 1 - (uint64(area) * x >> 32)

	var start uint32
	if pos.pass != 0 && pos.slice != syncPoints-1 {
		start = (pos.slice + 1) * segmentLength
	}

	return uint32((uint64(start) + relative) % uint64(laneLength))
}

// fillBlock is the compression function G. It sets next to
// P(ref^prev) ^ ref ^ prev, additionally XORed with the old contents of
// next when withXor is set. next may alias ref.
func fillBlock(prev, ref, next *Block, withXor bool) {
	var r, tmp Block

	r = *ref
	r.XOR(prev)
	tmp = r
	if withXor {
		tmp.XOR(next)
	}

	var v [16]uint64

	// Rows: eight runs of 16 consecutive words.
	for i := 0; i < 8; i++ {
		copy(v[:], r[16*i:16*i+16])
		p(&v)
		copy(r[16*i:16*i+16], v[:])
	}

	// Columns: word pairs 2i, 2i+1 taken from each of the eight rows.
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			v[2*j] = r[2*i+16*j]
			v[2*j+1] = r[2*i+16*j+1]
		}
		p(&v)
		for j := 0; j < 8; j++ {
			r[2*i+16*j] = v[2*j]
			r[2*i+16*j+1] = v[2*j+1]
		}
	}

	tmp.XOR(&r)
	*next = tmp
}

// nextAddresses advances the counter in input and refills address with
// 128 fresh reference words: address = G(0, G(0, input)).
func nextAddresses(address, input, zero *Block) {
	input[6]++
	fillBlock(zero, input, address, false)
	fillBlock(zero, address, address, false)
}

// p is the BLAKE2b round function with the additions replaced by fBlaMka.
func p(v *[16]uint64) {
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}

func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = rotr64(d^a, 32)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 24)
	a = fBlaMka(a, b)
	d = rotr64(d^a, 16)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 63)
	return a, b, c, d
}

// fBlaMka returns x + y + 2*lo32(x)*lo32(y) mod 2^64.
func fBlaMka(x, y uint64) uint64 {
	xy := uint64(uint32(x)) * uint64(uint32(y))
	return x + y + xy + xy
}

func rotr64(w uint64, c int) uint64 {
	return bits.RotateLeft64(w, -c)
}

// finalize XORs the last block of every lane together and hashes the
// result down to the tag length.
func finalize(ctx *Context, mem *Memory, log *slog.Logger) []byte {
	last := ctx.laneLength - 1

	blockHash := mem.BlockAt(0, last).Clone()
	for lane := uint32(1); lane < ctx.config.Lanes; lane++ {
		blockHash.XOR(mem.BlockAt(lane, last))
	}

	b := blockHash.Bytes()
	out := make([]byte, ctx.config.HashLength)
	blake2bLong(out, b)

	clear(b)
	blockHash.Zero()

	if log != nil {
		log.Debug("argon2 tag", "tag", hex.EncodeToString(out))
	}
	return out
}

// blake2bLong is the variable-length hash H'. It fills out with
// H'(in); len(out) must be non-zero.
func blake2bLong(out, in []byte) {
	if len(out) <= blake2b.Size {
		h, err := blake2b.New(&blake2b.Config{Size: uint8(len(out))})
		if err != nil {
			panic("argon2: internal error: " + err.Error())
		}
		write32(h, uint32(len(out)))
		h.Write(in)
		h.Sum(out[:0])
		return
	}

	var buf [blake2b.Size]byte
	h := blake2b.New512()
	write32(h, uint32(len(out)))
	h.Write(in)
	h.Sum(buf[:0])
	copy(out, buf[:32])

	n := 32
	for ; len(out)-n > blake2b.Size; n += 32 {
		h.Reset()
		h.Write(buf[:])
		h.Sum(buf[:0])
		copy(out[n:], buf[:32])
	}

	h, err := blake2b.New(&blake2b.Config{Size: uint8(len(out) - n)})
	if err != nil {
		panic("argon2: internal error: " + err.Error())
	}
	h.Write(buf[:])
	h.Sum(out[n:n])
}

func write32(h hash.Hash, v uint32) (n int, err error) {
	var b [4]byte
	put32(b[:], v)
	return h.Write(b[:])
}

func put32(b []byte, v uint32) {
	b[0] = uint8(v)
	b[1] = uint8(v >> 8)
	b[2] = uint8(v >> 16)
	b[3] = uint8(v >> 24)
}
