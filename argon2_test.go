package argon

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFBlaMka(t *testing.T) {
	require.Equal(t, uint64(0), fBlaMka(0, 0))
	require.Equal(t, uint64(4), fBlaMka(1, 1))
	require.Equal(t, uint64(0xFFFFFFFE00000000), fBlaMka(0xFFFFFFFF, 0xFFFFFFFF))

	// High halves only contribute to the sum, which wraps.
	require.Equal(t, uint64(0), fBlaMka(1<<63, 1<<63))
}

func TestRotr64(t *testing.T) {
	require.Equal(t, uint64(9920249030613615975), rotr64(0x0123456789abcdef, 32))
	require.Equal(t, uint64(0x8000000000000000), rotr64(1, 1))
	require.Equal(t, uint64(2), rotr64(1, 63))
}

func TestG(t *testing.T) {
	a, b, c, d := g(0, 0, 0, 0)
	require.Equal(t, [4]uint64{}, [4]uint64{a, b, c, d})

	a, b, c, d = g(1, 2, 3, 4)
	require.NotEqual(t, [4]uint64{1, 2, 3, 4}, [4]uint64{a, b, c, d})
}

func TestFillBlock(t *testing.T) {
	var zero, next Block
	fillBlock(&zero, &zero, &next, false)
	require.Equal(t, Block{}, next)

	// With zero inputs the permutation is the identity on zero, so the
	// XOR mode must leave next unchanged.
	for i := range next {
		next[i] = uint64(i) * 0x9E3779B97F4A7C15
	}
	want := next
	fillBlock(&zero, &zero, &next, true)
	require.Equal(t, want, next)

	var prev, ref Block
	prev[0], ref[5] = 1, 7
	var a, b Block
	fillBlock(&prev, &ref, &a, false)
	fillBlock(&ref, &prev, &b, false)
	require.Equal(t, a, b, "G depends only on prev^ref")
	require.NotEqual(t, Block{}, a)
}

func TestNextAddresses(t *testing.T) {
	var zero, input, address Block
	input[0], input[5] = 0, uint64(Argon2i)

	nextAddresses(&address, &input, &zero)
	require.Equal(t, uint64(1), input[6])
	first := address

	var tmp Block
	fillBlock(&zero, &input, &tmp, false)
	fillBlock(&zero, tmp.Clone(), &tmp, false)
	require.Equal(t, tmp, first)

	nextAddresses(&address, &input, &zero)
	require.Equal(t, uint64(2), input[6])
	require.NotEqual(t, first, address)
}

func TestIndexAlpha(t *testing.T) {
	config := DefaultConfig()
	config.MemCost = 8
	ctx, err := NewContext(config, nil, []byte("somesalt"))
	require.NoError(t, err)
	require.Equal(t, uint32(2), ctx.segmentLength)
	require.Equal(t, uint32(8), ctx.laneLength)

	tests := []struct {
		name string
		pos  position
		rand uint32
		want uint32
	}{
		{"first segment", position{pass: 0, slice: 0, index: 2}, 0xFFFFFFFF, 0},
		{"later pass low rand", position{pass: 1, slice: 0, index: 0}, 0, 6},
		{"later pass high rand", position{pass: 1, slice: 0, index: 0}, 0xFFFFFFFF, 2},
		{"later pass last slice", position{pass: 1, slice: 3, index: 0}, 0, 4},
		{"first pass same lane", position{pass: 0, slice: 2, index: 1}, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, indexAlpha(ctx, tt.pos, tt.rand, true))
		})
	}
}

func TestBlake2bLong(t *testing.T) {
	in := []byte("argon2 variable length hash")

	for _, n := range []int{4, 32, 63, 64} {
		out := make([]byte, n)
		blake2bLong(out, in)

		h, err := blake2b.New(n, nil)
		require.NoError(t, err)
		var l [4]byte
		put32(l[:], uint32(n))
		h.Write(l[:])
		h.Write(in)
		require.Equal(t, h.Sum(nil), out, "n=%d", n)
	}

	// Longer outputs chain 64-byte digests and keep 32 bytes of each;
	// the last digest is sized to what remains.
	out := make([]byte, 100)
	blake2bLong(out, in)

	var l [4]byte
	put32(l[:], 100)
	v1 := blake2b.Sum512(append(l[:], in...))
	require.Equal(t, v1[:32], out[:32])

	v2 := blake2b.Sum512(v1[:])
	require.Equal(t, v2[:32], out[32:64])

	h, err := blake2b.New(36, nil)
	require.NoError(t, err)
	h.Write(v2[:])
	require.Equal(t, h.Sum(nil), out[64:])
}

func rfcContext(t *testing.T, variant Variant, version Version) *Context {
	t.Helper()
	config := Config{
		Ad:         bytes.Repeat([]byte{4}, 12),
		HashLength: 32,
		Lanes:      4,
		MemCost:    32,
		Secret:     bytes.Repeat([]byte{3}, 8),
		TimeCost:   3,
		Variant:    variant,
		Version:    version,
	}
	ctx, err := NewContext(config, bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 16))
	require.NoError(t, err)
	return ctx
}

// Test vectors of RFC 9106 section 5, and of the revision 1.0
// reference implementation for the same inputs.
var rfcVectors = []struct {
	variant Variant
	version Version
	tag     string
}{
	{Argon2d, Version13, "512b391b6f1162975371d30919734294f868e3be3984f3c1a13a4db9fabe4acb"},
	{Argon2i, Version13, "c814d9d1dc7f37aa13f0d77f2494bda1c8de6b016dd388d29952a4c4672b6ce8"},
	{Argon2id, Version13, "0d640df58d78766c08c037a34a8b53c9d01ef0452d75b65eb52520e96b01e659"},
	{Argon2d, Version10, "96a9d4e5a1734092c85e29f410a45914a5dd1f5cbf08b2670da68a0285abf32b"},
	{Argon2i, Version10, "87aeedd6517ab830cd9765cd8231abb2e647a5dee08f7c05e02fcb763335d0fd"},
	{Argon2id, Version10, "b64615f07789b66b645b67ee9ed3b377ae350b6bfcbb0fc95141ea8f322613c0"},
}

func TestArgon2(t *testing.T) {
	for _, v := range rfcVectors {
		t.Run(v.variant.Name()+"/v"+v.version.String(), func(t *testing.T) {
			ctx := rfcContext(t, v.variant, v.version)
			require.Equal(t, v.tag, hex.EncodeToString(run(ctx, nil)))
		})
	}
}

func TestArgon2Trace(t *testing.T) {
	ctx := rfcContext(t, Argon2id, Version13)
	got := run(ctx, slogt.New(t))
	require.Equal(t, rfcVectors[2].tag, hex.EncodeToString(got))
}

func TestArgon2Parallel(t *testing.T) {
	for _, v := range rfcVectors {
		t.Run(v.variant.Name()+"/v"+v.version.String(), func(t *testing.T) {
			ctx := rfcContext(t, v.variant, v.version)
			ctx.config.Threads = 3
			require.Equal(t, v.tag, hex.EncodeToString(run(ctx, nil)))
		})
	}
}

func TestInitialize(t *testing.T) {
	ctx := rfcContext(t, Argon2i, Version13)
	mem := NewMemory(ctx.config.Lanes, ctx.laneLength)
	initialize(ctx, mem, nil)

	for lane := uint32(0); lane < ctx.config.Lanes; lane++ {
		require.NotEqual(t, Block{}, *mem.BlockAt(lane, 0))
		require.NotEqual(t, Block{}, *mem.BlockAt(lane, 1))
		require.NotEqual(t, *mem.BlockAt(lane, 0), *mem.BlockAt(lane, 1))
		for i := uint32(2); i < ctx.laneLength; i++ {
			require.Equal(t, Block{}, *mem.BlockAt(lane, i))
		}
	}
}

func TestDeterministic(t *testing.T) {
	config := Config{HashLength: 32, Lanes: 2, MemCost: 64, TimeCost: 2, Variant: Argon2d, Version: Version13}
	a, err := HashRaw([]byte("password"), []byte("somesalt"), config)
	require.NoError(t, err)
	b, err := HashRaw([]byte("password"), []byte("somesalt"), config)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// x/crypto implements Argon2i and Argon2id at version 1.3, so every
// parameter combination it accepts can be checked against it.
func TestAgainstXCrypto(t *testing.T) {
	tests := []struct {
		time, memory uint32
		threads      uint8
		keyLen       uint32
	}{
		{1, 8, 1, 32},
		{1, 64, 1, 4},
		{2, 64, 2, 64},
		{3, 100, 3, 65},
		{2, 256, 4, 100},
		{1, 520, 1, 1024},
	}
	pwd := []byte("correct horse battery staple")
	salt := []byte("NaCl and pepper")

	for _, tt := range tests {
		config := Config{
			HashLength: tt.keyLen,
			Lanes:      uint32(tt.threads),
			MemCost:    tt.memory,
			TimeCost:   tt.time,
			Version:    Version13,
		}

		config.Variant = Argon2i
		got, err := HashRaw(pwd, salt, config)
		require.NoError(t, err)
		require.Equal(t, argon2.Key(pwd, salt, tt.time, tt.memory, tt.threads, tt.keyLen), got, "argon2i %+v", tt)

		config.Variant = Argon2id
		got, err = HashRaw(pwd, salt, config)
		require.NoError(t, err)
		require.Equal(t, argon2.IDKey(pwd, salt, tt.time, tt.memory, tt.threads, tt.keyLen), got, "argon2id %+v", tt)
	}
}

// Vectors from the reference implementation's test suite.
func TestReferenceVectors(t *testing.T) {
	tests := []struct {
		variant Variant
		version Version
		time    uint32
		memory  uint32
		lanes   uint32
		raw     string
		large   bool
	}{
		{Argon2i, Version10, 2, 256, 1, "fd4dd83d762c49bdeaf57c47bdcd0c2f1babf863fdeb490df63ede9975fccf06", false},
		{Argon2i, Version13, 2, 256, 1, "89e9029f4637b295beb027056a7336c414fadd43f6b208645281cb214a56452f", false},
		{Argon2id, Version13, 2, 65536, 1, "09316115d5cf24ed5a15a31a3ba326e5cf32edc24702987c02b6566f61913cf7", true},
		{Argon2d, Version13, 2, 65536, 1, "955e5d5b163a1b60bba35fc36d0496474fba4f6b59ad53628666f07fb2f93eaf", true},
	}
	for _, tt := range tests {
		t.Run(tt.variant.Name()+"/v"+tt.version.String(), func(t *testing.T) {
			if tt.large && testing.Short() {
				t.Skip("64 MiB vector skipped in short mode")
			}
			config := Config{
				HashLength: 32,
				Lanes:      tt.lanes,
				MemCost:    tt.memory,
				TimeCost:   tt.time,
				Variant:    tt.variant,
				Version:    tt.version,
			}
			got, err := HashRaw([]byte("password"), []byte("somesalt"), config)
			require.NoError(t, err)
			require.Equal(t, fromHex(t, tt.raw), got)
		})
	}
}
