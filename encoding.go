package argon

import (
	"encoding/base64"
	"strconv"
	"strings"
)

var b64 = base64.RawStdEncoding.Strict()

// Decoded holds the fields of an encoded hash string.
type Decoded struct {
	Variant     Variant
	Version     Version
	MemCost     uint32
	TimeCost    uint32
	Parallelism uint32
	Salt        []byte
	Hash        []byte
}

// EncodeString formats hash in the canonical form
//
//	$argon2id$v=19$m=65536,t=2,p=1$<salt>$<hash>
//
// with salt and hash in unpadded standard base64.
func EncodeString(ctx *Context, hash []byte) string {
	c := &ctx.config

	var sb strings.Builder
	sb.Grow(EncodedLen(c.Variant, c.MemCost, c.TimeCost, c.Lanes, uint32(len(ctx.salt)), uint32(len(hash))))
	sb.WriteString("$")
	sb.WriteString(c.Variant.String())
	sb.WriteString("$v=")
	sb.WriteString(c.Version.String())
	sb.WriteString("$m=")
	sb.WriteString(itoa(uint64(c.MemCost)))
	sb.WriteString(",t=")
	sb.WriteString(itoa(uint64(c.TimeCost)))
	sb.WriteString(",p=")
	sb.WriteString(itoa(uint64(c.Lanes)))
	sb.WriteString("$")
	sb.WriteString(b64.EncodeToString(ctx.salt))
	sb.WriteString("$")
	sb.WriteString(b64.EncodeToString(hash))
	return sb.String()
}

// DecodeString parses an encoded hash. The five-field form without a
// version ("$argon2i$m=..,t=..,p=..$salt$hash") decodes as Version10.
// Any malformed input yields ErrDecodingFail and no partial result.
func DecodeString(encoded string) (*Decoded, error) {
	items := strings.Split(encoded, "$")

	d := Decoded{Version: Version10}
	switch len(items) {
	case 6:
		v, ok := decodeVersion(items[2])
		if !ok {
			return nil, ErrDecodingFail
		}
		d.Version = v
		items = append(items[:2], items[3:]...)
	case 5:
	default:
		return nil, ErrDecodingFail
	}

	if items[0] != "" {
		return nil, ErrDecodingFail
	}

	var err error
	if d.Variant, err = ParseVariant(items[1]); err != nil {
		return nil, ErrDecodingFail
	}

	opts := strings.Split(items[2], ",")
	if len(opts) != 3 {
		return nil, ErrDecodingFail
	}
	var ok bool
	if d.MemCost, ok = decodeOption(opts[0], "m"); !ok {
		return nil, ErrDecodingFail
	}
	if d.TimeCost, ok = decodeOption(opts[1], "t"); !ok {
		return nil, ErrDecodingFail
	}
	if d.Parallelism, ok = decodeOption(opts[2], "p"); !ok {
		return nil, ErrDecodingFail
	}

	if d.Salt, err = b64.DecodeString(items[3]); err != nil {
		return nil, ErrDecodingFail
	}
	if d.Hash, err = b64.DecodeString(items[4]); err != nil {
		return nil, ErrDecodingFail
	}
	return &d, nil
}

func decodeVersion(s string) (Version, bool) {
	key, val, ok := strings.Cut(s, "=")
	if !ok || key != "v" {
		return 0, false
	}
	v, err := ParseVersion(val)
	return v, err == nil
}

func decodeOption(s, name string) (uint32, bool) {
	key, val, ok := strings.Cut(s, "=")
	if !ok || key != name {
		return 0, false
	}
	n, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// EncodedLen returns the length of the string HashEncoded produces for
// the given parameters.
func EncodedLen(variant Variant, memCost, timeCost, parallelism, saltLen, hashLen uint32) int {
	return len("$$v=$m=,t=,p=$$") +
		len(variant.String()) +
		numLen(uint32(Version13)) +
		numLen(memCost) +
		numLen(timeCost) +
		numLen(parallelism) +
		base64Len(saltLen) +
		base64Len(hashLen)
}

// base64Len returns the length of n bytes in unpadded base64.
func base64Len(n uint32) int {
	olen := int(n/3) << 2
	switch n % 3 {
	case 2:
		return olen + 3
	case 1:
		return olen + 2
	}
	return olen
}

// numLen returns the number of decimal digits in n.
func numLen(n uint32) int {
	l := 1
	for n >= 10 {
		l++
		n /= 10
	}
	return l
}

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}
