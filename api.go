package argon

import "crypto/subtle"

// HashRaw returns the raw hash of pwd and salt under config.
func HashRaw(pwd, salt []byte, config Config) ([]byte, error) {
	ctx, err := NewContext(config, pwd, salt)
	if err != nil {
		return nil, err
	}
	return run(ctx, nil), nil
}

// HashEncoded returns the hash of pwd and salt under config in the
// canonical string form, suitable for storage and VerifyEncoded.
func HashEncoded(pwd, salt []byte, config Config) (string, error) {
	ctx, err := NewContext(config, pwd, salt)
	if err != nil {
		return "", err
	}
	return EncodeString(ctx, run(ctx, nil)), nil
}

// VerifyEncoded reports whether pwd matches the encoded hash.
// Malformed or unsupported encodings report false.
func VerifyEncoded(encoded string, pwd []byte) bool {
	return VerifyEncodedExt(encoded, pwd, nil, nil)
}

// VerifyEncodedExt is like VerifyEncoded for hashes computed with a
// secret key and associated data, which the encoding does not carry.
func VerifyEncodedExt(encoded string, pwd, secret, ad []byte) bool {
	d, err := DecodeString(encoded)
	if err != nil {
		return false
	}
	config := Config{
		Ad:       ad,
		Lanes:    d.Parallelism,
		MemCost:  d.MemCost,
		Secret:   secret,
		TimeCost: d.TimeCost,
		Variant:  d.Variant,
		Version:  d.Version,
	}
	return VerifyRaw(pwd, d.Salt, d.Hash, config)
}

// VerifyRaw reports whether hash is the hash of pwd and salt under
// config. The output length is taken from len(hash), not from config.
// The comparison takes time independent of where the hashes differ.
func VerifyRaw(pwd, salt, hash []byte, config Config) bool {
	if uint64(len(hash)) > maxHashLength {
		return false
	}
	config.HashLength = uint32(len(hash))
	ctx, err := NewContext(config, pwd, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(run(ctx, nil), hash) == 1
}

// Key derives a keyLen-byte key from password and salt with Argon2id
// version 1.3, using n passes over mem KiB of memory split into par
// lanes.
func Key(password, salt []byte, n, par, mem, keyLen uint32) ([]byte, error) {
	return HashRaw(password, salt, Config{
		HashLength: keyLen,
		Lanes:      par,
		MemCost:    mem,
		TimeCost:   n,
		Variant:    Argon2id,
		Version:    Version13,
	})
}
