package argon

// Variant selects the addressing discipline.
type Variant uint32

const (
	// Argon2d uses data-dependent addressing. It is the fastest variant
	// but leaks its memory access pattern through timing side channels.
	Argon2d Variant = 0

	// Argon2i uses data-independent addressing and is safe for hashing
	// secrets on shared hardware.
	Argon2i Variant = 1

	// Argon2id runs the first half of the first pass like Argon2i and
	// the rest like Argon2d.
	Argon2id Variant = 2
)

var variantNames = [...]struct{ lower, upper string }{
	Argon2d:  {"argon2d", "Argon2d"},
	Argon2i:  {"argon2i", "Argon2i"},
	Argon2id: {"argon2id", "Argon2id"},
}

func (v Variant) valid() bool {
	return v <= Argon2id
}

// String returns the lowercase name used in encoded hashes.
func (v Variant) String() string {
	if !v.valid() {
		return "Variant(" + itoa(uint64(v)) + ")"
	}
	return variantNames[v].lower
}

// Name returns the capitalized name, e.g. "Argon2id".
func (v Variant) Name() string {
	if !v.valid() {
		return v.String()
	}
	return variantNames[v].upper
}

// ParseVariant accepts either the lowercase or the capitalized name.
func ParseVariant(s string) (Variant, error) {
	for v, n := range variantNames {
		if s == n.lower || s == n.upper {
			return Variant(v), nil
		}
	}
	return 0, ErrIncorrectType
}

// VariantFromUint32 converts the numeric type code used in H0.
func VariantFromUint32(x uint32) (Variant, error) {
	v := Variant(x)
	if !v.valid() {
		return 0, ErrIncorrectType
	}
	return v, nil
}
