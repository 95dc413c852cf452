package argon

// Version is the algorithm revision number.
type Version uint32

const (
	// Version10 is revision 1.0. Later passes overwrite blocks instead
	// of XORing into them.
	Version10 Version = 0x10

	// Version13 is revision 1.3, the one standardized in RFC 9106.
	Version13 Version = 0x13
)

func (v Version) valid() bool {
	return v == Version10 || v == Version13
}

// String returns the decimal form used after "v=" in encoded hashes.
func (v Version) String() string {
	return itoa(uint64(v))
}

// ParseVersion parses the decimal form, "16" or "19".
func ParseVersion(s string) (Version, error) {
	switch s {
	case "16":
		return Version10, nil
	case "19":
		return Version13, nil
	}
	return 0, ErrIncorrectVersion
}

// VersionFromUint32 converts a numeric version.
func VersionFromUint32(x uint32) (Version, error) {
	v := Version(x)
	if !v.valid() {
		return 0, ErrIncorrectVersion
	}
	return v, nil
}
