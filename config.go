package argon

// Config holds the cost parameters and optional inputs of one hash.
// It is a plain value; NewContext takes a private copy.
type Config struct {
	Ad         []byte // associated data, optional
	HashLength uint32 // output length in bytes
	Lanes      uint32 // degree of parallelism
	MemCost    uint32 // memory in KiB (1 KiB blocks)
	Secret     []byte // secret key, optional
	TimeCost   uint32 // number of passes
	Variant    Variant
	Version    Version

	// Threads bounds how many lanes are filled concurrently.
	// Values below 2 fill sequentially. It does not affect the output.
	Threads int
}

func (c Config) clone() Config {
	c.Ad = append([]byte(nil), c.Ad...)
	c.Secret = append([]byte(nil), c.Secret...)
	return c
}

func preset(memCost, timeCost uint32, variant Variant) Config {
	return Config{
		HashLength: 32,
		Lanes:      1,
		MemCost:    memCost,
		TimeCost:   timeCost,
		Variant:    variant,
		Version:    Version13,
	}
}

// DefaultConfig returns the second OWASP recommendation:
// Argon2id, 19 MiB, 2 passes, 1 lane.
func DefaultConfig() Config { return OWASP2Config() }

// OriginalConfig returns the parameters of the reference command line
// tool: Argon2i, 4 MiB, 3 passes.
func OriginalConfig() Config { return preset(4096, 3, Argon2i) }

// OWASP1Config returns Argon2id, 46 MiB, 1 pass.
func OWASP1Config() Config { return preset(47104, 1, Argon2id) }

// OWASP2Config returns Argon2id, 19 MiB, 2 passes.
func OWASP2Config() Config { return preset(19*1024, 2, Argon2id) }

// OWASP3Config returns Argon2id, 12 MiB, 3 passes.
func OWASP3Config() Config { return preset(12288, 3, Argon2id) }

// OWASP4Config returns Argon2id, 9 MiB, 4 passes.
func OWASP4Config() Config { return preset(9216, 4, Argon2id) }

// OWASP5Config returns Argon2id, 7 MiB, 5 passes.
func OWASP5Config() Config { return preset(7168, 5, Argon2id) }

// RFC9106Config returns the first recommended option of RFC 9106:
// Argon2id, 2 GiB, 1 pass.
func RFC9106Config() Config { return preset(2*1024*1024, 1, Argon2id) }

// RFC9106LowMemConfig returns the second recommended option of RFC 9106
// for memory-constrained environments: Argon2id, 64 MiB, 3 passes.
func RFC9106LowMemConfig() Config { return preset(64*1024, 3, Argon2id) }
