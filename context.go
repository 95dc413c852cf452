package argon

// syncPoints is the number of slices per lane per pass.
const syncPoints = 4

const (
	minLanes = 1
	maxLanes = 0xFFFFFF

	minMemory = 2 * syncPoints
	maxMemory = 0xFFFFFFFF

	minTime = 1
	maxTime = 0xFFFFFFFF

	minPwdLength    = 0
	maxPwdLength    = 0xFFFFFFFF
	minSaltLength   = 8
	maxSaltLength   = 0xFFFFFFFF
	minSecretLength = 0
	maxSecretLength = 0xFFFFFFFF
	minAdLength     = 0
	maxAdLength     = 0xFFFFFFFF
	minHashLength   = 4
	maxHashLength   = 0xFFFFFFFF
)

// A Context is a validated Config bound to one password and salt,
// together with the memory layout derived from it. The only way to
// obtain one is NewContext, which refuses invalid parameters.
type Context struct {
	config Config
	pwd    []byte
	salt   []byte

	memoryBlocks  uint32
	segmentLength uint32
	laneLength    uint32
}

// NewContext validates config, pwd and salt and derives the memory
// layout. Checks run in a fixed order and the first failure is
// returned. pwd and salt are referenced, not copied; they must not
// change until the hash is computed.
func NewContext(config Config, pwd, salt []byte) (*Context, error) {
	lanes := config.Lanes
	switch {
	case lanes < minLanes:
		return nil, ErrLanesTooFew
	case lanes > maxLanes:
		return nil, ErrLanesTooMany
	}

	switch {
	case config.MemCost < minMemory:
		return nil, ErrMemoryTooLittle
	case uint64(config.MemCost) > maxMemory:
		return nil, ErrMemoryTooMuch
	case config.MemCost < 8*lanes:
		return nil, ErrMemoryTooLittle
	}

	switch {
	case config.TimeCost < minTime:
		return nil, ErrTimeTooSmall
	case uint64(config.TimeCost) > maxTime:
		return nil, ErrTimeTooLarge
	}

	if err := checkLength(len(pwd), minPwdLength, maxPwdLength, ErrPwdTooShort, ErrPwdTooLong); err != nil {
		return nil, err
	}
	if err := checkLength(len(salt), minSaltLength, maxSaltLength, ErrSaltTooShort, ErrSaltTooLong); err != nil {
		return nil, err
	}
	if err := checkLength(len(config.Secret), minSecretLength, maxSecretLength, ErrSecretTooShort, ErrSecretTooLong); err != nil {
		return nil, err
	}
	if err := checkLength(len(config.Ad), minAdLength, maxAdLength, ErrAdTooShort, ErrAdTooLong); err != nil {
		return nil, err
	}

	switch {
	case config.HashLength < minHashLength:
		return nil, ErrOutputTooShort
	case uint64(config.HashLength) > maxHashLength:
		return nil, ErrOutputTooLong
	}

	if !config.Variant.valid() {
		return nil, ErrIncorrectType
	}
	if !config.Version.valid() {
		return nil, ErrIncorrectVersion
	}

	memoryBlocks := max(config.MemCost, 2*syncPoints*lanes)
	segmentLength := memoryBlocks / (lanes * syncPoints)

	return &Context{
		config:        config.clone(),
		pwd:           pwd,
		salt:          salt,
		memoryBlocks:  segmentLength * lanes * syncPoints,
		segmentLength: segmentLength,
		laneLength:    segmentLength * syncPoints,
	}, nil
}

func checkLength(n int, lo, hi uint64, tooShort, tooLong error) error {
	switch {
	case uint64(n) < lo:
		return tooShort
	case uint64(n) > hi:
		return tooLong
	}
	return nil
}

// Config returns a copy of the validated configuration.
func (c *Context) Config() Config { return c.config.clone() }

// MemoryBlocks returns the number of blocks actually allocated,
// the memory cost rounded down to a multiple of 4*lanes.
func (c *Context) MemoryBlocks() uint32 { return c.memoryBlocks }

// SegmentLength returns the number of blocks in one segment.
func (c *Context) SegmentLength() uint32 { return c.segmentLength }

// LaneLength returns the number of blocks in one lane.
func (c *Context) LaneLength() uint32 { return c.laneLength }
