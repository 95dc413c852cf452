package argon

import "errors"

// Parameter and decoding errors. Each is a distinct outcome; compare with
// errors.Is.
var (
	ErrOutputTooShort = errors.New("argon2: output too short")
	ErrOutputTooLong  = errors.New("argon2: output too long")

	ErrPwdTooShort = errors.New("argon2: password too short")
	ErrPwdTooLong  = errors.New("argon2: password too long")

	ErrSaltTooShort = errors.New("argon2: salt too short")
	ErrSaltTooLong  = errors.New("argon2: salt too long")

	ErrAdTooShort = errors.New("argon2: associated data too short")
	ErrAdTooLong  = errors.New("argon2: associated data too long")

	ErrSecretTooShort = errors.New("argon2: secret too short")
	ErrSecretTooLong  = errors.New("argon2: secret too long")

	ErrTimeTooSmall = errors.New("argon2: time cost too small")
	ErrTimeTooLarge = errors.New("argon2: time cost too large")

	ErrMemoryTooLittle = errors.New("argon2: memory cost too small")
	ErrMemoryTooMuch   = errors.New("argon2: memory cost too large")

	ErrLanesTooFew  = errors.New("argon2: too few lanes")
	ErrLanesTooMany = errors.New("argon2: too many lanes")

	ErrIncorrectType    = errors.New("argon2: incorrect variant")
	ErrIncorrectVersion = errors.New("argon2: incorrect version")

	ErrDecodingFail = errors.New("argon2: decoding failed")
)
