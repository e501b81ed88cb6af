package group

import "errors"

var (
	// ErrInvalidEncoding is returned when a 32-byte string is not a
	// canonical Ristretto255 scalar or point encoding.
	ErrInvalidEncoding = errors.New("group: invalid canonical encoding")

	// ErrInvalidLength is returned when an input is not exactly 32 (or,
	// for wide reduction, 64) bytes.
	ErrInvalidLength = errors.New("group: invalid input length")

	// ErrRandomSource is returned when the CSPRNG fails to produce
	// nonces. Treated as fatal for the proof in progress.
	ErrRandomSource = errors.New("group: random source failed")
)
