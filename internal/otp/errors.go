package otp

import "errors"

var (
	// ErrInvalidSecretEncoding means the entry secret is not valid base32.
	ErrInvalidSecretEncoding = errors.New("invalid base32 secret")
	// ErrUnsupportedEntryType is returned for entries that are not TOTP.
	// It is not fatal: callers skip such entries.
	ErrUnsupportedEntryType = errors.New("unsupported entry type")
	// ErrUnsupportedAlgorithm is returned for hash algorithms other than
	// SHA1, SHA256 and SHA512.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
	// ErrInvalidEntryParams covers non-positive periods, digit counts
	// outside 1..10 and negative timestamps.
	ErrInvalidEntryParams = errors.New("invalid otp parameters")
)
