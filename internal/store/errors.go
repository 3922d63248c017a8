package store

import "errors"

// Sentinel errors returned by [VaultFileStorage] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrVaultFileNotFound is returned when no file exists at the vault path.
	ErrVaultFileNotFound = errors.New("vault file not found")

	// ErrVaultPathIsDir is returned when the vault path names a directory.
	ErrVaultPathIsDir = errors.New("vault path is a directory")

	// ErrVaultFileTooLarge is returned when the file exceeds the size any
	// real export could have.
	ErrVaultFileTooLarge = errors.New("vault file is too large")

	// ErrReadingVaultFile wraps every other I/O failure.
	ErrReadingVaultFile = errors.New("error reading vault file")
)
