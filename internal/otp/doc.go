// Package otp generates time-based one-time passwords (RFC 6238) for
// decrypted vault entries. Only TOTP entries are supported; other entry
// types are reported with ErrUnsupportedEntryType and should be skipped.
package otp
