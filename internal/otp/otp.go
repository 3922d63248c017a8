// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"
	"time"

	"github.com/MKhiriev/aegis-totp/models"
)

// MaxDigits is the longest code a 31-bit truncated value can fill.
const MaxDigits = 10

var pow10 = [MaxDigits + 1]uint64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

// Code is a generated passcode together with its validity window.
type Code struct {
	// Value is the zero-padded passcode.
	Value string
	// Remaining is the number of seconds the code stays valid, in [1, Period].
	Remaining int
	// Period is the step the code was computed for.
	Period int
}

// CurrentCode returns the TOTP code of entry at now. Non-TOTP entries yield
// [ErrUnsupportedEntryType].
func CurrentCode(entry models.Entry, now time.Time) (Code, error) {
	if entry.Type != models.TOTP {
		return Code{}, fmt.Errorf("%w: %q", ErrUnsupportedEntryType, entry.Type)
	}
	return Generate(entry.Info, now.Unix())
}

// Generate computes the RFC 6238 code for info at the given unix time.
func Generate(info models.EntryInfo, now int64) (Code, error) {
	if info.Period <= 0 {
		return Code{}, fmt.Errorf("%w: period %d", ErrInvalidEntryParams, info.Period)
	}
	if info.Digits < 1 || info.Digits > MaxDigits {
		return Code{}, fmt.Errorf("%w: digits %d", ErrInvalidEntryParams, info.Digits)
	}
	if now < 0 {
		return Code{}, fmt.Errorf("%w: time %d before epoch", ErrInvalidEntryParams, now)
	}

	newHash, err := hashFunc(info.Algo)
	if err != nil {
		return Code{}, err
	}

	key, err := DecodeSecret(info.Secret)
	if err != nil {
		return Code{}, err
	}
	defer clear(key)

	period := int64(info.Period)
	counter := uint64(now / period)

	return Code{
		Value:     HOTP(key, counter, info.Digits, newHash),
		Remaining: RemainingSeconds(info.Period, now),
		Period:    info.Period,
	}, nil
}

// HOTP implements RFC 4226: HMAC over the 8-byte big-endian counter,
// dynamic truncation to 31 bits, reduction modulo 10^digits and left
// zero padding. digits must be in 1..MaxDigits.
func HOTP(key []byte, counter uint64, digits int, newHash func() hash.Hash) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// low nibble of the last byte picks the 4-byte window
	offset := sum[len(sum)-1] & 0x0f
	truncated := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	code := uint64(truncated) % pow10[digits]
	return fmt.Sprintf("%0*d", digits, code)
}

// RemainingSeconds returns period - now mod period, which always lies in
// [1, period] for period > 0 and now >= 0.
func RemainingSeconds(period int, now int64) int {
	return period - int(now%int64(period))
}

// DecodeSecret decodes a base32 secret. Case, spaces and trailing padding
// are ignored. An empty secret is rejected.
func DecodeSecret(secret string) ([]byte, error) {
	s := normalizeSecret(secret)
	if s == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidSecretEncoding)
	}

	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecretEncoding, err)
	}
	return key, nil
}

// normalizeSecret upper-cases secret and strips spaces and padding.
func normalizeSecret(secret string) string {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(secret), " ", ""))
	return strings.TrimRight(s, "=")
}

func hashFunc(algo models.Algorithm) (func() hash.Hash, error) {
	switch models.Algorithm(strings.ToUpper(string(algo))) {
	case models.SHA1, "":
		return sha1.New, nil
	case models.SHA256:
		return sha256.New, nil
	case models.SHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algo)
	}
}

// FilterTOTP returns the TOTP entries of entries in their original order.
func FilterTOTP(entries []models.Entry) []models.Entry {
	out := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type == models.TOTP {
			out = append(out, e)
		}
	}
	return out
}
