// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrKeyDerivation is returned when the scrypt parameters are outside
	// what the primitive accepts. It is never caused by password content.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrAuthentication means the AES-GCM tag did not verify: wrong key or
	// tampered ciphertext. The two cannot be told apart.
	ErrAuthentication = errors.New("message authentication failed")

	// ErrInvalidKeySize indicates a key that is not 32 bytes long.
	ErrInvalidKeySize = errors.New("aes-256-gcm requires a 32-byte key")

	// ErrInvalidCipherParams indicates a nonce or tag of the wrong length.
	ErrInvalidCipherParams = errors.New("invalid nonce or tag size")
)
