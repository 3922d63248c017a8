// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/aegis-totp/models"
	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the length of every derived and wrapped key (AES-256).
	KeySize = 32

	// maxScryptMemory bounds both scrypt buffers: 128*r*N for the ROMix
	// scratch space and 128*r*p for the PBKDF2 block.
	maxScryptMemory = 4 << 30
)

// DeriveKey turns password into a 32-byte key-encryption key with scrypt,
// using N, r, p and salt from params verbatim. The same inputs always yield
// the same key. The returned buffer belongs to the caller, who must Destroy it.
//
// N must be a power of two greater than one (it is stored as the raw cost,
// i.e. 2^cost_log2), r and p must be positive. Any combination scrypt
// rejects is reported as [ErrKeyDerivation].
func DeriveKey(password []byte, params models.KDFParams) (*SecretBuffer, error) {
	if _, ok := params.CostLog2(); !ok {
		return nil, fmt.Errorf("%w: cost N=%d is not a power of two greater than 1", ErrKeyDerivation, params.N)
	}
	if params.R == 0 || params.P == 0 {
		return nil, fmt.Errorf("%w: r=%d p=%d must be positive", ErrKeyDerivation, params.R, params.P)
	}
	if params.N > maxScryptMemory/128/uint64(params.R) {
		return nil, fmt.Errorf("%w: N=%d r=%d exceeds memory limit", ErrKeyDerivation, params.N, params.R)
	}
	if uint64(params.P) > maxScryptMemory/128/uint64(params.R) {
		return nil, fmt.Errorf("%w: r=%d p=%d exceeds memory limit", ErrKeyDerivation, params.R, params.P)
	}

	key, err := scrypt.Key(password, params.Salt, int(params.N), int(params.R), int(params.P), KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}

	return NewSecretBuffer(key), nil
}
