// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
)

var (
	// ErrMalformedVault covers structural problems: bad JSON, missing
	// required fields, wrong types, bad hex/base64/UUID encodings, or a
	// decrypted database that is not valid UTF-8 JSON.
	ErrMalformedVault = errors.New("malformed vault")

	// ErrUnsupportedVersion is returned for a backup version other than 1
	// or a database version other than 2.
	ErrUnsupportedVersion = errors.New("unsupported vault version")

	// ErrKeyDerivation is returned when no password slot had usable scrypt
	// parameters.
	ErrKeyDerivation = crypto.ErrKeyDerivation

	// ErrWrongPasswordOrNoMatchingSlot is returned when the vault has no
	// password slot or none of them authenticates with the given password.
	// A wrong password and a corrupted slot look the same.
	ErrWrongPasswordOrNoMatchingSlot = errors.New("wrong password or no matching password slot")

	// ErrDatabaseAuthenticationFailed is returned when the database does not
	// authenticate under an already unlocked master key. Since the password
	// was proven correct, this points at corruption or tampering.
	ErrDatabaseAuthenticationFailed = errors.New("database authentication failed")
)
