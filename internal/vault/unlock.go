// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/models"
)

// UnlockMasterKey tries every password slot in listed order and returns the
// master key unwrapped by the first slot whose tag verifies. The derived key
// of each attempt is wiped before the next one starts.
//
// Non-password slots are ignored. When no slot authenticates (or there is no
// password slot at all) the result is [ErrWrongPasswordOrNoMatchingSlot].
// If no slot could even be attempted because of bad scrypt parameters or a
// malformed nonce/tag, that cause is returned instead.
//
// The caller owns the returned buffer and must Destroy it.
func UnlockMasterKey(password []byte, slots []models.Slot) (*crypto.SecretBuffer, error) {
	var (
		attempted    int
		kdfErrs      error
		malformedErr error
	)

	for _, slot := range models.PasswordSlots(slots) {
		masterKey, err := unlockSlot(password, slot)
		switch {
		case err == nil:
			return masterKey, nil
		case errors.Is(err, crypto.ErrAuthentication):
			attempted++
		case errors.Is(err, crypto.ErrKeyDerivation):
			kdfErrs = errors.Join(kdfErrs, fmt.Errorf("slot %s: %w", slot.UUID, err))
		case errors.Is(err, ErrMalformedVault):
			// an authenticated key of the wrong size is not worth retrying
			if errors.Is(err, errBadMasterKeySize) {
				return nil, err
			}
			malformedErr = errors.Join(malformedErr, fmt.Errorf("slot %s: %w", slot.UUID, err))
		default:
			return nil, err
		}
	}

	if attempted == 0 {
		if kdfErrs != nil {
			return nil, kdfErrs
		}
		if malformedErr != nil {
			return nil, malformedErr
		}
	}
	return nil, ErrWrongPasswordOrNoMatchingSlot
}

var errBadMasterKeySize = errors.New("unwrapped master key has wrong size")

func unlockSlot(password []byte, slot models.Slot) (*crypto.SecretBuffer, error) {
	if slot.KDF == nil {
		return nil, malformed("password slot without kdf parameters")
	}

	kek, err := crypto.DeriveKey(password, *slot.KDF)
	if err != nil {
		return nil, err
	}
	defer kek.Destroy()

	plain, err := crypto.OpenDetached(kek.Bytes(), slot.KeyParams.Nonce, slot.Key, slot.KeyParams.Tag)
	switch {
	case err == nil:
	case errors.Is(err, crypto.ErrInvalidCipherParams):
		return nil, fmt.Errorf("%w: %w", ErrMalformedVault, err)
	default:
		return nil, err
	}

	if len(plain) != crypto.KeySize {
		crypto.Wipe(plain)
		return nil, fmt.Errorf("%w: %w: %d bytes", ErrMalformedVault, errBadMasterKeySize, len(plain))
	}

	return crypto.NewSecretBuffer(plain), nil
}
