// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"github.com/MKhiriev/aegis-totp/models"
)

// UnlockVault runs the whole pipeline on the raw file contents: parse, check
// the backup version, unlock the master key from a password slot, decrypt the
// database and check its version. The master key is wiped before returning.
//
// An unsupported backup version is rejected before any key derivation.
func UnlockVault(raw, password []byte) (*models.Database, error) {
	backup, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if backup.Version != models.SupportedBackupVersion {
		return nil, fmt.Errorf("%w: backup version %d", ErrUnsupportedVersion, backup.Version)
	}

	masterKey, err := UnlockMasterKey(password, backup.Header.Slots)
	if err != nil {
		return nil, err
	}
	defer masterKey.Destroy()

	db, err := DecryptDatabase(masterKey.Bytes(), backup.Header.Params, backup.DB)
	if err != nil {
		return nil, err
	}
	if db.Version != models.SupportedDatabaseVersion {
		return nil, fmt.Errorf("%w: database version %d", ErrUnsupportedVersion, db.Version)
	}

	return db, nil
}
