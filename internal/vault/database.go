// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/models"
	"github.com/google/uuid"
)

type databaseJSON struct {
	Version *int         `json:"version"`
	Entries *[]entryJSON `json:"entries"`
}

type entryJSON struct {
	Type     *models.EntryType `json:"type"`
	UUID     *uuid.UUID        `json:"uuid"`
	Name     *string           `json:"name"`
	Issuer   *string           `json:"issuer"`
	Note     string            `json:"note"`
	Favorite bool              `json:"favorite"`
	Groups   []string          `json:"groups"`
	Info     *entryInfoJSON    `json:"info"`
}

type entryInfoJSON struct {
	Secret  *string          `json:"secret"`
	Algo    models.Algorithm `json:"algo"`
	Digits  *int             `json:"digits"`
	Period  *int             `json:"period"`
	Counter *uint64          `json:"counter"`
}

// DecryptDatabase authenticates and decrypts the database blob with the
// unlocked master key. blob is the base64-decoded db field; params.Tag is
// appended to it before AES-GCM verification.
//
// A tag mismatch is [ErrDatabaseAuthenticationFailed]. Bad nonce/tag sizes,
// invalid UTF-8 and schema violations are [ErrMalformedVault]. The database
// version is not checked here.
func DecryptDatabase(masterKey []byte, params models.CipherParams, blob []byte) (*models.Database, error) {
	plain, err := crypto.OpenDetached(masterKey, params.Nonce, blob, params.Tag)
	switch {
	case err == nil:
	case errors.Is(err, crypto.ErrAuthentication):
		return nil, ErrDatabaseAuthenticationFailed
	default:
		return nil, fmt.Errorf("%w: %w", ErrMalformedVault, err)
	}
	defer crypto.Wipe(plain)

	if !utf8.Valid(plain) {
		return nil, malformed("database is not valid UTF-8")
	}

	var doc databaseJSON
	if err := json.Unmarshal(plain, &doc); err != nil {
		return nil, fmt.Errorf("%w: database: %w", ErrMalformedVault, err)
	}
	if doc.Version == nil {
		return nil, malformed("database: missing version")
	}
	if doc.Entries == nil {
		return nil, malformed("database: missing entries")
	}

	entries := make([]models.Entry, 0, len(*doc.Entries))
	for i, e := range *doc.Entries {
		entry, err := parseEntry(e)
		if err != nil {
			return nil, malformed("database: entry %d: %v", i, err)
		}
		entries = append(entries, entry)
	}

	return &models.Database{Version: *doc.Version, Entries: entries}, nil
}

// parseEntry checks the fields every entry carries plus the ones its type
// depends on: period for TOTP, counter for HOTP.
func parseEntry(e entryJSON) (models.Entry, error) {
	switch {
	case e.Type == nil:
		return models.Entry{}, fmt.Errorf("missing type")
	case e.UUID == nil:
		return models.Entry{}, fmt.Errorf("missing uuid")
	case e.Name == nil:
		return models.Entry{}, fmt.Errorf("missing name")
	case e.Issuer == nil:
		return models.Entry{}, fmt.Errorf("missing issuer")
	case e.Info == nil:
		return models.Entry{}, fmt.Errorf("missing info")
	case e.Info.Secret == nil:
		return models.Entry{}, fmt.Errorf("info: missing secret")
	case e.Info.Digits == nil:
		return models.Entry{}, fmt.Errorf("info: missing digits")
	case *e.Type == models.TOTP && e.Info.Period == nil:
		return models.Entry{}, fmt.Errorf("totp info: missing period")
	case *e.Type == models.HOTP && e.Info.Counter == nil:
		return models.Entry{}, fmt.Errorf("hotp info: missing counter")
	}

	info := models.EntryInfo{
		Secret:  *e.Info.Secret,
		Algo:    e.Info.Algo,
		Digits:  *e.Info.Digits,
		Counter: e.Info.Counter,
	}
	if e.Info.Period != nil {
		info.Period = *e.Info.Period
	}

	return models.Entry{
		Type:     *e.Type,
		UUID:     *e.UUID,
		Name:     *e.Name,
		Issuer:   *e.Issuer,
		Note:     e.Note,
		Favorite: e.Favorite,
		Groups:   e.Groups,
		Info:     info,
	}, nil
}
