// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vaulttest builds encrypted vault files for tests.
package vaulttest

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/models"
	"github.com/google/uuid"
)

// FastKDF keeps scrypt cheap so that tests stay quick.
var FastKDF = models.KDFParams{N: 1 << 10, R: 8, P: 1}

// Builder assembles a vault. Zero values give a valid version 1 vault
// with one password slot per entry of Passwords.
type Builder struct {
	// Passwords gets one password slot each, in order.
	Passwords []string
	// KDF overrides FastKDF. The salt is random per slot when empty.
	KDF *models.KDFParams
	// BackupVersion defaults to 1.
	BackupVersion int
	// RawSlots prepends this many raw slots that wrap garbage.
	RawSlots int
	// Database is marshalled as the plaintext when Plaintext is nil.
	Database models.Database
	// Plaintext overrides the marshalled database.
	Plaintext []byte
	// TamperDB flips a bit in the database tag.
	TamperDB bool
}

type paramsJSON struct {
	Nonce string `json:"nonce"`
	Tag   string `json:"tag"`
}

type slotJSON struct {
	Type      int        `json:"type"`
	UUID      string     `json:"uuid"`
	Key       string     `json:"key"`
	KeyParams paramsJSON `json:"key_params"`
	N         *uint64    `json:"n,omitempty"`
	R         *uint32    `json:"r,omitempty"`
	P         *uint32    `json:"p,omitempty"`
	Salt      *string    `json:"salt,omitempty"`
	Repaired  *bool      `json:"repaired,omitempty"`
	IsBackup  *bool      `json:"is_backup,omitempty"`
}

type backupJSON struct {
	Version int `json:"version"`
	Header  struct {
		Slots  []slotJSON `json:"slots"`
		Params paramsJSON `json:"params"`
	} `json:"header"`
	DB string `json:"db"`
}

// Build encrypts the database and returns the vault file contents.
func (b Builder) Build() ([]byte, error) {
	masterKey, err := crypto.NewKey()
	if err != nil {
		return nil, err
	}
	defer masterKey.Destroy()

	var doc backupJSON
	doc.Version = b.BackupVersion
	if doc.Version == 0 {
		doc.Version = models.SupportedBackupVersion
	}
	doc.Header.Slots = []slotJSON{}

	for i := 0; i < b.RawSlots; i++ {
		slot, err := rawSlot()
		if err != nil {
			return nil, err
		}
		doc.Header.Slots = append(doc.Header.Slots, slot)
	}
	for _, password := range b.Passwords {
		slot, err := b.passwordSlot(password, masterKey.Bytes())
		if err != nil {
			return nil, err
		}
		doc.Header.Slots = append(doc.Header.Slots, slot)
	}

	plaintext := b.Plaintext
	if plaintext == nil {
		db := b.Database
		if db.Version == 0 {
			db.Version = models.SupportedDatabaseVersion
		}
		if db.Entries == nil {
			db.Entries = []models.Entry{}
		}
		if plaintext, err = json.Marshal(db); err != nil {
			return nil, fmt.Errorf("marshal database: %w", err)
		}
	}

	nonce, err := crypto.NewNonce()
	if err != nil {
		return nil, err
	}
	ct, tag, err := crypto.SealDetached(masterKey.Bytes(), nonce, plaintext)
	if err != nil {
		return nil, err
	}
	if b.TamperDB {
		tag[0] ^= 0x01
	}

	doc.Header.Params = paramsJSON{Nonce: hex.EncodeToString(nonce), Tag: hex.EncodeToString(tag)}
	doc.DB = base64.RawStdEncoding.EncodeToString(ct)

	return json.Marshal(doc)
}

// MustBuild is Build that panics on error.
func (b Builder) MustBuild() []byte {
	raw, err := b.Build()
	if err != nil {
		panic(err)
	}
	return raw
}

func (b Builder) passwordSlot(password string, masterKey []byte) (slotJSON, error) {
	params := FastKDF
	if b.KDF != nil {
		params = *b.KDF
	}
	if len(params.Salt) == 0 {
		salt, err := crypto.NewKey()
		if err != nil {
			return slotJSON{}, err
		}
		params.Salt = append([]byte(nil), salt.Bytes()...)
		salt.Destroy()
	}

	kek, err := crypto.DeriveKey([]byte(password), params)
	if err != nil {
		return slotJSON{}, err
	}
	defer kek.Destroy()

	nonce, err := crypto.NewNonce()
	if err != nil {
		return slotJSON{}, err
	}
	ct, tag, err := crypto.SealDetached(kek.Bytes(), nonce, masterKey)
	if err != nil {
		return slotJSON{}, err
	}

	salt := hex.EncodeToString(params.Salt)
	repaired, isBackup := true, false
	return slotJSON{
		Type:      int(models.SlotPassword),
		UUID:      uuid.NewString(),
		Key:       hex.EncodeToString(ct),
		KeyParams: paramsJSON{Nonce: hex.EncodeToString(nonce), Tag: hex.EncodeToString(tag)},
		N:         &params.N,
		R:         &params.R,
		P:         &params.P,
		Salt:      &salt,
		Repaired:  &repaired,
		IsBackup:  &isBackup,
	}, nil
}

func rawSlot() (slotJSON, error) {
	key, err := crypto.NewKey()
	if err != nil {
		return slotJSON{}, err
	}
	defer key.Destroy()
	nonce, err := crypto.NewNonce()
	if err != nil {
		return slotJSON{}, err
	}
	return slotJSON{
		Type:      int(models.SlotRaw),
		UUID:      uuid.NewString(),
		Key:       hex.EncodeToString(key.Bytes()),
		KeyParams: paramsJSON{Nonce: hex.EncodeToString(nonce), Tag: hex.EncodeToString(make([]byte, crypto.TagSize))},
	}, nil
}

// TOTPEntry returns a TOTP entry with the usual defaults.
func TOTPEntry(issuer, name, secret string) models.Entry {
	return models.Entry{
		Type:   models.TOTP,
		UUID:   uuid.New(),
		Name:   name,
		Issuer: issuer,
		Info: models.EntryInfo{
			Secret: secret,
			Algo:   models.SHA1,
			Digits: 6,
			Period: 30,
		},
	}
}
