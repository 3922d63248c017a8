// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/aegis-totp/models"
	"github.com/google/uuid"
)

// The *JSON types mirror the file layout with pointer fields, so that a
// missing field can be told apart from a zero value.

type backupJSON struct {
	Version *int        `json:"version"`
	Header  *headerJSON `json:"header"`
	DB      *string     `json:"db"`
}

type headerJSON struct {
	Slots  *[]slotJSON       `json:"slots"`
	Params *cipherParamsJSON `json:"params"`
}

type cipherParamsJSON struct {
	Nonce *models.HexBytes `json:"nonce"`
	Tag   *models.HexBytes `json:"tag"`
}

type slotJSON struct {
	Type      *int              `json:"type"`
	UUID      *string           `json:"uuid"`
	Key       *models.HexBytes  `json:"key"`
	KeyParams *cipherParamsJSON `json:"key_params"`

	N    *uint64          `json:"n"`
	R    *uint32          `json:"r"`
	P    *uint32          `json:"p"`
	Salt *models.HexBytes `json:"salt"`

	Repaired *bool `json:"repaired"`
	IsBackup *bool `json:"is_backup"`
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedVault, fmt.Sprintf(format, args...))
}

// Parse decodes raw vault bytes into a [models.Backup] and validates the
// schema eagerly. Every structural problem is reported as
// [ErrMalformedVault]. Version numbers are not checked here, so callers can
// tell "not a vault" apart from "unsupported vault".
func Parse(raw []byte) (*models.Backup, error) {
	var doc backupJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedVault, err)
	}

	if doc.Version == nil {
		return nil, malformed("missing version")
	}
	if doc.Header == nil {
		return nil, malformed("missing header")
	}
	if doc.DB == nil {
		return nil, malformed("missing db")
	}

	header, err := parseHeader(doc.Header)
	if err != nil {
		return nil, err
	}

	db, err := decodeBase64(*doc.DB)
	if err != nil {
		return nil, malformed("db: %v", err)
	}

	return &models.Backup{
		Version: *doc.Version,
		Header:  header,
		DB:      db,
	}, nil
}

func parseHeader(h *headerJSON) (models.Header, error) {
	if h.Slots == nil {
		return models.Header{}, malformed("header: missing slots")
	}
	params, err := parseCipherParams(h.Params)
	if err != nil {
		return models.Header{}, malformed("header params: %v", err)
	}

	slots := make([]models.Slot, 0, len(*h.Slots))
	for i, s := range *h.Slots {
		slot, err := parseSlot(s)
		if err != nil {
			return models.Header{}, malformed("slot %d: %v", i, err)
		}
		slots = append(slots, slot)
	}

	return models.Header{Slots: slots, Params: params}, nil
}

func parseCipherParams(p *cipherParamsJSON) (models.CipherParams, error) {
	if p == nil {
		return models.CipherParams{}, fmt.Errorf("missing")
	}
	if p.Nonce == nil {
		return models.CipherParams{}, fmt.Errorf("missing nonce")
	}
	if p.Tag == nil {
		return models.CipherParams{}, fmt.Errorf("missing tag")
	}
	return models.CipherParams{Nonce: *p.Nonce, Tag: *p.Tag}, nil
}

func parseSlot(s slotJSON) (models.Slot, error) {
	if s.Type == nil {
		return models.Slot{}, fmt.Errorf("missing type")
	}
	slotType := models.SlotType(*s.Type)
	if !slotType.Valid() {
		return models.Slot{}, fmt.Errorf("unknown slot type %d", *s.Type)
	}
	if s.UUID == nil {
		return models.Slot{}, fmt.Errorf("missing uuid")
	}
	id, err := uuid.Parse(*s.UUID)
	if err != nil {
		return models.Slot{}, fmt.Errorf("uuid: %w", err)
	}
	if s.Key == nil {
		return models.Slot{}, fmt.Errorf("missing key")
	}
	keyParams, err := parseCipherParams(s.KeyParams)
	if err != nil {
		return models.Slot{}, fmt.Errorf("key_params: %w", err)
	}

	slot := models.Slot{
		Type:      slotType,
		UUID:      id,
		Key:       *s.Key,
		KeyParams: keyParams,
		Repaired:  s.Repaired,
		IsBackup:  s.IsBackup,
	}

	if slotType == models.SlotPassword {
		switch {
		case s.N == nil:
			return models.Slot{}, fmt.Errorf("password slot: missing n")
		case s.R == nil:
			return models.Slot{}, fmt.Errorf("password slot: missing r")
		case s.P == nil:
			return models.Slot{}, fmt.Errorf("password slot: missing p")
		case s.Salt == nil:
			return models.Slot{}, fmt.Errorf("password slot: missing salt")
		}
		slot.KDF = &models.KDFParams{N: *s.N, R: *s.R, P: *s.P, Salt: *s.Salt}
	}

	return slot, nil
}

// decodeBase64 accepts the unpadded form the format specifies as well as
// padded input.
func decodeBase64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
