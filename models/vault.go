// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math/bits"

	"github.com/google/uuid"
)

// SupportedBackupVersion is the only backup format version that can be unlocked.
const SupportedBackupVersion = 1

// SlotType identifies the unlock method a slot wraps the master key with.
type SlotType int

const (
	// SlotRaw wraps the master key with a raw key held outside the vault.
	SlotRaw SlotType = 0

	// SlotPassword wraps the master key with a key derived from a password
	// via scrypt. Only password slots can be unlocked by this tool.
	SlotPassword SlotType = 1

	// SlotBiometric wraps the master key with a key kept in the Android
	// keystore behind a biometric prompt.
	SlotBiometric SlotType = 2
)

// Valid reports whether t is one of the known slot types.
func (t SlotType) Valid() bool {
	switch t {
	case SlotRaw, SlotPassword, SlotBiometric:
		return true
	default:
		return false
	}
}

func (t SlotType) String() string {
	switch t {
	case SlotRaw:
		return "raw"
	case SlotPassword:
		return "password"
	case SlotBiometric:
		return "biometric"
	default:
		return "unknown"
	}
}

// Backup is the top-level document of an encrypted vault export.
type Backup struct {
	// Version is the backup format version. Only [SupportedBackupVersion]
	// can be unlocked; the check belongs to the unlock pipeline.
	Version int

	// Header holds the key slots and the parameters the database is
	// encrypted with.
	Header Header

	// DB is the encrypted entry database, already base64-decoded.
	// The authentication tag is kept separately in Header.Params.Tag.
	DB []byte
}

// Header describes how the master key is wrapped and how the database is
// encrypted with it.
type Header struct {
	Slots  []Slot
	Params CipherParams
}

// CipherParams carries the detached AES-GCM nonce and authentication tag.
type CipherParams struct {
	Nonce HexBytes `json:"nonce"`
	Tag   HexBytes `json:"tag"`
}

// KDFParams are the scrypt parameters of a password slot.
type KDFParams struct {
	// N is the raw scrypt cost parameter as stored in the file (e.g. 32768).
	N uint64
	// R is the scrypt block size.
	R uint32
	// P is the scrypt parallelism.
	P uint32
	// Salt is used verbatim.
	Salt HexBytes
}

// CostLog2 returns log2(N). ok is false when N is not a power of two
// greater than one, which scrypt cannot use.
func (p KDFParams) CostLog2() (costLog2 uint8, ok bool) {
	if p.N < 2 || p.N&(p.N-1) != 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros64(p.N)), true
}

// Slot is one enrolled unlock method wrapping the master key.
type Slot struct {
	Type SlotType
	UUID uuid.UUID

	// Key is the wrapped master key without its authentication tag.
	Key HexBytes

	// KeyParams holds the nonce and tag used to wrap Key.
	KeyParams CipherParams

	// KDF is set for password slots only.
	KDF *KDFParams

	Repaired *bool
	IsBackup *bool
}

// PasswordSlots returns the password slots among slots, in listed order.
func PasswordSlots(slots []Slot) []Slot {
	var out []Slot
	for _, s := range slots {
		if s.Type == SlotPassword {
			out = append(out, s)
		}
	}
	return out
}
