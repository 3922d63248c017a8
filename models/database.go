// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"

	"github.com/google/uuid"
)

// SupportedDatabaseVersion is the only decrypted database version understood.
const SupportedDatabaseVersion = 2

// EntryType is the kind of one-time password an entry produces.
// Unknown values are preserved as-is so that newer vaults still parse.
type EntryType string

const (
	// TOTP is a time-based one-time password (RFC 6238).
	TOTP EntryType = "totp"
	// HOTP is a counter-based one-time password (RFC 4226).
	HOTP EntryType = "hotp"
	// Steam is the Steam Guard variant with a custom alphabet.
	Steam EntryType = "steam"
	// MOTP is the legacy Mobile-OTP scheme.
	MOTP EntryType = "motp"
	// Yandex is the Yandex Key scheme.
	Yandex EntryType = "yandex"
)

// Algorithm is the HMAC hash an entry is configured with.
type Algorithm string

const (
	SHA1   Algorithm = "SHA1"
	SHA256 Algorithm = "SHA256"
	SHA512 Algorithm = "SHA512"
	MD5    Algorithm = "MD5"
)

// Database is the decrypted content of a vault.
type Database struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// Entry is a single authenticator account.
type Entry struct {
	Type     EntryType `json:"type"`
	UUID     uuid.UUID `json:"uuid"`
	Name     string    `json:"name"`
	Issuer   string    `json:"issuer"`
	Note     string    `json:"note"`
	Favorite bool      `json:"favorite"`
	Groups   []string  `json:"groups,omitempty"`
	Info     EntryInfo `json:"info"`
}

// EntryInfo holds the OTP parameters of an entry.
type EntryInfo struct {
	// Secret is the base32-encoded shared key.
	Secret string    `json:"secret"`
	Algo   Algorithm `json:"algo"`
	Digits int       `json:"digits"`
	// Period is the TOTP step in seconds. Zero for counter-based entries.
	Period int `json:"period,omitempty"`
	// Counter is set for HOTP entries only.
	Counter *uint64 `json:"counter,omitempty"`
}

// Label renders the entry as "issuer (name)".
func (e Entry) Label() string {
	issuer := strings.TrimSpace(e.Issuer)
	name := strings.TrimSpace(e.Name)
	switch {
	case issuer == "":
		return name
	case name == "":
		return issuer
	default:
		return issuer + " (" + name + ")"
	}
}
