// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// aegis-totp terminal UI and the non-interactive client.
//
// All Msg* constants are human-readable message strings shown to the user
// in place of raw error chains. Keeping them in one place ensures consistent
// wording between the interactive and the scripted mode.
package app

const (
	// MsgWrongPassword is shown when no password slot accepts the password.
	MsgWrongPassword = "Wrong password or no matching password slot"

	// MsgVaultNotFound is shown when the vault path does not exist.
	MsgVaultNotFound = "Vault file not found"

	// MsgVaultNotReadable is shown when the vault path is a directory, too
	// large or unreadable.
	MsgVaultNotReadable = "Vault file cannot be read"

	// MsgMalformedVault is shown when the file is not a well-formed
	// encrypted backup.
	MsgMalformedVault = "The file is not a valid encrypted vault"

	// MsgUnsupportedVersion is shown for a backup or database version this
	// client does not understand.
	MsgUnsupportedVersion = "Unsupported vault version"

	// MsgKeyDerivation is shown when the slot's scrypt parameters are unusable.
	MsgKeyDerivation = "The vault's key derivation parameters are invalid"

	// MsgDatabaseAuthenticationFailed is shown when the master key opened but
	// the database failed its integrity check.
	MsgDatabaseAuthenticationFailed = "The vault database is corrupted or has been tampered with"

	// MsgNoTOTPEntries is shown when the vault has nothing to generate codes for.
	MsgNoTOTPEntries = "Found no entries of the supported entry types (TOTP)"

	// MsgNoMatchingEntry is shown when a non-interactive query matches no entry.
	MsgNoMatchingEntry = "No TOTP entry matches the query"

	// MsgInvalidEntry is shown when an entry's secret or parameters cannot
	// produce a code.
	MsgInvalidEntry = "This entry cannot produce a code"

	// MsgClipboardUnavailable is shown when copying fails.
	MsgClipboardUnavailable = "Clipboard is not available"

	// MsgPasswordRequired is shown when the password prompt is submitted empty.
	MsgPasswordRequired = "Password is required"
)
