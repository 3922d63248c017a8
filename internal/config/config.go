// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "AEGIS_"

// StructuredConfig is the raw configuration merged from a JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All names below are additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// Vault holds the location of the encrypted backup.
	Vault Vault `envPrefix:"VAULT_"`

	// Logging controls the zerolog output of the client.
	Logging Logging `envPrefix:"LOG_"`

	// UI holds the terminal UI settings.
	UI UI `envPrefix:"UI_"`

	// Entry, when set, switches to non-interactive mode: the code of the
	// first TOTP entry matching this query is printed and the program exits.
	// Env: AEGIS_ENTRY
	Entry string `env:"ENTRY"`

	// Password is read from the environment only; it is never accepted as
	// a flag or from the JSON file.
	// Env: AEGIS_PASSWORD
	Password string `env:"PASSWORD"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: AEGIS_CONFIG, flags -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// ShowVersion prints build information and exits. Flag only.
	ShowVersion bool
}

// Vault holds the location of the vault file.
type Vault struct {
	// Path to the exported encrypted vault (JSON).
	// Env: AEGIS_VAULT_PATH
	Path string `env:"PATH"`
}

// Logging holds log destination and level.
type Logging struct {
	// File receives JSON log lines. Empty disables logging so the TUI
	// screen is never overwritten.
	// Env: AEGIS_LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: AEGIS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds terminal UI behaviour.
type UI struct {
	// RefreshInterval is how often the code view re-renders.
	// Env: AEGIS_UI_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// ClipboardClearAfter clears a copied code after this long. Zero keeps it.
	// Env: AEGIS_UI_CLIPBOARD_CLEAR_AFTER
	ClipboardClearAfter time.Duration `env:"CLIPBOARD_CLEAR_AFTER"`

	// NoClipboard disables clipboard access entirely.
	// Env: AEGIS_UI_NO_CLIPBOARD
	NoClipboard bool `env:"NO_CLIPBOARD"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Later sources override earlier non-zero fields:
//  1. JSON file (path taken from env or flags)
//  2. Environment variables
//  3. Command-line flags and the positional vault path
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
