// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	defaultRefreshInterval     = time.Second
	defaultClipboardClearAfter = 30 * time.Second
	defaultLogLevel            = "info"
)

// ClientVault holds the vault location.
type ClientVault struct {
	// Path is the vault file to unlock.
	Path string
}

// ClientLogging holds validated log settings.
type ClientLogging struct {
	// File is the log destination; empty means no logging.
	File string
	// Level is a valid zerolog level name.
	Level string
}

// ClientUI holds validated UI settings.
type ClientUI struct {
	RefreshInterval     time.Duration
	ClipboardClearAfter time.Duration
	ClipboardEnabled    bool
}

// ClientConfig is the validated view of [StructuredConfig] used by the client.
type ClientConfig struct {
	Vault   ClientVault
	Logging ClientLogging
	UI      ClientUI

	// Entry selects non-interactive mode when non-empty.
	Entry string

	// Password, when non-empty, skips the password prompt.
	Password string

	// ShowVersion asks for build information only.
	ShowVersion bool
}

// Interactive reports whether the TUI should be started.
func (c *ClientConfig) Interactive() bool {
	return c.Entry == ""
}

// GetClientConfig builds and validates the client configuration from the
// process environment and args (without the program name).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Vault: ClientVault{Path: strings.TrimSpace(cfg.Vault.Path)},
		Logging: ClientLogging{
			File:  cfg.Logging.File,
			Level: strings.ToLower(cfg.Logging.Level),
		},
		UI: ClientUI{
			RefreshInterval:     cfg.UI.RefreshInterval,
			ClipboardClearAfter: cfg.UI.ClipboardClearAfter,
			ClipboardEnabled:    !cfg.UI.NoClipboard,
		},
		Entry:       strings.TrimSpace(cfg.Entry),
		Password:    cfg.Password,
		ShowVersion: cfg.ShowVersion,
	}

	if clientCfg.Logging.Level == "" {
		clientCfg.Logging.Level = defaultLogLevel
	}
	if clientCfg.UI.RefreshInterval == 0 {
		clientCfg.UI.RefreshInterval = defaultRefreshInterval
	}
	if clientCfg.UI.ClipboardClearAfter == 0 {
		clientCfg.UI.ClipboardClearAfter = defaultClipboardClearAfter
	}

	if clientCfg.ShowVersion {
		return clientCfg, nil
	}
	return clientCfg, clientCfg.validate()
}
