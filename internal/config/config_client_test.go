// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{Vault: Vault{Path: " vault.json "}})
	require.NoError(t, err)

	assert.Equal(t, "vault.json", cfg.Vault.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.Equal(t, time.Second, cfg.UI.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.UI.ClipboardClearAfter)
	assert.True(t, cfg.UI.ClipboardEnabled)
	assert.True(t, cfg.Interactive())
}

func TestNewClientConfig_NonInteractive(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{
		Vault:    Vault{Path: "vault.json"},
		Entry:    "  github ",
		Password: "test1234",
		UI:       UI{NoClipboard: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "github", cfg.Entry)
	assert.Equal(t, "test1234", cfg.Password)
	assert.False(t, cfg.UI.ClipboardEnabled)
	assert.False(t, cfg.Interactive())
}

func TestNewClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{name: "missing vault", cfg: StructuredConfig{}, want: ErrInvalidVaultConfigs},
		{name: "blank vault", cfg: StructuredConfig{Vault: Vault{Path: "   "}}, want: ErrInvalidVaultConfigs},
		{name: "bad level", cfg: StructuredConfig{Vault: Vault{Path: "v"}, Logging: Logging{Level: "loud"}}, want: ErrInvalidLoggingConfigs},
		{name: "negative refresh", cfg: StructuredConfig{Vault: Vault{Path: "v"}, UI: UI{RefreshInterval: -time.Second}}, want: ErrInvalidUIConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newClientConfig(&tt.cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewClientConfig_VersionSkipsValidation(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{ShowVersion: true})
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestGetClientConfig_FromArgs(t *testing.T) {
	t.Setenv("AEGIS_PASSWORD", "pw")

	cfg, err := GetClientConfig([]string{"-entry", "mail", "vault.json"})
	require.NoError(t, err)
	assert.Equal(t, "vault.json", cfg.Vault.Path)
	assert.Equal(t, "mail", cfg.Entry)
	assert.Equal(t, "pw", cfg.Password)
}
