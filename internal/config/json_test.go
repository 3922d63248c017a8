package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"vault_path": "/data/aegis.json",
		"logging":    map[string]any{"file": "/var/log/aegis.log", "level": "debug"},
		"ui": map[string]any{
			"refresh_interval":      "250ms",
			"clipboard_clear_after": "45s",
			"no_clipboard":          true,
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/aegis.json", cfg.Vault.Path)
	assert.Equal(t, "/var/log/aegis.log", cfg.Logging.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.UI.RefreshInterval)
	assert.Equal(t, 45*time.Second, cfg.UI.ClipboardClearAfter)
	assert.True(t, cfg.UI.NoClipboard)
	assert.Empty(t, cfg.Password)
}

func TestParseJSON_PasswordIgnored(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"password": "leaked", "vault_path": "v.json"})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Password)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"ui": map[string]any{"refresh_interval": 1e9}})

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.UI.RefreshInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{"ui": map[string]any{"refresh_interval": "whenever"}})

	_, err := parseJSON(path)
	assert.Error(t, err)
}
