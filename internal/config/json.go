package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config.
// The password is never read from this file.
type StructuredJSONConfig struct {
	VaultPath string `json:"vault_path"`

	Logging struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"logging,omitempty"`

	UI struct {
		RefreshInterval     Duration `json:"refresh_interval"`
		ClipboardClearAfter Duration `json:"clipboard_clear_after"`
		NoClipboard         bool     `json:"no_clipboard"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{Path: jsonCfg.VaultPath},
		Logging: Logging{
			File:  jsonCfg.Logging.File,
			Level: jsonCfg.Logging.Level,
		},
		UI: UI{
			RefreshInterval:     time.Duration(jsonCfg.UI.RefreshInterval),
			ClipboardClearAfter: time.Duration(jsonCfg.UI.ClipboardClearAfter),
			NoClipboard:         jsonCfg.UI.NoClipboard,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
