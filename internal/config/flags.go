// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// Usage is printed for -h and on argument errors.
const Usage = `Usage: aegis-totp [flags] <vault.json>

Flags:
  -vault path            encrypted vault path (instead of the argument)
  -entry query           print the code of the first matching TOTP entry and exit
  -c, -config path       JSON config file
  -log-file path         write JSON logs to path
  -log-level level       debug, info, warn or error (default info)
  -refresh duration      code view refresh interval (default 1s)
  -clipboard-clear dur   clear a copied code after dur (default 30s)
  -no-clipboard          disable clipboard access
  -version               print build information and exit

Environment:
  AEGIS_VAULT_PATH, AEGIS_ENTRY, AEGIS_PASSWORD, AEGIS_CONFIG,
  AEGIS_LOG_FILE, AEGIS_LOG_LEVEL, AEGIS_UI_REFRESH_INTERVAL,
  AEGIS_UI_CLIPBOARD_CLEAR_AFTER, AEGIS_UI_NO_CLIPBOARD
`

// ParseFlags parses command-line flags from args (without the program name).
//
// Usage:
//
//	aegis-totp [flags] [vault.json]
//
// Flags:
//
//	-vault path to the encrypted vault (alternative to the positional argument)
//	-entry print the code of the first matching entry and exit
//	-c/-config json file path with configs
//	-log-file log destination
//	-log-level zerolog level
//	-refresh code view refresh interval (e.g. "1s")
//	-clipboard-clear clear copied codes after (e.g. "30s")
//	-no-clipboard disable clipboard access
//	-version print build information and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("aegis-totp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		vaultPath      string
		entry          string
		jsonConfigPath string
		logFile        string
		logLevel       string
		refresh        time.Duration
		clipboardClear time.Duration
		noClipboard    bool
		showVersion    bool
	)

	fs.StringVar(&vaultPath, "vault", "", "Encrypted vault path")
	fs.StringVar(&entry, "entry", "", "Print the code of the first matching entry and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&refresh, "refresh", 0, "Code refresh interval (e.g., 1s)")
	fs.DurationVar(&clipboardClear, "clipboard-clear", 0, "Clear copied code after (e.g., 30s)")
	fs.BoolVar(&noClipboard, "no-clipboard", false, "Disable clipboard access")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if vaultPath != "" && vaultPath != fs.Arg(0) {
			return nil, fmt.Errorf("%w: vault given both as -vault and as argument", ErrInvalidVaultConfigs)
		}
		vaultPath = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: expected a single vault path, got %d arguments", ErrInvalidVaultConfigs, fs.NArg())
	}

	return &StructuredConfig{
		Vault: Vault{Path: vaultPath},
		Logging: Logging{
			File:  logFile,
			Level: logLevel,
		},
		UI: UI{
			RefreshInterval:     refresh,
			ClipboardClearAfter: clipboardClear,
			NoClipboard:         noClipboard,
		},
		Entry:        entry,
		JSONFilePath: jsonConfigPath,
		ShowVersion:  showVersion,
	}, nil
}
