// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

func (cfg *ClientConfig) validate() error {
	if cfg.Vault.Path == "" {
		return ErrInvalidVaultConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil || cfg.Logging.Level == "" {
		return ErrInvalidLoggingConfigs
	}

	if cfg.UI.RefreshInterval < 0 || cfg.UI.ClipboardClearAfter < 0 {
		return ErrInvalidUIConfigs
	}

	return nil
}
