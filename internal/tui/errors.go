// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrUserQuit is returned by [TUI.Run] when the user leaves the password
// prompt without unlocking the vault.
var ErrUserQuit = errors.New("user quit")
