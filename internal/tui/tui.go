// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal client: a password prompt
// for the vault, a fuzzy-filtered list of TOTP entries and a live code view
// with clipboard copy and QR export.
package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures a [TUI].
type Options struct {
	// VaultPath is the vault unlocked by the password screen.
	VaultPath string
	// RefreshInterval is how often the code view is re-rendered.
	RefreshInterval time.Duration
	// ClipboardClearAfter clears a copied code once it elapses.
	ClipboardClearAfter time.Duration
	// ClipboardEnabled allows the copy key.
	ClipboardEnabled bool
	// Now replaces time.Now in tests.
	Now func() time.Time
}

type TUI struct {
	services  *service.ClientServices
	opts      Options
	clipboard Clipboard
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) *TUI {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &TUI{
		services:       services,
		opts:           opts,
		clipboard:      newSystemClipboard(opts.ClipboardEnabled),
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the password prompt and then the entry browser until the user
// quits. It returns [ErrUserQuit] when the user leaves before unlocking and
// the unlock error when the vault cannot be opened at all.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.opts, t.clipboard, t.logger)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, runErr := tea.NewProgram(model, opts...).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}

	if result.copied != "" {
		if err := clearIfUnchanged(t.clipboard, result.copied); err != nil {
			t.logger.Warn().Err(err).Msg("error clearing clipboard on exit")
		}
	}

	return result.err
}
