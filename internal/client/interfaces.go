// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end started when no entry query is given.
type UI interface {
	Run(ctx context.Context) error
}

// PasswordReader prompts for the vault password.
type PasswordReader interface {
	// ReadPassword shows prompt and returns the typed password without the
	// line terminator. The caller owns and wipes the returned slice.
	ReadPassword(prompt string) ([]byte, error)
}
