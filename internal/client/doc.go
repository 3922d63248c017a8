// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It runs either the interactive terminal UI or, when an entry query is
// configured, a one-shot lookup that prints a single code and exits.
package client
