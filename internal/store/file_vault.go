// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/MKhiriev/aegis-totp/internal/logger"
)

// MaxVaultFileSize bounds how much of a vault file is read into memory.
const MaxVaultFileSize = 64 << 20

// vaultFileStorage is the local filesystem implementation of
// [VaultFileStorage].
type vaultFileStorage struct {
	maxSize int64
	logger  *logger.Logger
}

// NewVaultFileStorage constructs a [VaultFileStorage] reading from the
// local filesystem, limited to [MaxVaultFileSize] bytes per file.
func NewVaultFileStorage(logger *logger.Logger) VaultFileStorage {
	return &vaultFileStorage{
		maxSize: MaxVaultFileSize,
		logger:  logger,
	}
}

// LoadVault reads the whole vault file at path.
//
// Returns:
//   - [ErrVaultFileNotFound] if path does not exist;
//   - [ErrVaultPathIsDir] if path is a directory;
//   - [ErrVaultFileTooLarge] if the file is bigger than the storage limit;
//   - [ErrReadingVaultFile] for any other I/O failure;
//   - ctx.Err() if ctx is already done.
func (s *vaultFileStorage) LoadVault(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := s.logger.With().Str("vault", path).Logger()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVaultFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrReadingVaultFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingVaultFile, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrVaultPathIsDir, path)
	}
	if info.Size() > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrVaultFileTooLarge, info.Size())
	}

	// The size check above is racy for growing files, so the read is
	// bounded as well.
	data, err := io.ReadAll(io.LimitReader(f, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingVaultFile, err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrVaultFileTooLarge, s.maxSize)
	}

	log.Debug().Int("size", len(data)).Msg("vault file loaded")
	return data, nil
}
