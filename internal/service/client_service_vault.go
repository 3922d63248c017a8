// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/store"
	"github.com/MKhiriev/aegis-totp/internal/vault"
	"github.com/MKhiriev/aegis-totp/models"
)

type clientVaultService struct {
	files store.VaultFileStorage
}

func NewClientVaultService(storages *store.ClientStorages) ClientVaultService {
	return &clientVaultService{
		files: storages.VaultFiles,
	}
}

// Unlock logs through the logger attached to ctx by the client session.
func (s *clientVaultService) Unlock(ctx context.Context, path string, password *crypto.SecretBuffer) (*models.Database, error) {
	log := logger.FromContext(ctx).With().Str("vault", path).Logger()

	raw, err := s.files.LoadVault(ctx, path)
	if err != nil {
		log.Error().Err(err).Msg("error loading vault file")
		return nil, fmt.Errorf("load vault: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug().Int("size", len(raw)).Msg("unlocking vault")
	db, err := vault.UnlockVault(raw, password.Bytes())
	if err != nil {
		if errors.Is(err, vault.ErrWrongPasswordOrNoMatchingSlot) {
			log.Warn().Err(err).Msg("vault unlock rejected")
		} else {
			log.Error().Err(err).Msg("error unlocking vault")
		}
		return nil, fmt.Errorf("unlock vault: %w", err)
	}

	log.Info().
		Int("db_version", db.Version).
		Int("entries", len(db.Entries)).
		Msg("vault unlocked")
	return db, nil
}
