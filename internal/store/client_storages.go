package store

import (
	"github.com/MKhiriev/aegis-totp/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// VaultFiles reads exported vault backups from disk.
	VaultFiles VaultFileStorage
}

// NewClientStorages initialises the client storage layer.
func NewClientStorages(logger *logger.Logger) *ClientStorages {
	logger.Debug().Msg("creating new storages...")

	return &ClientStorages{
		VaultFiles: NewVaultFileStorage(logger),
	}
}
