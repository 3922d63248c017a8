package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultFileStorage reads exported vault files.
type VaultFileStorage interface {
	// LoadVault returns the raw bytes of the vault at path.
	LoadVault(ctx context.Context, path string) ([]byte, error)
}
