package service

import (
	"context"
	"time"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/internal/otp"
	"github.com/MKhiriev/aegis-totp/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientVaultService unlocks exported vault files.
type ClientVaultService interface {
	// Unlock reads the vault at path, recovers the master key from the first
	// password slot that password opens and returns the decrypted database.
	//
	// The password buffer is borrowed: the caller still owns and destroys it.
	// Errors wrap the sentinels of the store and vault packages, so callers
	// can tell a wrong password (vault.ErrWrongPasswordOrNoMatchingSlot,
	// which is worth a retry) from a broken file.
	Unlock(ctx context.Context, path string, password *crypto.SecretBuffer) (*models.Database, error)
}

// ClientOTPService turns decrypted entries into codes.
type ClientOTPService interface {
	// TOTPEntries returns the entries of db that codes can be generated for,
	// in vault order.
	TOTPEntries(db *models.Database) []models.Entry

	// Search fuzzy-matches query against the "issuer (name)" labels of
	// entries and returns the matches, best first. An empty query returns
	// entries unchanged.
	Search(entries []models.Entry, query string) []models.Entry

	// Code returns the code of a TOTP entry at now.
	Code(entry models.Entry, now time.Time) (otp.Code, error)

	// KeyURI returns the otpauth:// URI of a TOTP entry.
	KeyURI(entry models.Entry) (string, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	// BuildInfo returns the metadata injected at link time.
	BuildInfo() models.AppBuildInfo
	// Version returns a one-line description for -version output.
	Version() string
}
