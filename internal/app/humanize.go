package app

import (
	"errors"

	"github.com/MKhiriev/aegis-totp/internal/otp"
	"github.com/MKhiriev/aegis-totp/internal/store"
	"github.com/MKhiriev/aegis-totp/internal/vault"
)

// Humanize maps a service error to one of the Msg* texts. Errors without a
// dedicated message are returned as their own text.
func Humanize(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vault.ErrWrongPasswordOrNoMatchingSlot):
		return MsgWrongPassword
	case errors.Is(err, store.ErrVaultFileNotFound):
		return MsgVaultNotFound
	case errors.Is(err, store.ErrVaultPathIsDir),
		errors.Is(err, store.ErrVaultFileTooLarge),
		errors.Is(err, store.ErrReadingVaultFile):
		return MsgVaultNotReadable
	case errors.Is(err, vault.ErrUnsupportedVersion):
		return MsgUnsupportedVersion
	case errors.Is(err, vault.ErrMalformedVault):
		return MsgMalformedVault
	case errors.Is(err, vault.ErrKeyDerivation):
		return MsgKeyDerivation
	case errors.Is(err, vault.ErrDatabaseAuthenticationFailed):
		return MsgDatabaseAuthenticationFailed
	case errors.Is(err, otp.ErrInvalidSecretEncoding),
		errors.Is(err, otp.ErrInvalidEntryParams),
		errors.Is(err, otp.ErrUnsupportedAlgorithm),
		errors.Is(err, otp.ErrUnsupportedEntryType):
		return MsgInvalidEntry
	default:
		return err.Error()
	}
}
