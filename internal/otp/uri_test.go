package otp

import (
	"testing"

	"github.com/MKhiriev/aegis-totp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyURI(t *testing.T) {
	entry := models.Entry{
		Type:   models.TOTP,
		Name:   "alice@example.com",
		Issuer: "Acme Co",
		Info:   models.EntryInfo{Secret: "JBSWY3DPEHPK3PXP", Algo: models.SHA256, Digits: 8, Period: 60},
	}

	uri, err := KeyURI(entry)
	require.NoError(t, err)
	assert.Equal(t, "otpauth://totp/Acme%20Co:alice@example.com?algorithm=SHA256&digits=8&issuer=Acme+Co&period=60&secret=JBSWY3DPEHPK3PXP", uri)
}

func TestKeyURI_NoIssuer(t *testing.T) {
	uri, err := KeyURI(models.Entry{
		Type: models.TOTP,
		Name: "bob",
		Info: models.EntryInfo{Secret: "jbswy3dpehpk3pxp", Digits: 6, Period: 30},
	})
	require.NoError(t, err)
	assert.Equal(t, "otpauth://totp/bob?algorithm=SHA1&digits=6&period=30&secret=JBSWY3DPEHPK3PXP", uri)
}

func TestKeyURI_SecretIsNormalized(t *testing.T) {
	for _, secret := range []string{"JBSW Y3DP EHPK 3PXP", " jbsw y3dp ehpk 3pxp ", "JBSWY3DPEHPK3PXP===="} {
		uri, err := KeyURI(models.Entry{
			Type: models.TOTP,
			Name: "bob",
			Info: models.EntryInfo{Secret: secret, Digits: 6, Period: 30},
		})
		require.NoError(t, err)
		assert.Equal(t, "otpauth://totp/bob?algorithm=SHA1&digits=6&period=30&secret=JBSWY3DPEHPK3PXP", uri, secret)
	}
}

func TestKeyURI_Errors(t *testing.T) {
	_, err := KeyURI(models.Entry{Type: models.HOTP, Info: models.EntryInfo{Secret: "JBSWY3DPEHPK3PXP"}})
	assert.ErrorIs(t, err, ErrUnsupportedEntryType)

	_, err = KeyURI(models.Entry{Type: models.TOTP, Info: models.EntryInfo{Secret: "!!"}})
	assert.ErrorIs(t, err, ErrInvalidSecretEncoding)
}
