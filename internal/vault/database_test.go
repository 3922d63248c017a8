// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sealDB(t *testing.T, key, plaintext []byte) (models.CipherParams, []byte) {
	t.Helper()
	nonce, err := crypto.NewNonce()
	require.NoError(t, err)
	ct, tag, err := crypto.SealDetached(key, nonce, plaintext)
	require.NoError(t, err)
	return models.CipherParams{Nonce: nonce, Tag: tag}, ct
}

func TestDecryptDatabase_Success(t *testing.T) {
	key := randomKey(t)
	params, blob := sealDB(t, key, []byte(`{
		"version": 2,
		"entries": [
			{"type": "totp", "uuid": "3deac2d4-6b1e-4b4c-9a2b-0c3c8d1b7f10", "name": "alice", "issuer": "Example",
			 "note": "", "favorite": true, "icon": null,
			 "info": {"secret": "JBSWY3DPEHPK3PXP", "algo": "SHA1", "digits": 6, "period": 30}},
			{"type": "hotp", "uuid": "5b0f3e1a-2c4d-4e6f-8a9b-1c2d3e4f5a6b", "name": "bob", "issuer": "Counter",
			 "note": "", "favorite": false,
			 "info": {"secret": "GEZDGNBV", "algo": "SHA1", "digits": 6, "counter": 7}},
			{"type": "yubikey-ish", "uuid": "9c8b7a6f-5e4d-4c3b-a2a1-0f9e8d7c6b5a", "name": "future", "issuer": "",
			 "note": "", "favorite": false, "info": {"secret": "AAAA", "algo": "SHA512", "digits": 8, "period": 30}}
		]
	}`))

	db, err := DecryptDatabase(key, params, blob)
	require.NoError(t, err)

	assert.Equal(t, 2, db.Version)
	require.Len(t, db.Entries, 3)

	totp := db.Entries[0]
	assert.Equal(t, models.TOTP, totp.Type)
	assert.Equal(t, "Example (alice)", totp.Label())
	assert.True(t, totp.Favorite)
	assert.Equal(t, models.EntryInfo{Secret: "JBSWY3DPEHPK3PXP", Algo: models.SHA1, Digits: 6, Period: 30}, totp.Info)

	hotp := db.Entries[1]
	assert.Equal(t, models.HOTP, hotp.Type)
	require.NotNil(t, hotp.Info.Counter)
	assert.Equal(t, uint64(7), *hotp.Info.Counter)

	assert.Equal(t, models.EntryType("yubikey-ish"), db.Entries[2].Type)
}

func TestDecryptDatabase_AuthenticationFailure(t *testing.T) {
	key := randomKey(t)
	params, blob := sealDB(t, key, []byte(`{"version":2,"entries":[]}`))

	_, err := DecryptDatabase(randomKey(t), params, blob)
	assert.ErrorIs(t, err, ErrDatabaseAuthenticationFailed)

	blob[0] ^= 0x01
	_, err = DecryptDatabase(key, params, blob)
	assert.ErrorIs(t, err, ErrDatabaseAuthenticationFailed)
}

// entryJSONWithout renders a valid TOTP entry with one top-level field removed.
func entryJSONWithout(field string) string {
	entry := map[string]any{
		"type":     "totp",
		"uuid":     "3deac2d4-6b1e-4b4c-9a2b-0c3c8d1b7f10",
		"name":     "alice",
		"issuer":   "Example",
		"note":     "",
		"favorite": false,
		"info":     map[string]any{"secret": "JBSWY3DPEHPK3PXP", "algo": "SHA1", "digits": 6, "period": 30},
	}
	delete(entry, field)
	b, err := json.Marshal(entry)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func TestDecryptDatabase_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		plaintext []byte
	}{
		{name: "invalid utf-8", plaintext: []byte{'{', 0xff, 0xfe, '}'}},
		{name: "not json", plaintext: []byte("entries")},
		{name: "missing version", plaintext: []byte(`{"entries":[]}`)},
		{name: "missing entries", plaintext: []byte(`{"version":2}`)},
		{name: "entries not a list", plaintext: []byte(`{"version":2,"entries":{}}`)},
		{name: "bad entry uuid", plaintext: []byte(`{"version":2,"entries":[{"type":"totp","uuid":"x","info":{}}]}`)},
		{name: "digits not a number", plaintext: []byte(`{"version":2,"entries":[{"type":"totp","info":{"digits":"6"}}]}`)},
		{name: "entry without uuid and info", plaintext: []byte(`{"version":2,"entries":[{"type":"totp","name":"x"}]}`)},
		{name: "entry without type", plaintext: []byte(`{"version":2,"entries":[` + entryJSONWithout("type") + `]}`)},
		{name: "entry without uuid", plaintext: []byte(`{"version":2,"entries":[` + entryJSONWithout("uuid") + `]}`)},
		{name: "entry without name", plaintext: []byte(`{"version":2,"entries":[` + entryJSONWithout("name") + `]}`)},
		{name: "entry without issuer", plaintext: []byte(`{"version":2,"entries":[` + entryJSONWithout("issuer") + `]}`)},
		{name: "entry without info", plaintext: []byte(`{"version":2,"entries":[` + entryJSONWithout("info") + `]}`)},
		{name: "info without secret", plaintext: []byte(`{"version":2,"entries":[{"type":"totp","uuid":"3deac2d4-6b1e-4b4c-9a2b-0c3c8d1b7f10","name":"a","issuer":"b","info":{"algo":"SHA1","digits":6,"period":30}}]}`)},
		{name: "info without digits", plaintext: []byte(`{"version":2,"entries":[{"type":"totp","uuid":"3deac2d4-6b1e-4b4c-9a2b-0c3c8d1b7f10","name":"a","issuer":"b","info":{"secret":"AAAA","algo":"SHA1","period":30}}]}`)},
		{name: "totp without period", plaintext: []byte(`{"version":2,"entries":[{"type":"totp","uuid":"3deac2d4-6b1e-4b4c-9a2b-0c3c8d1b7f10","name":"a","issuer":"b","info":{"secret":"AAAA","algo":"SHA1","digits":6}}]}`)},
		{name: "hotp without counter", plaintext: []byte(`{"version":2,"entries":[{"type":"hotp","uuid":"3deac2d4-6b1e-4b4c-9a2b-0c3c8d1b7f10","name":"a","issuer":"b","info":{"secret":"AAAA","algo":"SHA1","digits":6}}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomKey(t)
			params, blob := sealDB(t, key, tt.plaintext)

			db, err := DecryptDatabase(key, params, blob)
			require.ErrorIs(t, err, ErrMalformedVault)
			assert.Nil(t, db)
		})
	}
}

func TestDecryptDatabase_BadParams(t *testing.T) {
	key := randomKey(t)
	params, blob := sealDB(t, key, []byte(`{}`))
	params.Tag = params.Tag[:8]

	_, err := DecryptDatabase(key, params, blob)
	assert.ErrorIs(t, err, ErrMalformedVault)

	_, err = DecryptDatabase(key[:16], models.CipherParams{Nonce: make([]byte, 12), Tag: make([]byte, 16)}, blob)
	assert.ErrorIs(t, err, ErrMalformedVault)
}
