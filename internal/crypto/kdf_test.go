// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/MKhiriev/aegis-totp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	params := models.KDFParams{N: 1024, R: 8, P: 1, Salt: bytes.Repeat([]byte{0xAB}, 32)}

	k1, err := DeriveKey([]byte("correct horse battery staple"), params)
	require.NoError(t, err)
	defer k1.Destroy()
	k2, err := DeriveKey([]byte("correct horse battery staple"), params)
	require.NoError(t, err)
	defer k2.Destroy()

	assert.Equal(t, KeySize, k1.Len())
	assert.Equal(t, k1.Bytes(), k2.Bytes())
}

func TestDeriveKey_KnownAnswers(t *testing.T) {
	tests := []struct {
		name     string
		password string
		params   models.KDFParams
		want     string
	}{
		{
			// RFC 7914 section 12, first 32 bytes of the 64-byte output.
			name:     "rfc 7914 vector",
			password: "password",
			params:   models.KDFParams{N: 1024, R: 8, P: 16, Salt: []byte("NaCl")},
			want:     "fdbabe1c9d3472007856e7190d01e9fe7c6ad7cbc8237830e77376634b373162",
		},
		{
			name:     "vault style parameters",
			password: "test1234",
			params:   models.KDFParams{N: 1024, R: 8, P: 1, Salt: mustHex(t, "000102030405060708090a0b0c0d0e0f")},
			want:     "62325717a368f09d15a62cff5e3618dfb4a00b9d52ae1e7ed82e3ab25877c258",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey([]byte(tt.password), tt.params)
			require.NoError(t, err)
			defer key.Destroy()

			assert.Equal(t, tt.want, hex.EncodeToString(key.Bytes()))
		})
	}
}

func TestDeriveKey_DifferentSaltProducesDifferentKey(t *testing.T) {
	k1, err := DeriveKey([]byte("same"), models.KDFParams{N: 16, R: 8, P: 1, Salt: []byte{1}})
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("same"), models.KDFParams{N: 16, R: 8, P: 1, Salt: []byte{2}})
	require.NoError(t, err)

	assert.NotEqual(t, k1.Bytes(), k2.Bytes())
}

func TestDeriveKey_InvalidParams(t *testing.T) {
	salt := []byte("salt")
	tests := []struct {
		name   string
		params models.KDFParams
	}{
		{name: "zero cost", params: models.KDFParams{N: 0, R: 8, P: 1, Salt: salt}},
		{name: "cost of one", params: models.KDFParams{N: 1, R: 8, P: 1, Salt: salt}},
		{name: "cost not a power of two", params: models.KDFParams{N: 1000, R: 8, P: 1, Salt: salt}},
		{name: "zero block size", params: models.KDFParams{N: 1024, R: 0, P: 1, Salt: salt}},
		{name: "zero parallelism", params: models.KDFParams{N: 1024, R: 8, P: 0, Salt: salt}},
		{name: "r*p too large", params: models.KDFParams{N: 2, R: 1 << 15, P: 1 << 15, Salt: salt}},
		{name: "memory limit", params: models.KDFParams{N: 1 << 40, R: 8, P: 1, Salt: salt}},
		{name: "parallelism memory limit", params: models.KDFParams{N: 2, R: 1, P: 536870911, Salt: salt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey([]byte("any password"), tt.params)
			require.ErrorIs(t, err, ErrKeyDerivation)
			assert.Nil(t, key)
		})
	}
}

func TestDeriveKey_PasswordContentNeverFails(t *testing.T) {
	params := models.KDFParams{N: 16, R: 1, P: 1, Salt: []byte("s")}
	for _, pw := range [][]byte{nil, {}, {0x00}, []byte("пароль"), bytes.Repeat([]byte{0xFF}, 4096)} {
		key, err := DeriveKey(pw, params)
		require.NoError(t, err)
		assert.Equal(t, KeySize, key.Len())
	}
}
