// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/aegis-totp/models"
)

// KeyURI renders entry in the otpauth Key URI format understood by
// authenticator apps:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func KeyURI(entry models.Entry) (string, error) {
	if entry.Type != models.TOTP {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEntryType, entry.Type)
	}
	if _, err := DecodeSecret(entry.Info.Secret); err != nil {
		return "", err
	}

	issuer := strings.TrimSpace(entry.Issuer)
	name := strings.TrimSpace(entry.Name)

	label := url.PathEscape(name)
	if issuer != "" {
		label = url.PathEscape(issuer) + ":" + label
	}

	algo := entry.Info.Algo
	if algo == "" {
		algo = models.SHA1
	}

	query := url.Values{}
	query.Set("secret", normalizeSecret(entry.Info.Secret))
	if issuer != "" {
		query.Set("issuer", issuer)
	}
	query.Set("algorithm", strings.ToUpper(string(algo)))
	query.Set("digits", strconv.Itoa(entry.Info.Digits))
	query.Set("period", strconv.Itoa(entry.Info.Period))

	return "otpauth://totp/" + label + "?" + query.Encode(), nil
}
