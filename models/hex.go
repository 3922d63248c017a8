// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HexBytes is a byte slice stored as a lowercase hex string in JSON.
type HexBytes []byte

// MarshalJSON encodes b as a hex string.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

// UnmarshalJSON decodes a hex string. JSON null is rejected so that a
// required field can never silently become empty.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hex field: %w", err)
	}
	if s == nil {
		return fmt.Errorf("hex field: null value")
	}

	decoded, err := hex.DecodeString(*s)
	if err != nil {
		return fmt.Errorf("hex field: %w", err)
	}
	*b = decoded
	return nil
}
