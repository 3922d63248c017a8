// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

// SecretBuffer owns a byte slice holding key material. Destroy overwrites
// the memory with zeros; after that Bytes returns nil.
//
// The buffer is not safe for concurrent use and must not be copied by value
// once handed out. Callers that need the raw bytes should use them within the
// lifetime of the buffer and never keep the slice.
type SecretBuffer struct {
	b []byte
}

// NewSecretBuffer takes ownership of b. The caller must not use b afterwards.
func NewSecretBuffer(b []byte) *SecretBuffer {
	return &SecretBuffer{b: b}
}

// SecretBufferFromString copies s into a fresh buffer. The string itself is
// immutable and cannot be wiped, so callers should drop it as soon as possible.
func SecretBufferFromString(s string) *SecretBuffer {
	return &SecretBuffer{b: []byte(s)}
}

// Bytes returns the underlying slice, or nil after Destroy.
func (s *SecretBuffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len returns the number of bytes held.
func (s *SecretBuffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Destroy wipes the buffer. It is safe to call more than once and on nil.
func (s *SecretBuffer) Destroy() {
	if s == nil {
		return
	}
	Wipe(s.b)
	s.b = nil
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	clear(b)
}
