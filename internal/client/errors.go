package client

import (
	"errors"

	"github.com/MKhiriev/aegis-totp/internal/app"
)

var (
	// ErrNoMatchingEntry is returned when the query matches no TOTP entry.
	ErrNoMatchingEntry = errors.New(app.MsgNoMatchingEntry)
	// ErrEmptyPassword is returned when the prompt is answered with nothing.
	ErrEmptyPassword = errors.New(app.MsgPasswordRequired)
)
