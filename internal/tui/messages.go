package tui

import (
	"time"

	"github.com/MKhiriev/aegis-totp/models"
)

type unlockDoneMsg struct {
	entries []models.Entry
	err     error
}

type tickMsg time.Time

type copiedMsg struct {
	code string
}

type copyFailedMsg struct {
	err error
}

type clipboardExpiredMsg struct {
	code string
}

type clipboardClearedMsg struct {
	err error
}

type clearStatusMsg struct{}
