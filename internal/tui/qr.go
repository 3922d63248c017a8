package tui

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// renderQR draws content as a QR code made of half-block characters, two
// modules per text row, dark on light.
func renderQR(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}
	return q.ToSmallString(false), nil
}
