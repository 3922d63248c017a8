// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/aegis-totp/internal/app"
	"github.com/MKhiriev/aegis-totp/internal/otp"
	"github.com/MKhiriev/aegis-totp/models"
)

const countdownWidth = 20

type detailModel struct {
	entry  models.Entry
	code   otp.Code
	err    error
	status string
	showQR bool
	qr     string
}

// formatCode splits even codes of six or more digits in two halves.
func formatCode(code string) string {
	if len(code) < 6 || len(code)%2 != 0 {
		return code
	}
	half := len(code) / 2
	return code[:half] + " " + code[half:]
}

func countdownBar(remaining, period, width int) string {
	if period <= 0 || width <= 0 {
		return ""
	}
	filled := remaining * width / period
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func (m detailModel) View() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render(app.Humanize(m.err)))
		b.WriteString("\n")
	} else {
		b.WriteString(codeStyle.Render(formatCode(m.code.Value)))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "%s %ds left\n", countdownBar(m.code.Remaining, m.code.Period, countdownWidth), m.code.Remaining)
	}

	algo := m.entry.Info.Algo
	if algo == "" {
		algo = models.SHA1
	}
	fmt.Fprintf(&b, "\n%s · %d digits · %ds\n", strings.ToUpper(string(algo)), m.entry.Info.Digits, m.entry.Info.Period)

	if note := strings.TrimSpace(m.entry.Note); note != "" {
		b.WriteString("Note: ")
		b.WriteString(note)
		b.WriteString("\n")
	}

	if m.showQR {
		b.WriteString("\n")
		b.WriteString(m.qr)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage(m.entry.Label(), strings.TrimRight(b.String(), "\n"), "c: copy │ r: qr │ i: info │ esc: back │ q: quit")
}
