package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type passwordModel struct {
	vaultPath  string
	input      textinput.Model
	spinner    spinner.Model
	submitting bool
	attempts   int
	errMsg     string
}

func newPasswordModel(vaultPath string) passwordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 1024
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return passwordModel{
		vaultPath: vaultPath,
		input:     input,
		spinner:   s,
	}
}

func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString("Vault     ")
	b.WriteString(filepath.Base(m.vaultPath))
	b.WriteString("\n\n")
	b.WriteString("Password  [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Unlocking...\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		msg := m.errMsg
		if m.attempts > 1 {
			msg = fmt.Sprintf("%s (attempt %d)", msg, m.attempts)
		}
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: quit")
}
