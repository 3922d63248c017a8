package tui

import (
	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard as used by the code view.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

// newSystemClipboard returns nil when copying is disabled or no clipboard
// utility is available.
func newSystemClipboard(enabled bool) Clipboard {
	if !enabled || clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// clearIfUnchanged empties the clipboard only if it still holds code, so
// that something the user copied afterwards survives.
func clearIfUnchanged(c Clipboard, code string) error {
	if c == nil {
		return nil
	}

	current, err := c.ReadAll()
	if err != nil {
		return err
	}
	if current != code {
		return nil
	}
	return c.WriteAll("")
}
