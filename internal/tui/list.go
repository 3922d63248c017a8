package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/aegis-totp/internal/app"
	"github.com/MKhiriev/aegis-totp/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const listPageSize = 15

type listModel struct {
	all     []models.Entry
	visible []models.Entry
	idx     int
	filter  textinput.Model
}

func newListModel(entries []models.Entry) listModel {
	filter := textinput.New()
	filter.Placeholder = "type to search"
	filter.Prompt = "/ "
	filter.Width = 40
	filter.Focus()

	return listModel{
		all:     entries,
		visible: entries,
		filter:  filter,
	}
}

func (m listModel) current() (models.Entry, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.Entry{}, false
	}
	return m.visible[m.idx], true
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	switch {
	case len(m.all) == 0:
		b.WriteString(app.MsgNoTOTPEntries)
		b.WriteString("\n")
	case len(m.visible) == 0:
		b.WriteString("No matches\n")
	default:
		start, end := visibleWindow(m.idx, len(m.visible), listPageSize)
		for i := start; i < end; i++ {
			label := fitText(m.visible[i].Label(), 60)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + label))
			} else {
				b.WriteString("  " + label)
			}
			b.WriteString("\n")
		}
		if len(m.visible) > listPageSize {
			b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d", m.idx+1, len(m.visible))))
			b.WriteString("\n")
		}
	}

	return renderPage("TOTP ENTRIES", strings.TrimRight(b.String(), "\n"), "↑/↓: move │ enter: show code │ esc: clear / quit")
}
