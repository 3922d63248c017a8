package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/aegis-totp/internal/app"
	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/service"
	"github.com/MKhiriev/aegis-totp/internal/vault"
	"github.com/MKhiriev/aegis-totp/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenPassword screen = iota
	screenList
	screenDetail
	screenBuildInfo
)

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	opts      Options
	clipboard Clipboard
	logger    *logger.Logger

	currentScreen screen
	infoReturn    screen

	password passwordModel
	list     listModel
	detail   detailModel

	showError    bool
	errorOverlay errorOverlayModel

	// copied is the code placed in the clipboard and not yet cleared.
	copied string
	err    error
}

func newAppModel(ctx context.Context, services *service.ClientServices, opts Options, clip Clipboard, logger *logger.Logger) appModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Second
	}

	return appModel{
		ctx:           ctx,
		services:      services,
		opts:          opts,
		clipboard:     clip,
		logger:        logger,
		currentScreen: screenPassword,
		password:      newPasswordModel(opts.VaultPath),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, cmdTick(m.opts.RefreshInterval))
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m.quit()
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case unlockDoneMsg:
		return m.handleUnlock(msg)
	case tickMsg:
		if m.currentScreen == screenDetail {
			m.refreshCode()
		}
		return m, cmdTick(m.opts.RefreshInterval)
	case copiedMsg:
		m.copied = msg.code
		if m.opts.ClipboardClearAfter > 0 {
			m.detail.status = fmt.Sprintf("Copied! Clipboard clears in %s", m.opts.ClipboardClearAfter)
			return m, cmdExpireClipboard(msg.code, m.opts.ClipboardClearAfter)
		}
		m.detail.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Msg("error copying code to clipboard")
		m.showErrorf(app.MsgClipboardUnavailable)
		return m, nil
	case clipboardExpiredMsg:
		if msg.code != m.copied {
			return m, nil
		}
		m.copied = ""
		return m, m.cmdClearClipboard(msg.code)
	case clipboardClearedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("error clearing clipboard")
			return m, nil
		}
		m.detail.status = "Clipboard cleared"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenPassword:
		return m.updatePassword(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenBuildInfo:
		return m.updateBuildInfo(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenPassword:
		body = m.password.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenBuildInfo:
		body = renderBuildInfoWindow(m.services.AppInfoService.BuildInfo())
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}
	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// quit leaves the program. Leaving before the vault is unlocked is
// reported as ErrUserQuit.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	if m.currentScreen == screenPassword {
		m.err = ErrUserQuit
	}
	return m, tea.Quit
}

func (m appModel) updatePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m.quit()
		case key.Matches(msg, keys.enter):
			if m.password.submitting {
				return m, nil
			}
			pass := m.password.input.Value()
			if pass == "" {
				m.password.errMsg = app.MsgPasswordRequired
				return m, nil
			}
			m.password.input.Reset()
			m.password.errMsg = ""
			m.password.submitting = true
			return m, tea.Batch(m.password.spinner.Tick, m.cmdUnlock(pass))
		}
		if m.password.submitting {
			return m, nil
		}
	case spinner.TickMsg:
		if !m.password.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.password.spinner, cmd = m.password.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.password.input, cmd = m.password.input.Update(msg)
	return m, cmd
}

func (m appModel) handleUnlock(msg unlockDoneMsg) (tea.Model, tea.Cmd) {
	m.password.submitting = false

	if msg.err != nil {
		if errors.Is(msg.err, vault.ErrWrongPasswordOrNoMatchingSlot) {
			m.password.attempts++
			m.password.errMsg = app.Humanize(msg.err)
			return m, nil
		}
		m.err = msg.err
		return m, tea.Quit
	}

	m.logger.Debug().Int("entries", len(msg.entries)).Msg("entry list ready")
	m.list = newListModel(msg.entries)
	m.currentScreen = screenList
	return m, textinput.Blink
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
			return m, nil
		case key.Matches(keyMsg, keys.down):
			if m.list.idx < len(m.list.visible)-1 {
				m.list.idx++
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			entry, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.openDetail(entry)
			return m, nil
		case key.Matches(keyMsg, keys.esc):
			if m.list.filter.Value() == "" {
				return m.quit()
			}
			m.list.filter.Reset()
			m.applyFilter()
			return m, nil
		}
	}

	before := m.list.filter.Value()
	var cmd tea.Cmd
	m.list.filter, cmd = m.list.filter.Update(msg)
	if m.list.filter.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m *appModel) applyFilter() {
	m.list.visible = m.services.OTPService.Search(m.list.all, m.list.filter.Value())
	m.list.idx = 0
}

func (m *appModel) openDetail(entry models.Entry) {
	m.detail = detailModel{entry: entry}
	m.refreshCode()
	m.currentScreen = screenDetail
}

func (m *appModel) refreshCode() {
	m.detail.code, m.detail.err = m.services.OTPService.Code(m.detail.entry, m.opts.Now())
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = detailModel{}
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	case key.Matches(keyMsg, keys.copy):
		if m.clipboard == nil {
			m.showErrorf(app.MsgClipboardUnavailable)
			return m, nil
		}
		m.refreshCode()
		if m.detail.err != nil {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.clipboard, m.detail.code.Value)
	case key.Matches(keyMsg, keys.qr):
		if m.detail.showQR {
			m.detail.showQR = false
			m.detail.qr = ""
			return m, nil
		}
		uri, err := m.services.OTPService.KeyURI(m.detail.entry)
		if err != nil {
			m.showErrorf(app.Humanize(err))
			return m, nil
		}
		qr, err := renderQR(uri)
		if err != nil {
			m.logger.Warn().Err(err).Msg("error rendering qr code")
			m.showErrorf(err.Error())
			return m, nil
		}
		m.detail.qr = qr
		m.detail.showQR = true
	case key.Matches(keyMsg, keys.info):
		m.infoReturn = m.currentScreen
		m.currentScreen = screenBuildInfo
	}
	return m, nil
}

func (m appModel) updateBuildInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = m.infoReturn
		if m.currentScreen == screenDetail {
			m.refreshCode()
		}
	case key.Matches(keyMsg, keys.quit):
		return m.quit()
	}
	return m, nil
}

func (m appModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	path := m.opts.VaultPath

	return func() tea.Msg {
		buf := crypto.SecretBufferFromString(password)
		defer buf.Destroy()

		db, err := services.VaultService.Unlock(ctx, path, buf)
		if err != nil {
			return unlockDoneMsg{err: err}
		}
		return unlockDoneMsg{entries: services.OTPService.TOTPEntries(db)}
	}
}

func (m appModel) cmdClearClipboard(code string) tea.Cmd {
	clip := m.clipboard
	return func() tea.Msg {
		return clipboardClearedMsg{err: clearIfUnchanged(clip, code)}
	}
}

func cmdCopyToClipboard(clip Clipboard, code string) tea.Cmd {
	return func() tea.Msg {
		if err := clip.WriteAll(code); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{code: code}
	}
}

func cmdExpireClipboard(code string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clipboardExpiredMsg{code: code}
	})
}

func cmdTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
