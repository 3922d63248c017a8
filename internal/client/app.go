package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/aegis-totp/internal/app"
	"github.com/MKhiriev/aegis-totp/internal/config"
	"github.com/MKhiriev/aegis-totp/internal/crypto"
	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/service"
	"github.com/MKhiriev/aegis-totp/internal/tui"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger

	passwords PasswordReader
	out       io.Writer
	now       func() time.Time
}

// Option customises an [App].
type Option func(*App)

// WithPasswordReader replaces the terminal prompt.
func WithPasswordReader(r PasswordReader) Option {
	return func(a *App) { a.passwords = r }
}

// WithOutput redirects the printed code.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

func NewApp(cfg *config.ClientConfig, services *service.ClientServices, ui UI, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:       cfg,
		services:  services,
		ui:        ui,
		logger:    logger,
		passwords: NewTerminalPasswordReader(os.Stdin, os.Stderr),
		out:       os.Stdout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run starts the terminal UI, or prints the code of the configured entry
// when the client runs non-interactively.
//
// Every run gets a child logger tagged with a session_id, attached to ctx so
// that services log through [logger.FromContext].
func (a *App) Run(ctx context.Context) error {
	sessionID := uuid.NewString()
	l := a.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("session_id", sessionID)
	})
	ctx = l.WithContext(ctx)

	if a.cfg.Interactive() {
		l.Info().Str("vault", a.cfg.Vault.Path).Msg("starting terminal ui")
		err := a.ui.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			l.Info().Msg("user quit before unlocking")
			return nil
		}
		return err
	}

	return a.printCode(ctx)
}

func (a *App) printCode(ctx context.Context) error {
	log := logger.FromContext(ctx)

	password, err := a.password()
	if err != nil {
		return err
	}
	defer password.Destroy()

	db, err := a.services.VaultService.Unlock(ctx, a.cfg.Vault.Path, password)
	if err != nil {
		return err
	}

	entries := a.services.OTPService.TOTPEntries(db)
	if len(entries) == 0 {
		log.Info().Int("entries", len(db.Entries)).Msg("no totp entries in vault")
		_, err = fmt.Fprintln(a.out, app.MsgNoTOTPEntries)
		return err
	}

	matches := a.services.OTPService.Search(entries, a.cfg.Entry)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", ErrNoMatchingEntry, a.cfg.Entry)
	}

	entry := matches[0]
	log.Debug().
		Str("entry", entry.UUID.String()).
		Int("matches", len(matches)).
		Msg("entry selected")

	code, err := a.services.OTPService.Code(entry, a.now())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "%s, (%ds left)\n", code.Value, code.Remaining)
	return err
}

func (a *App) password() (*crypto.SecretBuffer, error) {
	if a.cfg.Password != "" {
		return crypto.SecretBufferFromString(a.cfg.Password), nil
	}

	raw, err := a.passwords.ReadPassword("Password: ")
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyPassword
	}
	return crypto.NewSecretBuffer(raw), nil
}
