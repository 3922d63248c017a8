package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/aegis-totp/internal/logger"
	"github.com/MKhiriev/aegis-totp/internal/otp"
	"github.com/MKhiriev/aegis-totp/models"
	"github.com/sahilm/fuzzy"
)

type clientOTPService struct {
	logger *logger.Logger
}

func NewClientOTPService(logger *logger.Logger) ClientOTPService {
	return &clientOTPService{logger: logger}
}

func (s *clientOTPService) TOTPEntries(db *models.Database) []models.Entry {
	if db == nil {
		return nil
	}

	entries := otp.FilterTOTP(db.Entries)
	if skipped := len(db.Entries) - len(entries); skipped > 0 {
		s.logger.Debug().Int("skipped", skipped).Msg("entries of unsupported types hidden")
	}
	return entries
}

// entryLabels adapts entries to fuzzy.Source.
type entryLabels []models.Entry

func (e entryLabels) String(i int) string { return e[i].Label() }
func (e entryLabels) Len() int            { return len(e) }

func (s *clientOTPService) Search(entries []models.Entry, query string) []models.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, entryLabels(entries))
	found := make([]models.Entry, 0, len(matches))
	for _, m := range matches {
		found = append(found, entries[m.Index])
	}
	return found
}

func (s *clientOTPService) Code(entry models.Entry, now time.Time) (otp.Code, error) {
	code, err := otp.CurrentCode(entry, now)
	if err != nil {
		s.logger.Warn().Err(err).Str("entry", entry.UUID.String()).Msg("error generating code")
		return otp.Code{}, fmt.Errorf("generate code: %w", err)
	}
	return code, nil
}

func (s *clientOTPService) KeyURI(entry models.Entry) (string, error) {
	uri, err := otp.KeyURI(entry)
	if err != nil {
		s.logger.Warn().Err(err).Str("entry", entry.UUID.String()).Msg("error building key uri")
		return "", fmt.Errorf("key uri: %w", err)
	}
	return uri, nil
}
