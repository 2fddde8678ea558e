package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"xestetik/internal/models"
	"xestetik/internal/repositories"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

var ErrLeadRejected = errors.New("lead rejected")

// Messages shown to the visitor after a submission.
const (
	LeadMissingFieldsMessage = "Uzupełnij wymagane pola: imię, e-mail oraz wiadomość."
	LeadInvalidEmailMessage  = "Podaj poprawny adres e-mail."
	LeadConsentMessage       = "Zaznacz zgodę na kontakt, abyśmy mogli odpowiedzieć na wiadomość."
	LeadSavedMessage         = "Dziękujemy! Wiadomość została zapisana. Skontaktujemy się najszybciej jak to możliwe."
)

const exportPageSize = 500

// LeadValidationError explains why a submission was rejected. It wraps
// ErrLeadRejected.
type LeadValidationError struct {
	Message string
	Fields  []string
}

func (e *LeadValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrLeadRejected, strings.Join(e.Fields, ", "))
}

func (e *LeadValidationError) Unwrap() error {
	return ErrLeadRejected
}

type LeadService interface {
	// Submit validates the form and, when it passes, writes exactly one row.
	// Rejected submissions return a *LeadValidationError and write nothing.
	Submit(ctx context.Context, sub *models.LeadSubmission) (*models.Lead, error)
	List(ctx context.Context, limit, offset int) ([]*models.Lead, error)
	Count(ctx context.Context) (int64, error)
	// ExportCSV writes every lead, newest first, as CSV and returns the row count.
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
}

type leadService struct {
	leadRepo repositories.LeadRepository
	now      func() time.Time
}

func NewLeadService(leadRepo repositories.LeadRepository) LeadService {
	return &leadService{
		leadRepo: leadRepo,
		now:      time.Now,
	}
}

func (s *leadService) Submit(ctx context.Context, sub *models.LeadSubmission) (*models.Lead, error) {
	lead := &models.Lead{
		Name:       strings.TrimSpace(sub.Name),
		Email:      strings.TrimSpace(sub.Email),
		Phone:      strings.TrimSpace(sub.Phone),
		Message:    strings.TrimSpace(sub.Message),
		SourcePath: strings.TrimSpace(sub.SourcePath),
	}

	if err := validateLead(lead, sub.Consent); err != nil {
		zap.L().Info("lead rejected", zap.Strings("fields", err.Fields), zap.String("source", lead.SourcePath))
		return nil, err
	}

	lead.CreatedAt = s.now().UTC().Truncate(time.Second)
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	zap.L().Info("lead saved", zap.Int64("id", lead.ID), zap.String("source", lead.SourcePath))
	return lead, nil
}

func validateLead(lead *models.Lead, consent string) *LeadValidationError {
	var missing []string
	if lead.Name == "" {
		missing = append(missing, "name")
	}
	if lead.Email == "" {
		missing = append(missing, "email")
	}
	if lead.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &LeadValidationError{Message: LeadMissingFieldsMessage, Fields: missing}
	}
	if !strings.Contains(lead.Email, "@") {
		return &LeadValidationError{Message: LeadInvalidEmailMessage, Fields: []string{"email"}}
	}
	if !consentGiven(consent) {
		return &LeadValidationError{Message: LeadConsentMessage, Fields: []string{"consent"}}
	}
	return nil
}

func consentGiven(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func (s *leadService) List(ctx context.Context, limit, offset int) ([]*models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.leadRepo.List(ctx, limit, offset)
}

func (s *leadService) Count(ctx context.Context) (int64, error) {
	return s.leadRepo.Count(ctx)
}

func (s *leadService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	var all []*models.Lead
	for offset := 0; ; offset += exportPageSize {
		page, err := s.leadRepo.List(ctx, exportPageSize, offset)
		if err != nil {
			return 0, fmt.Errorf("failed to read leads: %w", err)
		}
		all = append(all, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	if err := gocsv.Marshal(all, w); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}
	return len(all), nil
}
