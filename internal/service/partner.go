package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stereos/internal/mail"
	"stereos/internal/model"
	"stereos/internal/notify"
	"stereos/internal/repository"
)

// PartnerService handles partner program applications.
type PartnerService interface {
	// Apply stores the application, then alerts Slack and emails the applicant on a best-effort basis.
	Apply(ctx context.Context, app model.PartnerApplication) (*model.PartnerApplication, error)
}

// PartnerOptions configures NewPartnerService.
type PartnerOptions struct {
	// SlackChannelID receives new application alerts; empty disables the alert.
	SlackChannelID string
	BaseURL        string
}

type partnerService struct {
	repo     repository.PartnerRepository
	notifier notify.Notifier
	mailer   mail.Sender
	opts     PartnerOptions
	log      zerolog.Logger
	now      func() time.Time
}

// NewPartnerService constructs a PartnerService.
func NewPartnerService(repo repository.PartnerRepository, notifier notify.Notifier, mailer mail.Sender, opts PartnerOptions, log zerolog.Logger) PartnerService {
	return &partnerService{
		repo:     repo,
		notifier: notifier,
		mailer:   mailer,
		opts:     opts,
		log:      log.With().Str("component", "partners").Logger(),
		now:      time.Now,
	}
}

func (s *partnerService) Apply(ctx context.Context, app model.PartnerApplication) (*model.PartnerApplication, error) {
	app.ID = uuid.NewString()
	app.Name = strings.TrimSpace(app.Name)
	app.Email = normalizeEmail(app.Email)
	app.Company = strings.TrimSpace(app.Company)
	app.Website = strings.TrimSpace(app.Website)
	app.Message = strings.TrimSpace(app.Message)
	app.CreatedAt = s.now().UTC()

	stored, err := s.repo.Create(ctx, &app)
	if err != nil {
		return nil, fmt.Errorf("save partner application: %w", err)
	}
	log := s.log.With().Str("application_id", stored.ID).Logger()

	if s.opts.SlackChannelID != "" {
		text := fmt.Sprintf("New %s partner application from %s (%s) at %s", stored.PartnerType, stored.Name, stored.Email, stored.Company)
		if stored.Website != "" {
			text += "\n" + stored.Website
		}
		if err := s.notifier.Post(ctx, s.opts.SlackChannelID, text); err != nil {
			log.Warn().Err(err).Msg("partner slack alert failed")
		}
	}

	msg, err := mail.PartnerReceived(stored.Email, mail.PartnerReceivedData{
		Name:        stored.Name,
		Company:     stored.Company,
		PartnerType: string(stored.PartnerType),
		BaseURL:     s.opts.BaseURL,
	})
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		log.Warn().Err(err).Msg("partner confirmation email failed")
	}

	return stored, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
