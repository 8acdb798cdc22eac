package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"stereos/internal/mail"
	"stereos/internal/model"
	"stereos/internal/notify"
)

// SlackConnectService opens shared Slack channels with prospects.
type SlackConnectService interface {
	// Connect runs every onboarding step best effort and reports which ones succeeded.
	// A failed channel creation skips the invites and goes straight to the intro email.
	Connect(ctx context.Context, req model.SlackConnectRequest) (*model.SlackConnectResult, error)
}

type slackConnectService struct {
	notifier notify.Notifier
	mailer   mail.Sender
	baseURL  string
	log      zerolog.Logger
}

// NewSlackConnectService constructs a SlackConnectService.
func NewSlackConnectService(notifier notify.Notifier, mailer mail.Sender, baseURL string, log zerolog.Logger) SlackConnectService {
	return &slackConnectService{
		notifier: notifier,
		mailer:   mailer,
		baseURL:  baseURL,
		log:      log.With().Str("component", "slack_connect").Logger(),
	}
}

func (s *slackConnectService) Connect(ctx context.Context, req model.SlackConnectRequest) (*model.SlackConnectResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)

	log := s.log.With().Str("company", req.Company).Logger()
	res := &model.SlackConnectResult{}

	channelID, err := s.notifier.CreateSharedChannel(ctx, notify.ChannelName(req.Company))
	if err != nil {
		log.Warn().Err(err).Msg("slack channel creation failed, falling back to email")
	} else {
		res.ChannelID = channelID

		if err := s.notifier.InviteOwner(ctx, channelID); err != nil {
			log.Warn().Err(err).Str("channel_id", channelID).Msg("owner invite failed")
		}
		if err := s.notifier.InviteEmail(ctx, channelID, req.Email); err != nil {
			log.Warn().Err(err).Str("channel_id", channelID).Msg("shared invite failed")
		} else {
			res.Invited = true
		}
		if err := s.notifier.Post(ctx, channelID, introText(req)); err != nil {
			log.Warn().Err(err).Str("channel_id", channelID).Msg("intro message failed")
		}
	}

	msg, err := mail.SlackConnectIntro(req.Email, mail.SlackConnectData{
		Name:           req.Name,
		Company:        req.Company,
		Message:        req.Message,
		ChannelCreated: res.ChannelID != "",
		BaseURL:        s.baseURL,
	})
	if err == nil {
		err = s.mailer.Send(ctx, msg)
	}
	if err != nil {
		log.Warn().Err(err).Msg("intro email failed")
	} else {
		res.Emailed = true
	}

	return res, nil
}

func introText(req model.SlackConnectRequest) string {
	text := fmt.Sprintf("Welcome %s from %s! This channel connects your team with Stereos.", req.Name, req.Company)
	if req.Message != "" {
		text += "\n> " + strings.ReplaceAll(req.Message, "\n", "\n> ")
	}
	return text
}
