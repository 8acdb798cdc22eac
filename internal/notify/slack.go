// Package notify talks to Slack for Slack Connect onboarding and partner alerts.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// ErrDisabled is returned by every call when no bot token is configured.
var ErrDisabled = errors.New("slack is not configured")

// Notifier is the Slack surface the services depend on.
type Notifier interface {
	// CreateSharedChannel creates a private channel and returns its ID.
	CreateSharedChannel(ctx context.Context, name string) (string, error)
	// InviteOwner adds the configured Stereos owner to a channel.
	InviteOwner(ctx context.Context, channelID string) error
	// InviteEmail sends a Slack Connect invitation to an external address.
	InviteEmail(ctx context.Context, channelID, email string) error
	// Post sends a plain text message to a channel.
	Post(ctx context.Context, channelID, text string) error
}

// slackAPI is the subset of *slack.Client used here.
type slackAPI interface {
	CreateConversationContext(ctx context.Context, params slack.CreateConversationParams) (*slack.Channel, error)
	InviteUsersToConversationContext(ctx context.Context, channelID string, users ...string) (*slack.Channel, error)
	InviteSharedEmailsToConversationContext(ctx context.Context, channelID string, emails ...string) (string, bool, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Slack implements Notifier with the Slack Web API.
type Slack struct {
	api         slackAPI
	ownerUserID string
	log         zerolog.Logger
}

var _ Notifier = (*Slack)(nil)

// NewSlack returns a Slack notifier. An empty token yields a notifier whose calls fail with ErrDisabled.
func NewSlack(token, ownerUserID string, httpClient *http.Client, log zerolog.Logger) *Slack {
	s := &Slack{ownerUserID: ownerUserID, log: log.With().Str("component", "slack").Logger()}
	if token != "" {
		s.api = slack.New(token, slack.OptionHTTPClient(httpClient))
	}
	return s
}

func (s *Slack) CreateSharedChannel(ctx context.Context, name string) (string, error) {
	if s.api == nil {
		return "", ErrDisabled
	}
	ch, err := s.api.CreateConversationContext(ctx, slack.CreateConversationParams{ChannelName: name, IsPrivate: true})
	if err != nil && err.Error() == "name_taken" {
		retry := truncate(name, maxChannelName-5) + "-" + uuid.NewString()[:4]
		s.log.Info().Str("channel", name).Str("retry_as", retry).Msg("channel name taken")
		ch, err = s.api.CreateConversationContext(ctx, slack.CreateConversationParams{ChannelName: retry, IsPrivate: true})
	}
	if err != nil {
		return "", fmt.Errorf("create channel %s: %w", name, err)
	}
	s.log.Info().Str("channel_id", ch.ID).Str("channel", ch.Name).Msg("slack channel created")
	return ch.ID, nil
}

func (s *Slack) InviteOwner(ctx context.Context, channelID string) error {
	if s.api == nil {
		return ErrDisabled
	}
	if s.ownerUserID == "" {
		return errors.New("slack owner user id is not configured")
	}
	if _, err := s.api.InviteUsersToConversationContext(ctx, channelID, s.ownerUserID); err != nil {
		return fmt.Errorf("invite owner to %s: %w", channelID, err)
	}
	return nil
}

func (s *Slack) InviteEmail(ctx context.Context, channelID, email string) error {
	if s.api == nil {
		return ErrDisabled
	}
	if _, _, err := s.api.InviteSharedEmailsToConversationContext(ctx, channelID, email); err != nil {
		return fmt.Errorf("send shared invite to %s: %w", channelID, err)
	}
	return nil
}

func (s *Slack) Post(ctx context.Context, channelID, text string) error {
	if s.api == nil {
		return ErrDisabled
	}
	if _, _, err := s.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("post to %s: %w", channelID, err)
	}
	s.log.Debug().Str("channel_id", channelID).Msg("slack message sent")
	return nil
}

const maxChannelName = 80

var nonChannelChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// ChannelName builds the Slack Connect channel name for a company: "stereos-" plus a lowercase slug.
// Slack allows lowercase letters, digits, hyphens and underscores, up to 80 characters.
func ChannelName(company string) string {
	slug := nonChannelChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(company)), "-")
	slug = strings.Trim(slug, "-_")
	if slug == "" {
		slug = "guest"
	}
	return strings.TrimRight(truncate("stereos-"+slug, maxChannelName), "-_")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
