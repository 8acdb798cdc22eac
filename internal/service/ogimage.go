package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stereos/internal/content"
	"stereos/internal/ogimage"
)

const (
	defaultCardTitle = "Stereos"
	maxCardText      = 200
)

// TopicCardQuery is the query string of an Open Graph image request.
type TopicCardQuery struct {
	Title    string
	Subtitle string
	Hub      string
}

// OGImageService renders Open Graph images for topic pages.
type OGImageService interface {
	// RenderTopicCard writes a PNG card to w. Missing text falls back to the hub's
	// pillar title, then to the title-cased hub slug, then to "Stereos".
	RenderTopicCard(ctx context.Context, w io.Writer, q TopicCardQuery) error
}

type ogImageService struct {
	src      *content.Source
	renderer *ogimage.Renderer
}

// NewOGImageService constructs an OGImageService.
func NewOGImageService(src *content.Source, renderer *ogimage.Renderer) OGImageService {
	return &ogImageService{
		src:      src,
		renderer: renderer,
	}
}

func (s *ogImageService) RenderTopicCard(ctx context.Context, w io.Writer, q TopicCardQuery) error {
	card, err := s.topicCard(ctx, q)
	if err != nil {
		return err
	}
	return s.renderer.Render(w, card)
}

func (s *ogImageService) topicCard(ctx context.Context, q TopicCardQuery) (ogimage.Card, error) {
	card := ogimage.Card{
		Title:    clip(q.Title),
		Subtitle: clip(q.Subtitle),
	}

	hub := strings.TrimSpace(q.Hub)
	if hub != "" {
		// Casers keep state, so each call gets its own.
		hubTitle := cases.Title(language.English).String(strings.ReplaceAll(hub, "-", " "))
		h, err := s.src.GetTopicHub(ctx, hub)
		switch {
		case err == nil:
			hubTitle = h.Title
			if card.Subtitle == "" && card.Title == "" {
				card.Subtitle = clip(h.Description)
			}
		case !errors.Is(err, content.ErrNotFound):
			return ogimage.Card{}, err
		}
		card.Label = clip(hubTitle)
		if card.Title == "" {
			card.Title = card.Label
		}
	}

	if card.Title == "" {
		card.Title = defaultCardTitle
	}
	return card, nil
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxCardText {
		return string(r[:maxCardText])
	}
	return s
}
