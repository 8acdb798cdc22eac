package content

import (
	"context"
	"errors"
	"path"
	"sort"

	"stereos/internal/model"
)

func guideFile(slug string) string {
	return path.Join(guidesDir, slug+markdownExt)
}

// GetGuide loads guides/<slug>.md with its body rendered to HTML.
func (s *Source) GetGuide(ctx context.Context, slug string) (*model.Guide, error) {
	if !ValidSlug(slug) {
		return nil, ErrNotFound
	}

	file := guideFile(slug)
	var m guideMatter
	body, err := s.readMatter(ctx, file, &m)
	if err != nil {
		return nil, err
	}

	g := newGuide(slug, m)
	g.Date = s.date(file, m.Date)
	if err := s.render(file, renderPair{"body", string(body), &g.Content}); err != nil {
		return nil, err
	}
	return g, nil
}

func newGuide(slug string, m guideMatter) *model.Guide {
	return &model.Guide{
		Slug:            slug,
		Title:           m.Title,
		Description:     m.Description,
		Image:           m.Image,
		Keywords:        m.Keywords.values(),
		Topic:           m.Topic,
		RelatedConcepts: m.RelatedConcepts.values(),
	}
}

// ListGuides returns every parseable guide, newest first. Unparseable files are skipped.
func (s *Source) ListGuides(ctx context.Context) ([]model.GuideSummary, error) {
	slugs, err := s.markdownSlugs(ctx, guidesDir)
	if err != nil {
		return nil, err
	}

	out := make([]model.GuideSummary, 0, len(slugs))
	for _, slug := range slugs {
		file := guideFile(slug)
		var m guideMatter
		if _, err := s.readMatter(ctx, file, &m); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		g := newGuide(slug, m)
		g.Date = s.date(file, m.Date)
		out = append(out, g.Summary())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return byDateDesc(out[i].Date, out[j].Date, out[i].Slug, out[j].Slug)
	})
	return out, nil
}

// GuidesByTopic returns the guides whose topic is the given hub slug.
func (s *Source) GuidesByTopic(ctx context.Context, topic string) ([]model.GuideSummary, error) {
	all, err := s.ListGuides(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.GuideSummary, 0)
	for _, g := range all {
		if g.Topic == topic {
			out = append(out, g)
		}
	}
	return out, nil
}

// RelatedGuides resolves the bidirectional related set of a guide.
func (s *Source) RelatedGuides(ctx context.Context, slug string) ([]model.GuideSummary, error) {
	g, err := s.GetGuide(ctx, slug)
	if err != nil {
		return nil, err
	}
	all, err := s.ListGuides(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(g.Slug, g.RelatedConcepts, all), nil
}
