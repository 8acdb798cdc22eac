package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"stereos/internal/model"
)

func pillarPath(hub string) string {
	return path.Join(topicsDir, hub, pillarFile)
}

func subpageFile(hub, slug string) string {
	return path.Join(topicsDir, hub, slug+markdownExt)
}

// ListTopicHubs returns every hub directory that has a parseable pillar.md, ordered by slug.
func (s *Source) ListTopicHubs(ctx context.Context) ([]model.TopicHubSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, topicsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.TopicHubSummary{}, nil
		}
		return nil, fmt.Errorf("list %s: %w", topicsDir, err)
	}

	out := make([]model.TopicHubSummary, 0, len(entries))
	for _, e := range entries {
		hub := e.Name()
		if !e.IsDir() || !ValidSlug(hub) {
			continue
		}

		var m hubMatter
		if _, err := s.readMatter(ctx, pillarPath(hub), &m); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}

		slugs, err := s.markdownSlugs(ctx, path.Join(topicsDir, hub), pillarFile)
		if err != nil {
			return nil, err
		}

		out = append(out, model.TopicHubSummary{
			Slug:         hub,
			Title:        m.Title,
			Description:  m.Description,
			Image:        m.Image,
			Keywords:     m.Keywords.values(),
			SubpageCount: len(slugs),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// GetTopicHub loads topics/<hub>/pillar.md, renders its four sections and lists the hub's subpages.
func (s *Source) GetTopicHub(ctx context.Context, hub string) (*model.TopicHub, error) {
	if !ValidSlug(hub) {
		return nil, ErrNotFound
	}

	file := pillarPath(hub)
	var m hubMatter
	body, err := s.readMatter(ctx, file, &m)
	if err != nil {
		return nil, err
	}

	h := &model.TopicHub{
		Slug:        hub,
		Title:       m.Title,
		Description: m.Description,
		Image:       m.Image,
		Keywords:    m.Keywords.values(),
	}
	err = s.render(file,
		renderPair{"body", string(body), &h.Content},
		renderPair{"introduction", m.Introduction, &h.Introduction},
		renderPair{"keyConcepts", m.KeyConcepts, &h.KeyConcepts},
		renderPair{"bestPractices", m.BestPractices, &h.BestPractices},
		renderPair{"gettingStarted", m.GettingStarted, &h.GettingStarted},
	)
	if err != nil {
		return nil, err
	}

	h.Subpages, err = s.ListTopicSubpages(ctx, hub)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// GetTopicSubpage loads topics/<hub>/<slug>.md. The pillar file is not a subpage.
func (s *Source) GetTopicSubpage(ctx context.Context, hub, slug string) (*model.TopicSubpage, error) {
	if !ValidSlug(hub) || !ValidSlug(slug) || slug+markdownExt == pillarFile {
		return nil, ErrNotFound
	}

	file := subpageFile(hub, slug)
	var m subpageMatter
	body, err := s.readMatter(ctx, file, &m)
	if err != nil {
		return nil, err
	}

	p := newSubpage(hub, slug, m)
	p.Date = s.date(file, m.Date)
	if err := s.render(file, renderPair{"body", string(body), &p.Content}); err != nil {
		return nil, err
	}
	return p, nil
}

func newSubpage(hub, slug string, m subpageMatter) *model.TopicSubpage {
	return &model.TopicSubpage{
		Hub:             hub,
		Slug:            slug,
		Title:           m.Title,
		Description:     m.Description,
		Image:           m.Image,
		Keywords:        m.Keywords.values(),
		RelatedConcepts: m.RelatedConcepts.values(),
	}
}

// ListTopicSubpages returns the hub's subpages ordered by title, then slug.
// An unknown hub yields an empty list.
func (s *Source) ListTopicSubpages(ctx context.Context, hub string) ([]model.TopicSubpageSummary, error) {
	if !ValidSlug(hub) {
		return []model.TopicSubpageSummary{}, nil
	}

	slugs, err := s.markdownSlugs(ctx, path.Join(topicsDir, hub), pillarFile)
	if err != nil {
		return nil, err
	}

	out := make([]model.TopicSubpageSummary, 0, len(slugs))
	for _, slug := range slugs {
		file := subpageFile(hub, slug)
		var m subpageMatter
		if _, err := s.readMatter(ctx, file, &m); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		p := newSubpage(hub, slug, m)
		p.Date = s.date(file, m.Date)
		out = append(out, p.Summary())
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if ti != tj {
			return ti < tj
		}
		return out[i].Slug < out[j].Slug
	})
	return out, nil
}

// RelatedTopicSubpages resolves the bidirectional related set of a subpage within its hub.
func (s *Source) RelatedTopicSubpages(ctx context.Context, hub, slug string) ([]model.TopicSubpageSummary, error) {
	p, err := s.GetTopicSubpage(ctx, hub, slug)
	if err != nil {
		return nil, err
	}
	all, err := s.ListTopicSubpages(ctx, hub)
	if err != nil {
		return nil, err
	}
	return Resolve(p.Slug, p.RelatedConcepts, all), nil
}
