package content

import (
	"context"
	"errors"
	"path"
	"sort"

	"stereos/internal/model"
)

func industryFile(slug string) string {
	return path.Join(industriesDir, slug+markdownExt)
}

// GetIndustryGuide loads industries/<slug>.md and renders the body and all eight sections.
func (s *Source) GetIndustryGuide(ctx context.Context, slug string) (*model.IndustryGuide, error) {
	if !ValidSlug(slug) {
		return nil, ErrNotFound
	}

	file := industryFile(slug)
	var m industryMatter
	body, err := s.readMatter(ctx, file, &m)
	if err != nil {
		return nil, err
	}

	g := newIndustryGuide(slug, m)
	g.Date = s.date(file, m.Date)
	err = s.render(file,
		renderPair{"body", string(body), &g.Content},
		renderPair{string(model.SectionOverview), m.Overview, &g.Overview},
		renderPair{string(model.SectionChallenges), m.Challenges, &g.Challenges},
		renderPair{string(model.SectionApproach), m.Approach, &g.Approach},
		renderPair{string(model.SectionArchitecture), m.Architecture, &g.Architecture},
		renderPair{string(model.SectionCaseStudy), m.CaseStudy, &g.CaseStudy},
		renderPair{string(model.SectionTechnicalDeepDive), m.TechnicalDeepDive, &g.TechnicalDeepDive},
		renderPair{string(model.SectionBenefits), m.Benefits, &g.Benefits},
		renderPair{string(model.SectionCTA), m.CTA, &g.CTA},
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newIndustryGuide(slug string, m industryMatter) *model.IndustryGuide {
	return &model.IndustryGuide{
		Slug:            slug,
		Title:           m.Title,
		Description:     m.Description,
		Industry:        m.Industry,
		Image:           m.Image,
		Keywords:        m.Keywords.values(),
		RelatedConcepts: m.RelatedConcepts.values(),
	}
}

// ListIndustryGuides returns every parseable industry guide, newest first.
func (s *Source) ListIndustryGuides(ctx context.Context) ([]model.IndustryGuideSummary, error) {
	slugs, err := s.markdownSlugs(ctx, industriesDir)
	if err != nil {
		return nil, err
	}

	out := make([]model.IndustryGuideSummary, 0, len(slugs))
	for _, slug := range slugs {
		file := industryFile(slug)
		var m industryMatter
		if _, err := s.readMatter(ctx, file, &m); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		g := newIndustryGuide(slug, m)
		g.Date = s.date(file, m.Date)
		out = append(out, g.Summary())
	}

	sort.SliceStable(out, func(i, j int) bool {
		return byDateDesc(out[i].Date, out[j].Date, out[i].Slug, out[j].Slug)
	})
	return out, nil
}

// RelatedIndustryGuides resolves the bidirectional related set of an industry guide.
func (s *Source) RelatedIndustryGuides(ctx context.Context, slug string) ([]model.IndustryGuideSummary, error) {
	g, err := s.GetIndustryGuide(ctx, slug)
	if err != nil {
		return nil, err
	}
	all, err := s.ListIndustryGuides(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(g.Slug, g.RelatedConcepts, all), nil
}
