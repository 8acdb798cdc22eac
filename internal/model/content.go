package model

import "time"

// Guide is a long-form article under guides/<slug>.md.
// Content holds sanitized HTML rendered from the markdown body.
type Guide struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	Image           string    `json:"image,omitempty"`
	Date            time.Time `json:"date,omitempty"`
	Keywords        []string  `json:"keywords"`
	Topic           string    `json:"topic,omitempty"`
	RelatedConcepts []string  `json:"related_concepts"`
}

// GuideSummary is the list view of a Guide, without rendered content.
type GuideSummary struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           string    `json:"image,omitempty"`
	Date            time.Time `json:"date,omitempty"`
	Keywords        []string  `json:"keywords"`
	Topic           string    `json:"topic,omitempty"`
	RelatedConcepts []string  `json:"related_concepts"`
}

// Summary drops the rendered content.
func (g *Guide) Summary() GuideSummary {
	return GuideSummary{
		Slug:            g.Slug,
		Title:           g.Title,
		Description:     g.Description,
		Image:           g.Image,
		Date:            g.Date,
		Keywords:        g.Keywords,
		Topic:           g.Topic,
		RelatedConcepts: g.RelatedConcepts,
	}
}

// IndustryGuide is a per-vertical landing guide under industries/<slug>.md.
// Each section is rendered independently from its own frontmatter field.
type IndustryGuide struct {
	Slug              string    `json:"slug"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Industry          string    `json:"industry,omitempty"`
	Image             string    `json:"image,omitempty"`
	Date              time.Time `json:"date,omitempty"`
	Keywords          []string  `json:"keywords"`
	RelatedConcepts   []string  `json:"related_concepts"`
	Content           string    `json:"content"`
	Overview          string    `json:"overview"`
	Challenges        string    `json:"challenges"`
	Approach          string    `json:"approach"`
	Architecture      string    `json:"architecture"`
	CaseStudy         string    `json:"case_study"`
	TechnicalDeepDive string    `json:"technical_deep_dive"`
	Benefits          string    `json:"benefits"`
	CTA               string    `json:"cta"`
}

// IndustrySection names one of the eight long-form sections of an IndustryGuide.
type IndustrySection string

const (
	SectionOverview          IndustrySection = "overview"
	SectionChallenges        IndustrySection = "challenges"
	SectionApproach          IndustrySection = "approach"
	SectionArchitecture      IndustrySection = "architecture"
	SectionCaseStudy         IndustrySection = "caseStudy"
	SectionTechnicalDeepDive IndustrySection = "technicalDeepDive"
	SectionBenefits          IndustrySection = "benefits"
	SectionCTA               IndustrySection = "cta"
)

// IndustrySections is the canonical section order.
var IndustrySections = []IndustrySection{
	SectionOverview,
	SectionChallenges,
	SectionApproach,
	SectionArchitecture,
	SectionCaseStudy,
	SectionTechnicalDeepDive,
	SectionBenefits,
	SectionCTA,
}

// Section returns the rendered HTML for s.
func (g *IndustryGuide) Section(s IndustrySection) string {
	switch s {
	case SectionOverview:
		return g.Overview
	case SectionChallenges:
		return g.Challenges
	case SectionApproach:
		return g.Approach
	case SectionArchitecture:
		return g.Architecture
	case SectionCaseStudy:
		return g.CaseStudy
	case SectionTechnicalDeepDive:
		return g.TechnicalDeepDive
	case SectionBenefits:
		return g.Benefits
	case SectionCTA:
		return g.CTA
	}
	return ""
}

// IndustryGuideSummary is the list view of an IndustryGuide.
type IndustryGuideSummary struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Industry        string    `json:"industry,omitempty"`
	Image           string    `json:"image,omitempty"`
	Date            time.Time `json:"date,omitempty"`
	Keywords        []string  `json:"keywords"`
	RelatedConcepts []string  `json:"related_concepts"`
}

func (g *IndustryGuide) Summary() IndustryGuideSummary {
	return IndustryGuideSummary{
		Slug:            g.Slug,
		Title:           g.Title,
		Description:     g.Description,
		Industry:        g.Industry,
		Image:           g.Image,
		Date:            g.Date,
		Keywords:        g.Keywords,
		RelatedConcepts: g.RelatedConcepts,
	}
}

// TopicHub is the pillar page of topics/<hub>/pillar.md together with its subpages.
type TopicHub struct {
	Slug           string                `json:"slug"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Image          string                `json:"image,omitempty"`
	Keywords       []string              `json:"keywords"`
	Content        string                `json:"content"`
	Introduction   string                `json:"introduction"`
	KeyConcepts    string                `json:"key_concepts"`
	BestPractices  string                `json:"best_practices"`
	GettingStarted string                `json:"getting_started"`
	Subpages       []TopicSubpageSummary `json:"subpages"`
}

// TopicHubSummary is the list view of a TopicHub.
type TopicHubSummary struct {
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Keywords     []string `json:"keywords"`
	SubpageCount int      `json:"subpage_count"`
}

// TopicSubpage is a page under topics/<hub>/<slug>.md.
type TopicSubpage struct {
	Hub             string    `json:"hub"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Content         string    `json:"content"`
	Image           string    `json:"image,omitempty"`
	Date            time.Time `json:"date,omitempty"`
	Keywords        []string  `json:"keywords"`
	RelatedConcepts []string  `json:"related_concepts"`
}

// TopicSubpageSummary is the list view of a TopicSubpage.
type TopicSubpageSummary struct {
	Hub             string    `json:"hub"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           string    `json:"image,omitempty"`
	Date            time.Time `json:"date,omitempty"`
	Keywords        []string  `json:"keywords"`
	RelatedConcepts []string  `json:"related_concepts"`
}

func (p *TopicSubpage) Summary() TopicSubpageSummary {
	return TopicSubpageSummary{
		Hub:             p.Hub,
		Slug:            p.Slug,
		Title:           p.Title,
		Description:     p.Description,
		Image:           p.Image,
		Date:            p.Date,
		Keywords:        p.Keywords,
		RelatedConcepts: p.RelatedConcepts,
	}
}

// Relation exposes the slug and declared related slugs for related-content resolution.
func (s GuideSummary) Relation() (string, []string) { return s.Slug, s.RelatedConcepts }

func (s IndustryGuideSummary) Relation() (string, []string) { return s.Slug, s.RelatedConcepts }

func (s TopicSubpageSummary) Relation() (string, []string) { return s.Slug, s.RelatedConcepts }
