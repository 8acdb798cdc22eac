package content

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func industryFixtures() fstest.MapFS {
	return fstest.MapFS{
		"industries/healthcare.md": file(`---
title: Healthcare
industry: Healthcare
date: "2024-02-01T10:00:00Z"
relatedConcepts: [finance]
overview: |
  Hospitals need **auditable** AI.
challenges: PHI exposure
approach: Zero data retention
architecture: |
  | layer | control |
  |---|---|
  | proxy | redaction |
caseStudy: A regional hospital network.
technicalDeepDive: TODO
benefits: Faster reviews.
cta: Talk to us.
---
Intro body.
`),
		"industries/finance.md": file(`---
title: Finance
date: 2023-11-20
---
`),
		"industries/legal.md": file(`---
title: Legal
relatedConcepts: healthcare
---
`),
	}
}

func TestSource_GetIndustryGuide(t *testing.T) {
	src := newTestSource(industryFixtures())
	ctx := context.Background()

	g, err := src.GetIndustryGuide(ctx, "healthcare")
	require.NoError(t, err)

	assert.Equal(t, "healthcare", g.Slug)
	assert.Equal(t, "Healthcare", g.Industry)
	assert.Contains(t, g.Overview, "<strong>auditable</strong>")
	assert.Contains(t, g.Architecture, "<table>")
	assert.Contains(t, g.Content, "Intro body.")
	assert.Contains(t, g.CTA, "Talk to us.")
	assert.Equal(t, 2024, g.Date.Year())

	empty, err := src.GetIndustryGuide(ctx, "finance")
	require.NoError(t, err)
	assert.Empty(t, empty.Overview)
	assert.Empty(t, empty.Content)

	_, err = src.GetIndustryGuide(ctx, "retail")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSource_ListIndustryGuides(t *testing.T) {
	src := newTestSource(industryFixtures())

	all, err := src.ListIndustryGuides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"healthcare", "finance", "legal"}, summarySlugs(all))
}

func TestSource_RelatedIndustryGuides(t *testing.T) {
	src := newTestSource(industryFixtures())
	ctx := context.Background()

	got, err := src.RelatedIndustryGuides(ctx, "healthcare")
	require.NoError(t, err)
	assert.Equal(t, []string{"finance", "legal"}, summarySlugs(got))

	got, err = src.RelatedIndustryGuides(ctx, "finance")
	require.NoError(t, err)
	assert.Equal(t, []string{"healthcare"}, summarySlugs(got))
}

func TestCheckIndustryGuide(t *testing.T) {
	src := newTestSource(industryFixtures())
	g, err := src.GetIndustryGuide(context.Background(), "healthcare")
	require.NoError(t, err)

	issues := CheckIndustryGuide(g)

	var placeholdersFound, short int
	for _, is := range issues {
		assert.Equal(t, "healthcare", is.Slug)
		switch is.Kind {
		case IssuePlaceholder:
			placeholdersFound++
			assert.Equal(t, "technicalDeepDive", string(is.Section))
		case IssueTooShort:
			short++
		}
	}
	assert.Equal(t, 1, placeholdersFound)
	assert.Equal(t, 8, short)
}

func TestCheckIndustryGuide_LongSections(t *testing.T) {
	long := strings.Repeat("Stereos keeps prompts out of vendor logs. ", 10)
	g, err := newTestSource(fstest.MapFS{
		"industries/long.md": file("---\n" +
			"overview: " + long + "\n" +
			"challenges: " + long + "\n" +
			"approach: " + long + "\n" +
			"architecture: " + long + "\n" +
			"caseStudy: " + long + "\n" +
			"technicalDeepDive: " + long + "\n" +
			"benefits: " + long + "\n" +
			"cta: " + long + "\n" +
			"---\n"),
	}).GetIndustryGuide(context.Background(), "long")
	require.NoError(t, err)

	assert.Empty(t, CheckIndustryGuide(g))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "a & b c", PlainText("<p>a &amp; b</p>\n\n<p>  c</p>"))
}

func TestPlaceholders_WordBoundaries(t *testing.T) {
	matches := func(text string) bool {
		for _, p := range placeholders {
			if p.re.MatchString(text) {
				return true
			}
		}
		return false
	}

	assert.True(t, matches("Lorem Ipsum dolor"))
	assert.True(t, matches("pricing TBD"))
	assert.True(t, matches("[Insert customer quote]"))
	assert.False(t, matches("Mastodon and toddlers"))
	assert.False(t, matches("Stereos redacts secrets"))
}

func TestQualityChecker(t *testing.T) {
	g, err := newTestSource(industryFixtures()).GetIndustryGuide(context.Background(), "healthcare")
	require.NoError(t, err)

	assert.Nil(t, NewQualityChecker(false, nopLogger()).Check(g))
	assert.NotEmpty(t, NewQualityChecker(true, nopLogger()).Check(g))

	var nilChecker *QualityChecker
	assert.Nil(t, nilChecker.Check(g))
}
