package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stereos/internal/model"
)

func summarySlugs[T Relatable](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		slug, _ := it.Relation()
		out = append(out, slug)
	}
	return out
}

func TestSource_GetGuide(t *testing.T) {
	src := newTestSource(guideFixtures())
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		g, err := src.GetGuide(ctx, "x")
		require.NoError(t, err)

		assert.Equal(t, "x", g.Slug)
		assert.Equal(t, "Guide X", g.Title)
		assert.Equal(t, "About X", g.Description)
		assert.Equal(t, "zero-data-retention", g.Topic)
		assert.Equal(t, []string{"zdr", "privacy"}, g.Keywords)
		assert.Equal(t, []string{"y", "missing", "x"}, g.RelatedConcepts)
		assert.Equal(t, 2024, g.Date.Year())
		assert.Contains(t, g.Content, "<strong>bold</strong>")
		assert.Contains(t, g.Content, "Heading X</h1>")
	})

	t.Run("every listed slug loads with the same slug", func(t *testing.T) {
		all, err := src.ListGuides(ctx)
		require.NoError(t, err)
		for _, s := range all {
			g, err := src.GetGuide(ctx, s.Slug)
			require.NoError(t, err)
			assert.Equal(t, s.Slug, g.Slug)
		}
	})

	t.Run("no frontmatter yields defaults", func(t *testing.T) {
		g, err := src.GetGuide(ctx, "plain")
		require.NoError(t, err)

		assert.Equal(t, "plain", g.Slug)
		assert.Empty(t, g.Title)
		assert.Empty(t, g.Description)
		assert.NotNil(t, g.Keywords)
		assert.Empty(t, g.Keywords)
		assert.NotNil(t, g.RelatedConcepts)
		assert.True(t, g.Date.IsZero())
		assert.Contains(t, g.Content, "Only markdown")
	})

	t.Run("comma separated keywords", func(t *testing.T) {
		g, err := src.GetGuide(ctx, "z")
		require.NoError(t, err)
		assert.Equal(t, []string{"audit", "logging"}, g.Keywords)
	})

	for _, slug := range []string{"absent", "broken", "Bad_Slug", "../secrets", "", "notes"} {
		t.Run("not found: "+slug, func(t *testing.T) {
			g, err := src.GetGuide(ctx, slug)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Nil(t, g)
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := src.GetGuide(cctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSource_ListGuides(t *testing.T) {
	src := newTestSource(guideFixtures())

	all, err := src.ListGuides(context.Background())
	require.NoError(t, err)

	// newest first, undated last by slug; broken and invalid files skipped
	assert.Equal(t, []string{"y", "x", "plain", "z"}, summarySlugs(all))
}

func TestSource_ListGuides_MissingDirectory(t *testing.T) {
	src := newTestSource(nil)

	all, err := src.ListGuides(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestSource_GuidesByTopic(t *testing.T) {
	src := newTestSource(guideFixtures())

	got, err := src.GuidesByTopic(context.Background(), "zero-data-retention")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, summarySlugs(got))

	none, err := src.GuidesByTopic(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSource_RelatedGuides(t *testing.T) {
	src := newTestSource(guideFixtures())
	ctx := context.Background()

	tests := []struct {
		slug string
		want []string
	}{
		// declared y (missing dropped, self dropped), then z which lists x
		{slug: "x", want: []string{"y", "z"}},
		// y declares nothing but x lists it
		{slug: "y", want: []string{"x"}},
		{slug: "z", want: []string{"x"}},
		{slug: "plain", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			got, err := src.RelatedGuides(ctx, tt.slug)
			require.NoError(t, err)
			assert.Equal(t, tt.want, summarySlugs(got))
		})
	}

	t.Run("unknown guide", func(t *testing.T) {
		_, err := src.RelatedGuides(ctx, "absent")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGuideSummary(t *testing.T) {
	g := &model.Guide{Slug: "a", Title: "A", Content: "<p>x</p>", RelatedConcepts: []string{"b"}}
	s := g.Summary()
	assert.Equal(t, "a", s.Slug)
	assert.Equal(t, []string{"b"}, s.RelatedConcepts)
}
