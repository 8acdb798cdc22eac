package ogimage

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
)

func testFace(t *testing.T, size float64) font.Face {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	face, err := newFace(r.bold, size)
	require.NoError(t, err)
	t.Cleanup(func() { face.Close() })
	return face
}

func TestRender(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, Card{
		Title:    "Securing AI agents in regulated industries",
		Subtitle: "Patterns for audit trails, approvals and least privilege",
		Label:    "AI Governance",
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
}

func TestRender_Empty(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, Card{}))
	_, err = png.Decode(&buf)
	assert.NoError(t, err)
}

func TestWrap(t *testing.T) {
	face := testFace(t, 64)
	maxWidth := Width - 2*margin

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, Wrap(face, "   ", maxWidth, 3))
	})

	t.Run("short fits on one line", func(t *testing.T) {
		assert.Equal(t, []string{"Agent observability"}, Wrap(face, "Agent   observability", maxWidth, 3))
	})

	t.Run("long text is capped with ellipsis", func(t *testing.T) {
		text := strings.Repeat("governance ", 40)
		lines := Wrap(face, text, maxWidth, maxTitleLines)
		require.Len(t, lines, maxTitleLines)
		assert.True(t, strings.HasSuffix(lines[maxTitleLines-1], ellipsis))
		for _, l := range lines {
			assert.LessOrEqual(t, font.MeasureString(face, l).Ceil(), maxWidth)
		}
	})

	t.Run("wrapped text keeps every word when it fits", func(t *testing.T) {
		text := "How to evaluate agent platforms for security, compliance and cost"
		lines := Wrap(face, text, maxWidth, maxTitleLines)
		assert.Greater(t, len(lines), 1)
		assert.Equal(t, text, strings.Join(lines, " "))
	})

	t.Run("oversized word is broken", func(t *testing.T) {
		word := strings.Repeat("x", 50)
		lines := Wrap(face, word, maxWidth, maxTitleLines)
		require.Greater(t, len(lines), 1)
		assert.Equal(t, word, strings.Join(lines, ""))
	})
}
