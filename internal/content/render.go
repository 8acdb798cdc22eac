package content

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer turns markdown into sanitized HTML.
// A single Renderer is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a goldmark engine with tables and strikethrough enabled.
// Raw HTML in the source is dropped by goldmark and the output is scrubbed with the UGC policy.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &Renderer{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to HTML. Empty input renders to an empty string.
func (r *Renderer) Render(markdown []byte) (string, error) {
	if len(bytes.TrimSpace(markdown)) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert(markdown, &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return string(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// RenderString is Render for frontmatter fields.
func (r *Renderer) RenderString(markdown string) (string, error) {
	return r.Render([]byte(markdown))
}
