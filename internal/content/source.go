// Package content loads the site's markdown collections from disk and resolves
// related-content links between sibling items.
package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when an item does not exist or could not be parsed.
var ErrNotFound = errors.New("content not found")

const (
	guidesDir     = "guides"
	industriesDir = "industries"
	topicsDir     = "topics"
	pillarFile    = "pillar.md"
	markdownExt   = ".md"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ValidSlug reports whether s can name a content file. Anything else is treated as not found.
func ValidSlug(s string) bool {
	return len(s) <= 200 && slugPattern.MatchString(s)
}

// Source reads content collections from fsys. Every call reads the files again;
// nothing is cached between calls.
type Source struct {
	fsys     fs.FS
	renderer *Renderer
	log      zerolog.Logger
}

// NewSource constructs a Source over fsys, typically os.DirFS(cfg.Content.Dir).
func NewSource(fsys fs.FS, renderer *Renderer, log zerolog.Logger) *Source {
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Source{
		fsys:     fsys,
		renderer: renderer,
		log:      log.With().Str("component", "content").Logger(),
	}
}

// readMatter reads file, decodes its frontmatter into v and returns the markdown body.
// Missing files and parse failures both come back as ErrNotFound; failures are logged.
func (s *Source) readMatter(ctx context.Context, file string, v any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("file", file).Msg("content read failed")
		}
		return nil, ErrNotFound
	}

	body, err := parseFrontMatter(data, v)
	if err != nil {
		s.log.Warn().Err(err).Str("file", file).Msg("content parse failed")
		return nil, ErrNotFound
	}
	return body, nil
}

// render renders markdown fields in order, stopping at the first failure.
func (s *Source) render(file string, pairs ...renderPair) error {
	for _, p := range pairs {
		html, err := s.renderer.RenderString(p.src)
		if err != nil {
			s.log.Warn().Err(err).Str("file", file).Str("field", p.field).Msg("content render failed")
			return ErrNotFound
		}
		*p.dst = html
	}
	return nil
}

type renderPair struct {
	field string
	src   string
	dst   *string
}

func (s *Source) date(file, value string) time.Time {
	t, ok := parseDate(value)
	if !ok {
		s.log.Warn().Str("file", file).Str("date", value).Msg("unrecognised date, expected YYYY-MM-DD or RFC3339")
	}
	return t
}

// markdownSlugs lists the slugs of *.md files directly under dir, sorted.
// A missing directory is an empty collection.
func (s *Source) markdownSlugs(ctx context.Context, dir string, skip ...string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	slugs := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, markdownExt) || contains(skip, name) {
			continue
		}
		slug := strings.TrimSuffix(name, markdownExt)
		if !ValidSlug(slug) {
			s.log.Debug().Str("file", path.Join(dir, name)).Msg("skipping file with invalid slug")
			continue
		}
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// byDateDesc orders newest first, then by slug; undated items go last.
func byDateDesc(ai, aj time.Time, si, sj string) bool {
	switch {
	case ai.IsZero() && aj.IsZero():
		return si < sj
	case ai.IsZero():
		return false
	case aj.IsZero():
		return true
	case ai.Equal(aj):
		return si < sj
	}
	return ai.After(aj)
}
