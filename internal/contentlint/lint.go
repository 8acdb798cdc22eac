// Package contentlint checks the markdown content tree for authoring problems.
package contentlint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"stereos/internal/content"
)

// Severity of a Finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem in one content item.
type Finding struct {
	Severity   Severity `json:"severity"`
	Collection string   `json:"collection"`
	Slug       string   `json:"slug"`
	Field      string   `json:"field,omitempty"`
	Message    string   `json:"message"`
}

// Report is the result of a Lint run.
type Report struct {
	Findings []Finding `json:"findings"`
	Items    int       `json:"items"`
}

// Errors counts error findings.
func (r *Report) Errors() int { return r.count(SeverityError) }

// Warnings counts warning findings.
func (r *Report) Warnings() int { return r.count(SeverityWarning) }

func (r *Report) count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

func (r *Report) add(sev Severity, collection, slug, field, msg string) {
	r.Findings = append(r.Findings, Finding{Severity: sev, Collection: collection, Slug: slug, Field: field, Message: msg})
}

// Print writes one line per finding and a summary line.
func (r *Report) Print(w io.Writer) {
	for _, f := range r.Findings {
		loc := f.Collection + "/" + f.Slug
		if f.Field != "" {
			loc += "#" + f.Field
		}
		fmt.Fprintf(w, "%-7s %s: %s\n", f.Severity, loc, f.Message)
	}
	fmt.Fprintf(w, "%d items checked, %d errors, %d warnings\n", r.Items, r.Errors(), r.Warnings())
}

// Lint loads every collection from src and reports missing titles, dangling
// relatedConcepts references and industry guide quality issues.
func Lint(ctx context.Context, src *content.Source) (*Report, error) {
	r := &Report{}

	guides, err := src.ListGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	r.Items += len(guides)
	for _, g := range guides {
		checkItem(r, "guides", g.Slug, g.Title, g.RelatedConcepts, content.Dangling(g.RelatedConcepts, guides))
	}

	industries, err := src.ListIndustryGuides(ctx)
	if err != nil {
		return nil, fmt.Errorf("list industry guides: %w", err)
	}
	r.Items += len(industries)
	for _, s := range industries {
		checkItem(r, "industries", s.Slug, s.Title, s.RelatedConcepts, content.Dangling(s.RelatedConcepts, industries))

		g, err := src.GetIndustryGuide(ctx, s.Slug)
		if errors.Is(err, content.ErrNotFound) {
			// Removed or mid-save since the listing; the next run sees it.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load industry guide %s: %w", s.Slug, err)
		}
		for _, is := range content.CheckIndustryGuide(g) {
			r.add(SeverityWarning, "industries", is.Slug, string(is.Section), is.Message)
		}
	}

	hubs, err := src.ListTopicHubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topic hubs: %w", err)
	}
	for _, h := range hubs {
		r.Items++
		if strings.TrimSpace(h.Title) == "" {
			r.add(SeverityError, "topics", h.Slug, "title", "pillar page has no title")
		}
		pages, err := src.ListTopicSubpages(ctx, h.Slug)
		if err != nil {
			return nil, fmt.Errorf("list subpages of %s: %w", h.Slug, err)
		}
		r.Items += len(pages)
		for _, p := range pages {
			checkItem(r, "topics/"+h.Slug, p.Slug, p.Title, p.RelatedConcepts, content.Dangling(p.RelatedConcepts, pages))
		}
	}

	sort.SliceStable(r.Findings, func(i, j int) bool {
		a, b := r.Findings[i], r.Findings[j]
		if a.Collection != b.Collection {
			return a.Collection < b.Collection
		}
		return a.Slug < b.Slug
	})
	return r, nil
}

func checkItem(r *Report, collection, slug, title string, declared, dangling []string) {
	if strings.TrimSpace(title) == "" {
		r.add(SeverityError, collection, slug, "title", "missing title")
	}
	for _, ref := range declared {
		if ref == slug {
			r.add(SeverityWarning, collection, slug, "relatedConcepts", "refers to itself")
			break
		}
	}
	for _, ref := range dangling {
		r.add(SeverityWarning, collection, slug, "relatedConcepts", fmt.Sprintf("unknown slug %q", ref))
	}
}
