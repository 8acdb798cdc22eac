package content

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"stereos/internal/model"
)

// IssueKind classifies a content quality problem.
type IssueKind string

const (
	IssueTooShort    IssueKind = "too_short"
	IssuePlaceholder IssueKind = "placeholder"
)

// Issue is one authoring problem found in an industry guide section.
type Issue struct {
	Slug    string                `json:"slug"`
	Section model.IndustrySection `json:"section"`
	Kind    IssueKind             `json:"kind"`
	Message string                `json:"message"`
}

// MinSectionLength is the minimum plain-text length per industry section.
var MinSectionLength = map[model.IndustrySection]int{
	model.SectionOverview:          300,
	model.SectionChallenges:        300,
	model.SectionApproach:          300,
	model.SectionArchitecture:      200,
	model.SectionCaseStudy:         200,
	model.SectionTechnicalDeepDive: 300,
	model.SectionBenefits:          200,
	model.SectionCTA:               50,
}

type placeholder struct {
	label string
	re    *regexp.Regexp
}

var placeholders = []placeholder{
	{"lorem ipsum", regexp.MustCompile(`(?i)lorem\s+ipsum`)},
	{"TODO", regexp.MustCompile(`(?i)\btodo\b`)},
	{"TBD", regexp.MustCompile(`(?i)\btbd\b`)},
	{"placeholder", regexp.MustCompile(`(?i)\bplaceholder\b`)},
	{"coming soon", regexp.MustCompile(`(?i)\bcoming\s+soon\b`)},
	{"XXX", regexp.MustCompile(`(?i)\bxxx+\b`)},
	{"[insert", regexp.MustCompile(`(?i)\[insert`)},
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// PlainText strips tags, unescapes entities and collapses whitespace.
func PlainText(htmlText string) string {
	text := tagPattern.ReplaceAllString(htmlText, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}

// CheckIndustryGuide returns the quality issues of g in section order.
func CheckIndustryGuide(g *model.IndustryGuide) []Issue {
	var issues []Issue
	for _, section := range model.IndustrySections {
		text := PlainText(g.Section(section))

		if want := MinSectionLength[section]; utf8.RuneCountInString(text) < want {
			issues = append(issues, Issue{
				Slug:    g.Slug,
				Section: section,
				Kind:    IssueTooShort,
				Message: fmt.Sprintf("%d characters, expected at least %d", utf8.RuneCountInString(text), want),
			})
		}

		for _, p := range placeholders {
			if p.re.MatchString(text) {
				issues = append(issues, Issue{
					Slug:    g.Slug,
					Section: section,
					Kind:    IssuePlaceholder,
					Message: fmt.Sprintf("contains placeholder text %q", p.label),
				})
			}
		}
	}
	return issues
}

// QualityChecker logs industry guide issues as warnings. It is a no-op unless enabled,
// and it never fails the caller.
type QualityChecker struct {
	enabled bool
	log     zerolog.Logger
}

func NewQualityChecker(enabled bool, log zerolog.Logger) *QualityChecker {
	return &QualityChecker{
		enabled: enabled,
		log:     log.With().Str("component", "content_quality").Logger(),
	}
}

// Check logs and returns the issues of g. Disabled checkers return nil.
func (q *QualityChecker) Check(g *model.IndustryGuide) []Issue {
	if q == nil || !q.enabled || g == nil {
		return nil
	}
	issues := CheckIndustryGuide(g)
	for _, is := range issues {
		q.log.Warn().
			Str("slug", is.Slug).
			Str("section", string(is.Section)).
			Str("kind", string(is.Kind)).
			Msg(is.Message)
	}
	return issues
}
