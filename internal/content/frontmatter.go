package content

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// stringList accepts either a YAML sequence or a comma separated scalar.
type stringList []string

func (l *stringList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var items []string
	if err := unmarshal(&items); err == nil {
		*l = cleanList(items)
		return nil
	}

	var scalar string
	if err := unmarshal(&scalar); err != nil {
		return fmt.Errorf("expected a list or a comma separated string: %w", err)
	}
	*l = cleanList(strings.Split(scalar, ","))
	return nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// values returns a non-nil copy.
func (l stringList) values() []string {
	out := make([]string, len(l))
	copy(out, l)
	return out
}

type guideMatter struct {
	Title           string     `yaml:"title"`
	Description     string     `yaml:"description"`
	Image           string     `yaml:"image"`
	Date            string     `yaml:"date"`
	Keywords        stringList `yaml:"keywords"`
	Topic           string     `yaml:"topic"`
	RelatedConcepts stringList `yaml:"relatedConcepts"`
}

type industryMatter struct {
	Title             string     `yaml:"title"`
	Description       string     `yaml:"description"`
	Industry          string     `yaml:"industry"`
	Image             string     `yaml:"image"`
	Date              string     `yaml:"date"`
	Keywords          stringList `yaml:"keywords"`
	RelatedConcepts   stringList `yaml:"relatedConcepts"`
	Overview          string     `yaml:"overview"`
	Challenges        string     `yaml:"challenges"`
	Approach          string     `yaml:"approach"`
	Architecture      string     `yaml:"architecture"`
	CaseStudy         string     `yaml:"caseStudy"`
	TechnicalDeepDive string     `yaml:"technicalDeepDive"`
	Benefits          string     `yaml:"benefits"`
	CTA               string     `yaml:"cta"`
}

type hubMatter struct {
	Title          string     `yaml:"title"`
	Description    string     `yaml:"description"`
	Image          string     `yaml:"image"`
	Keywords       stringList `yaml:"keywords"`
	Introduction   string     `yaml:"introduction"`
	KeyConcepts    string     `yaml:"keyConcepts"`
	BestPractices  string     `yaml:"bestPractices"`
	GettingStarted string     `yaml:"gettingStarted"`
}

type subpageMatter struct {
	Title           string     `yaml:"title"`
	Description     string     `yaml:"description"`
	Image           string     `yaml:"image"`
	Date            string     `yaml:"date"`
	Keywords        stringList `yaml:"keywords"`
	RelatedConcepts stringList `yaml:"relatedConcepts"`
}

// parseFrontMatter decodes the YAML header of source into v and returns the markdown body.
// A file without a header is returned whole with v untouched.
func parseFrontMatter(source []byte, v any) ([]byte, error) {
	body, err := frontmatter.Parse(bytes.NewReader(source), v)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return body, nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDate accepts the layouts authors use in frontmatter. Unparseable dates are zero.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
