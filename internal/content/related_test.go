package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	slug string
	refs []string
}

func (i item) Relation() (string, []string) { return i.slug, i.refs }

func slugsOf(items []item) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.slug)
	}
	return out
}

func TestResolve(t *testing.T) {
	siblings := []item{
		{slug: "a", refs: []string{"b", "c"}},
		{slug: "b"},
		{slug: "c", refs: []string{"d", "a"}},
		{slug: "d", refs: []string{"a", "a"}},
		{slug: "e", refs: []string{"e"}},
	}

	tests := []struct {
		name     string
		current  string
		declared []string
		want     []string
	}{
		{"declared then back references", "a", []string{"b", "c"}, []string{"b", "c", "d"}},
		{"only back references", "b", nil, []string{"a"}},
		{"union without duplicates", "c", []string{"d", "a"}, []string{"d", "a"}},
		{"self reference excluded", "e", []string{"e"}, []string{}},
		{"unresolved references dropped", "b", []string{"zzz", "d"}, []string{"d", "a"}},
		{"repeated declared slug", "d", []string{"a", "a"}, []string{"a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.current, tt.declared, siblings)
			assert.Equal(t, tt.want, slugsOf(got))
		})
	}
}

func TestResolve_Symmetric(t *testing.T) {
	siblings := []item{
		{slug: "x", refs: []string{"y"}},
		{slug: "y"},
		{slug: "z", refs: []string{"q"}},
	}

	for _, a := range siblings {
		for _, b := range Resolve(a.slug, a.refs, siblings) {
			back := Resolve(b.slug, b.refs, siblings)
			assert.Contains(t, slugsOf(back), a.slug, "%s lists %s but not the reverse", a.slug, b.slug)
		}
	}
}

func TestResolve_Empty(t *testing.T) {
	got := Resolve[item]("a", []string{"b"}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDangling(t *testing.T) {
	siblings := []item{{slug: "a"}, {slug: "b"}}
	assert.Equal(t, []string{"c", "d"}, Dangling([]string{"a", "c", "b", "d"}, siblings))
	assert.Nil(t, Dangling([]string{"a"}, siblings))
}
