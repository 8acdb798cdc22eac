package content

// Relatable is an item that can take part in related-content resolution.
// Relation returns the item's slug and the slugs it declares as related.
type Relatable interface {
	Relation() (slug string, related []string)
}

// Resolve returns the related set of current among siblings: the siblings that current
// declares, followed by the siblings that declare current. The result is deduplicated by
// slug, never contains current itself, and silently drops declared slugs with no sibling.
func Resolve[T Relatable](current string, declared []string, siblings []T) []T {
	index := make(map[string]int, len(siblings))
	for i, sib := range siblings {
		slug, _ := sib.Relation()
		if _, dup := index[slug]; !dup {
			index[slug] = i
		}
	}

	seen := map[string]struct{}{current: {}}
	out := make([]T, 0)

	for _, ref := range declared {
		if _, ok := seen[ref]; ok {
			continue
		}
		i, ok := index[ref]
		if !ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, siblings[i])
	}

	for _, sib := range siblings {
		slug, refs := sib.Relation()
		if _, ok := seen[slug]; ok {
			continue
		}
		for _, ref := range refs {
			if ref == current {
				seen[slug] = struct{}{}
				out = append(out, sib)
				break
			}
		}
	}

	return out
}

// Dangling returns the declared slugs that match no sibling, in declaration order.
func Dangling[T Relatable](declared []string, siblings []T) []string {
	known := make(map[string]struct{}, len(siblings))
	for _, sib := range siblings {
		slug, _ := sib.Relation()
		known[slug] = struct{}{}
	}
	var out []string
	for _, ref := range declared {
		if _, ok := known[ref]; !ok {
			out = append(out, ref)
		}
	}
	return out
}
