package commands

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns up to max cached command names that closely match name,
// best first. It backs "command not found" hints, so an exact hit returns
// only itself and an unpopulated cache returns nothing.
func (c *Cache) Suggest(name string, max int) []string {
	if max <= 0 || name == "" {
		return nil
	}
	if c.LazyIn(name) {
		return []string{name}
	}

	ranks := fuzzy.RankFindFold(name, c.LazyIter())
	sort.Sort(ranks)

	out := make([]string, 0, max)
	for _, r := range ranks {
		out = append(out, r.Target)
		if len(out) == max {
			break
		}
	}
	return out
}
