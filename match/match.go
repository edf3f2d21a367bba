// Package match implements multi-strategy color search over in-memory candidate sets.
package match

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/color"
)

// DefaultMaxDistance is the weighted-distance threshold used by Search's proximity strategy.
const DefaultMaxDistance = 0.5

// proximityMinQueryLen is the minimum query length before the query is
// interpreted as a color for proximity matching.
const proximityMinQueryLen = 3

// Search returns the subset of candidates matching the query.
//
// Three independent strategies are unioned: hex substring, color-name alias,
// and colorimetric proximity to a color the query itself may represent.
// Name-alias hits are filtered to the candidate set, so the result is always
// a subset of candidates, in candidate order. An empty query matches
// everything.
func Search(query string, candidates []string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return candidates
	}

	matched := make(map[string]struct{})

	// Hex substring.
	for _, candidate := range candidates {
		if strings.Contains(strings.ToLower(candidate), query) {
			matched[candidate] = struct{}{}
		}
	}

	// Name alias. Aliased hexes outside the candidate set are not suggested.
	aliased := lo.PickBy(color.Names, func(_, name string) bool {
		return strings.Contains(name, query)
	})
	for _, candidate := range candidates {
		c, err := color.Parse(candidate)
		if err != nil {
			continue
		}
		if _, ok := aliased[c.Hex()]; ok {
			matched[candidate] = struct{}{}
		}
	}

	// Proximity. The query is interpreted as a hex color; if it does not
	// parse, the strategy contributes nothing.
	if len(query) >= proximityMinQueryLen {
		if similar, err := FindSimilar(query, candidates, DefaultMaxDistance); err == nil {
			for _, hex := range similar {
				matched[hex] = struct{}{}
			}
		}
	}

	return lo.Filter(candidates, func(candidate string, _ int) bool {
		_, ok := matched[candidate]
		return ok
	})
}

// FindSimilar filters candidates to those within maxDistance of the target,
// sorted ascending by distance. A malformed target fails fast; malformed
// individual candidates are excluded, never aborting the batch.
func FindSimilar(target string, candidates []string, maxDistance float64) ([]string, error) {
	base, err := color.Parse(target)
	if err != nil {
		return nil, err
	}

	type scored struct {
		hex      string
		distance float64
	}

	var similar []scored
	for _, candidate := range candidates {
		c, err := color.Parse(candidate)
		if err != nil {
			continue
		}
		if distance := color.Distance(base, c); distance <= maxDistance {
			similar = append(similar, scored{hex: candidate, distance: distance})
		}
	}

	sort.Slice(similar, func(i, j int) bool {
		return similar[i].distance < similar[j].distance
	})

	return lo.Map(similar, func(s scored, _ int) string {
		return s.hex
	}), nil
}
