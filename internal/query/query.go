// Package query answers lookups against a loaded calibrator collection.
//
// Lookups mirror how observers use the printed list: find one source by
// its exact IAU name, list every source observable in a band, or page
// through the catalog. When an exact name misses, SimilarNames suggests
// close matches so a typo in the last digit still leads somewhere.
package query

import (
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
)

// Index wraps a collection for read-only lookups. Results preserve the
// collection's scrape order.
type Index struct {
	col *calibrator.Collection
}

// New returns an index over the given collection.
func New(col *calibrator.Collection) *Index {
	return &Index{col: col}
}

// Len returns the number of records in the collection.
func (ix *Index) Len() int {
	return ix.col.Len()
}

// FindByName returns the first record whose J2000 IAU name equals name.
// Both sides are compared after trimming surrounding whitespace; the
// comparison is case-sensitive, matching the names as published.
func (ix *Index) FindByName(name string) (*calibrator.Calibrator, bool) {
	name = strings.TrimSpace(name)
	for _, cal := range ix.col.Calibrators {
		if cal.Name() == name {
			return cal, true
		}
	}
	return nil, false
}

// SimilarNames suggests catalog names close to a missed lookup: names that
// contain the query (or are contained by it) case-insensitively, plus
// same-length names differing in exactly one character. Suggestions keep
// collection order and are deduplicated.
func (ix *Index) SimilarNames(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)

	var matches []string
	seen := make(map[string]bool)
	for _, cal := range ix.col.Calibrators {
		candidate := cal.Name()
		if candidate == "" || seen[candidate] {
			continue
		}
		candLower := strings.ToLower(candidate)
		if strings.Contains(candLower, lower) ||
			strings.Contains(lower, candLower) ||
			oneCharApart(candLower, lower) {
			matches = append(matches, candidate)
			seen[candidate] = true
		}
	}
	return matches
}

// oneCharApart reports whether two equal-length strings differ in exactly
// one position.
func oneCharApart(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}

// ListByBand returns every record with at least one observation in the
// given band, e.g. "20cm".
func (ix *Index) ListByBand(label string) []*calibrator.Calibrator {
	label = strings.TrimSpace(label)
	var matches []*calibrator.Calibrator
	for _, cal := range ix.col.Calibrators {
		if cal.HasBand(label) {
			matches = append(matches, cal)
		}
	}
	return matches
}

// First returns the first n records, or all of them when the collection
// is shorter.
func (ix *Index) First(n int) []*calibrator.Calibrator {
	if n < 0 {
		n = 0
	}
	if n > ix.col.Len() {
		n = ix.col.Len()
	}
	return ix.col.Calibrators[:n]
}
