package report

import (
	"slices"

	"techrank/internal/company"
	"techrank/lib/textutil"

	"github.com/antzucaro/matchr"
)

type Match struct {
	Record     company.Record
	Similarity float64
}

// Lookup ranks records by how closely their company name resembles `name`
// and returns at most `limit` matches, best first. A name that contains the
// query outright counts as a perfect match.
func Lookup(records []company.Record, name string, limit int) []Match {
	query := textutil.NormalizeName(name)
	if query == "" {
		return nil
	}

	matches := make([]Match, 0, len(records))
	for _, r := range records {
		similarity := matchr.JaroWinkler(query, textutil.NormalizeName(r.Company), false)
		if textutil.MatchName(r.Company, []string{query}) {
			similarity = 1
		}
		if similarity <= 0 {
			continue
		}
		matches = append(matches, Match{Record: r, Similarity: similarity})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
