package booking

import "sort"

// Rank sorts offers in place, descending by score. The sort is stable, so
// equal scores keep their input order (provider enumeration order), which
// makes ranking deterministic end to end.
func Rank(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Score > offers[j].Score
	})
}
