package booking

import "github.com/samber/lo"

// SelectHighlights derives the three UI callouts from a batch. Ties go to
// the earlier offer in input order. When no offer has flexible cancellation,
// mostFlexible falls back to bestValue so the callout never dangles.
func SelectHighlights(offers []Offer) Highlights {
	if len(offers) == 0 {
		return Highlights{}
	}

	bestValue := lo.MinBy(offers, func(a, b Offer) bool {
		return a.TotalPrice < b.TotalPrice
	})
	bestRating := lo.MaxBy(offers, func(a, b Offer) bool {
		return a.Rating > b.Rating
	})

	mostFlexible, found := lo.Find(offers, func(o Offer) bool {
		return o.Cancellation == CancellationFlexible
	})
	if !found {
		mostFlexible = bestValue
	}

	return Highlights{
		BestValue:    &bestValue,
		BestRating:   &bestRating,
		MostFlexible: &mostFlexible,
	}
}
