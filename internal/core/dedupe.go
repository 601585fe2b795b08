package core

import "github.com/kwabo/benintour/internal/booking"

// DedupeOffers collapses duplicate quotes for the same provider, keeping the
// cheapest total. Duplicates appear in hybrid mode when a live adapter and
// the synthetic engine both quote the same provider.
func DedupeOffers(offers []booking.Offer) []booking.Offer {
	seen := make(map[booking.Provider]int)
	var out []booking.Offer
	for _, o := range offers {
		if i, ok := seen[o.Provider]; ok {
			if o.TotalPrice < out[i].TotalPrice {
				out[i] = o
			}
			continue
		}
		seen[o.Provider] = len(out)
		out = append(out, o)
	}
	return out
}
