package booking

import "testing"

func TestSelectHighlights_Empty(t *testing.T) {
	h := SelectHighlights(nil)
	if h.BestValue != nil || h.BestRating != nil || h.MostFlexible != nil {
		t.Error("empty batch should yield nil highlights")
	}
}

func TestSelectHighlights_BestValueAndRating(t *testing.T) {
	offers := []Offer{
		{Provider: "a", TotalPrice: 120000, Rating: 4.9, Cancellation: CancellationStrict},
		{Provider: "b", TotalPrice: 95000, Rating: 4.3, Cancellation: CancellationModerate},
		{Provider: "c", TotalPrice: 110000, Rating: 4.6, Cancellation: CancellationFlexible},
	}
	h := SelectHighlights(offers)

	if h.BestValue.Provider != "b" {
		t.Errorf("bestValue: expected b, got %s", h.BestValue.Provider)
	}
	if h.BestRating.Provider != "a" {
		t.Errorf("bestRating: expected a, got %s", h.BestRating.Provider)
	}
	if h.MostFlexible.Provider != "c" {
		t.Errorf("mostFlexible: expected c, got %s", h.MostFlexible.Provider)
	}

	for _, o := range offers {
		if h.BestValue.TotalPrice > o.TotalPrice {
			t.Errorf("bestValue %d beaten by %s at %d", h.BestValue.TotalPrice, o.Provider, o.TotalPrice)
		}
		if h.BestRating.Rating < o.Rating {
			t.Errorf("bestRating %v beaten by %s at %v", h.BestRating.Rating, o.Provider, o.Rating)
		}
	}
}

func TestSelectHighlights_TiesKeepFirst(t *testing.T) {
	offers := []Offer{
		{Provider: "a", TotalPrice: 95000, Rating: 4.6},
		{Provider: "b", TotalPrice: 95000, Rating: 4.6},
	}
	h := SelectHighlights(offers)

	if h.BestValue.Provider != "a" || h.BestRating.Provider != "a" {
		t.Errorf("ties should keep first offer, got %s / %s",
			h.BestValue.Provider, h.BestRating.Provider)
	}
}

func TestSelectHighlights_FlexibleFallback(t *testing.T) {
	offers := []Offer{
		{Provider: "a", TotalPrice: 120000, Cancellation: CancellationStrict},
		{Provider: "b", TotalPrice: 95000, Cancellation: CancellationModerate},
	}
	h := SelectHighlights(offers)

	if h.MostFlexible.Provider != "b" {
		t.Errorf("no flexible offer: expected fallback to bestValue b, got %s", h.MostFlexible.Provider)
	}
}
