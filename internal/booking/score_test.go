package booking

import "testing"

func TestScore_Bounds(t *testing.T) {
	offers := Generate(ganvie, juneStay)
	Score(offers)

	for _, o := range offers {
		if o.Score < 0 || o.Score > 1 {
			t.Errorf("%s: score %v out of [0,1]", o.Provider, o.Score)
		}
	}
}

func TestScore_CheaperNightlyWins(t *testing.T) {
	// Identical except for price: the cheaper offer must score higher.
	offers := []Offer{
		{Provider: "a", NightlyPrice: 40000, Rating: 4.5, Cancellation: CancellationModerate, Availability: AvailabilityAvailable},
		{Provider: "b", NightlyPrice: 30000, Rating: 4.5, Cancellation: CancellationModerate, Availability: AvailabilityAvailable},
	}
	Score(offers)

	if offers[1].Score <= offers[0].Score {
		t.Errorf("cheaper offer should outscore: %v vs %v", offers[1].Score, offers[0].Score)
	}
}

func TestScore_SingleOfferFullPriceScore(t *testing.T) {
	// rating 5 + flexible + available + full price score = 1.00 exactly.
	offers := []Offer{
		{NightlyPrice: 30000, Rating: 5, Cancellation: CancellationFlexible, Availability: AvailabilityAvailable},
	}
	Score(offers)

	if offers[0].Score != 1.00 {
		t.Errorf("expected perfect score 1.00, got %v", offers[0].Score)
	}
}

func TestScore_FlatPricesShareFullPriceScore(t *testing.T) {
	offers := []Offer{
		{NightlyPrice: 30000, Rating: 5, Cancellation: CancellationFlexible, Availability: AvailabilityAvailable},
		{NightlyPrice: 30000, Rating: 5, Cancellation: CancellationFlexible, Availability: AvailabilityAvailable},
	}
	Score(offers)

	if offers[0].Score != 1.00 || offers[1].Score != 1.00 {
		t.Errorf("flat batch should give both full scores, got %v and %v",
			offers[0].Score, offers[1].Score)
	}
}

func TestScore_WeightsComposition(t *testing.T) {
	// Worst everything except being the only (hence cheapest) offer:
	// 0.40*(4.1/5) + 0.35*1 + 0.15*0.4 + 0.10*0.2 = 0.758 → 0.76.
	offers := []Offer{
		{NightlyPrice: 30000, Rating: 4.1, Cancellation: CancellationStrict, Availability: AvailabilitySoldOut},
	}
	Score(offers)

	if offers[0].Score != 0.76 {
		t.Errorf("expected 0.76, got %v", offers[0].Score)
	}
}

func TestScore_EmptyBatch(t *testing.T) {
	Score(nil) // must not panic
}
