package booking

import "testing"

func TestRank_DescendingByScore(t *testing.T) {
	offers := []Offer{
		{Provider: "low", Score: 0.61},
		{Provider: "high", Score: 0.92},
		{Provider: "mid", Score: 0.74},
	}
	Rank(offers)

	for i := 1; i < len(offers); i++ {
		if offers[i].Score > offers[i-1].Score {
			t.Fatalf("not sorted at %d: %v after %v", i, offers[i].Score, offers[i-1].Score)
		}
	}
	if offers[0].Provider != "high" {
		t.Errorf("expected high first, got %s", offers[0].Provider)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	offers := []Offer{
		{Provider: "first", Score: 0.80},
		{Provider: "second", Score: 0.80},
		{Provider: "third", Score: 0.80},
	}
	Rank(offers)

	if offers[0].Provider != "first" || offers[1].Provider != "second" || offers[2].Provider != "third" {
		t.Errorf("tie must keep input order, got %s %s %s",
			offers[0].Provider, offers[1].Provider, offers[2].Provider)
	}
}

func TestRank_GeneratedBatchOrdered(t *testing.T) {
	offers := Generate(ganvie, juneStay)
	Score(offers)
	Rank(offers)

	for i := 1; i < len(offers); i++ {
		if offers[i].Score > offers[i-1].Score {
			t.Errorf("ranked batch not non-increasing at %d", i)
		}
	}
}
