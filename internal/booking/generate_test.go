package booking

import (
	"reflect"
	"testing"
)

var ganvie = Location{
	ID:            "ganvie",
	Name:          "Ganvié",
	PriceAmount:   32000,
	PriceCurrency: "XOF",
}

var juneStay = SearchParams{CheckIn: "2024-06-01", CheckOut: "2024-06-04", Guests: 2}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(ganvie, juneStay)
	b := Generate(ganvie, juneStay)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same query must reproduce identical offers:\n%+v\n%+v", a, b)
	}
}

func TestGenerate_OnePerProvider(t *testing.T) {
	offers := Generate(ganvie, juneStay)

	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}
	if offers[0].Provider != ProviderAirbnb || offers[1].Provider != ProviderBookingCom {
		t.Errorf("unexpected provider order: %s, %s", offers[0].Provider, offers[1].Provider)
	}
}

func TestGenerate_ThreeNightStayFees(t *testing.T) {
	offers := Generate(ganvie, juneStay)

	for _, o := range offers {
		if o.Currency != "XOF" {
			t.Errorf("%s: expected XOF, got %s", o.Provider, o.Currency)
		}
		if o.NightlyPrice <= 0 {
			t.Errorf("%s: nightly price must be positive, got %d", o.Provider, o.NightlyPrice)
		}
		if o.CleaningFee <= 0 || o.ServiceFee <= 0 || o.TaxesFee <= 0 {
			t.Errorf("%s: fees must be strictly positive: %d %d %d",
				o.Provider, o.CleaningFee, o.ServiceFee, o.TaxesFee)
		}
		if o.TotalPrice <= o.NightlyPrice*3 {
			t.Errorf("%s: total %d should exceed 3 bare nights %d",
				o.Provider, o.TotalPrice, o.NightlyPrice*3)
		}
		if o.Rating < 4.1 || o.Rating > 5.0 {
			t.Errorf("%s: rating out of range: %v", o.Provider, o.Rating)
		}
		if o.Reviews <= 0 {
			t.Errorf("%s: reviews must be positive, got %d", o.Provider, o.Reviews)
		}
		if len(o.Perks) == 0 {
			t.Errorf("%s: expected perks", o.Provider)
		}
	}
}

func TestGenerate_GuestScaling(t *testing.T) {
	two := Generate(ganvie, SearchParams{CheckIn: "2024-06-01", CheckOut: "2024-06-04", Guests: 2})
	four := Generate(ganvie, SearchParams{CheckIn: "2024-06-01", CheckOut: "2024-06-04", Guests: 4})

	for i := range two {
		if four[i].NightlyPrice <= two[i].NightlyPrice {
			t.Errorf("%s: 4 guests should cost strictly more per night: %d vs %d",
				two[i].Provider, four[i].NightlyPrice, two[i].NightlyPrice)
		}
	}
}

func TestGenerate_CurrencyDefaults(t *testing.T) {
	usd := Generate(Location{ID: "loc", PriceCurrency: "USD"}, juneStay)
	for _, o := range usd {
		if o.Currency != "USD" {
			t.Errorf("expected USD, got %s", o.Currency)
		}
		// Default USD base is 65; even with the widest adjustments the
		// nightly price stays well under the XOF default scale.
		if o.NightlyPrice <= 0 || o.NightlyPrice > 200 {
			t.Errorf("USD nightly price out of expected band: %d", o.NightlyPrice)
		}
	}

	xof := Generate(Location{ID: "loc"}, juneStay)
	for _, o := range xof {
		if o.Currency != "XOF" {
			t.Errorf("expected XOF fallback, got %s", o.Currency)
		}
		if o.NightlyPrice < 20000 {
			t.Errorf("XOF nightly price suspiciously low: %d", o.NightlyPrice)
		}
	}
}

func TestStayNights(t *testing.T) {
	cases := []struct {
		checkIn, checkOut string
		want              int
	}{
		{"2024-01-01", "2024-01-04", 3},
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-04", "2024-01-01", 1},
		{"bad", "2024-01-01", 1},
		{"2024-01-01", "bad", 1},
	}

	for _, c := range cases {
		if got := StayNights(c.checkIn, c.checkOut); got != c.want {
			t.Errorf("StayNights(%q, %q) = %d, want %d", c.checkIn, c.checkOut, got, c.want)
		}
	}
}

func TestQuerySeed_NonNegativeAndStable(t *testing.T) {
	s1 := querySeed("ganvie", "Airbnb", "2024-06-01", "2024-06-04")
	s2 := querySeed("ganvie", "Airbnb", "2024-06-01", "2024-06-04")
	if s1 != s2 {
		t.Errorf("seed must be stable: %d vs %d", s1, s2)
	}
	if s1 < 0 {
		t.Errorf("seed must be non-negative, got %d", s1)
	}

	s3 := querySeed("ganvie", "Booking.com", "2024-06-01", "2024-06-04")
	if s1 == s3 {
		t.Error("different providers should hash to different seeds")
	}
}

func TestSeededRange_Bounds(t *testing.T) {
	for seed := int64(0); seed < 1000; seed++ {
		v := seededRange(seed, 0.90, 1.15)
		if v < 0.90 || v > 1.15 {
			t.Fatalf("seed %d: %v out of [0.90, 1.15]", seed, v)
		}
	}
}
