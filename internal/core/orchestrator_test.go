package core

import (
	"context"
	"errors"
	"testing"

	"github.com/kwabo/benintour/internal/booking"
	"github.com/kwabo/benintour/internal/config"
)

func testRequest() SearchRequest {
	return SearchRequest{
		Location: booking.Location{ID: "ouidah", Name: "Ouidah", PriceAmount: 28000, PriceCurrency: "XOF"},
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-04",
		Guests:   2,
	}
}

func TestOrchestrator_NoActiveProviders(t *testing.T) {
	cfg := &config.Config{Mode: config.ModeLive}
	router := NewRouter(cfg)
	router.Register(&fakeAdapter{name: SyntheticProviderName, avail: true})

	orch := NewOrchestrator(router)
	result, err := orch.Search(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) != 1 || result.Errors[0].Provider != "none" {
		t.Errorf("expected a no-providers error, got %+v", result.Errors)
	}
	if result.Nights != 3 {
		t.Errorf("expected 3 nights, got %d", result.Nights)
	}
}

func TestOrchestrator_RankedAndHighlighted(t *testing.T) {
	offers := []booking.Offer{
		{Provider: booking.ProviderAirbnb, NightlyPrice: 35000, TotalPrice: 120000, Rating: 4.3,
			Cancellation: booking.CancellationStrict, Availability: booking.AvailabilityAvailable},
		{Provider: booking.ProviderBookingCom, NightlyPrice: 30000, TotalPrice: 105000, Rating: 4.8,
			Cancellation: booking.CancellationFlexible, Availability: booking.AvailabilityAvailable},
	}

	cfg := &config.Config{Mode: config.ModeSynthetic}
	router := NewRouter(cfg)
	router.Register(&fakeAdapter{name: SyntheticProviderName, avail: true, offers: offers})

	orch := NewOrchestrator(router)
	result, err := orch.Search(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalFound != 2 {
		t.Fatalf("expected 2 offers, got %d", result.TotalFound)
	}
	for i := 1; i < len(result.Offers); i++ {
		if result.Offers[i].Score > result.Offers[i-1].Score {
			t.Errorf("offers not ranked at %d", i)
		}
	}
	if result.Offers[0].Provider != booking.ProviderBookingCom {
		t.Errorf("expected the cheaper, better-rated, flexible offer first, got %s",
			result.Offers[0].Provider)
	}
	if result.Highlights.BestValue == nil || result.Highlights.BestValue.Provider != booking.ProviderBookingCom {
		t.Errorf("unexpected bestValue highlight: %+v", result.Highlights.BestValue)
	}
}

func TestOrchestrator_CollectsProviderErrors(t *testing.T) {
	cfg := &config.Config{Mode: config.ModeLive, Providers: map[string]config.ProviderConfig{}}
	router := NewRouter(cfg)
	router.Register(&fakeAdapter{name: "airbnb", avail: true, err: errors.New("not implemented")})
	router.Register(&fakeAdapter{name: "bookingcom", avail: true, offers: []booking.Offer{
		{Provider: booking.ProviderBookingCom, NightlyPrice: 30000, TotalPrice: 95000, Rating: 4.5},
	}})

	orch := NewOrchestrator(router)
	result, err := orch.Search(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Errors) != 1 || result.Errors[0].Provider != "airbnb" {
		t.Errorf("expected airbnb failure recorded, got %+v", result.Errors)
	}
	if result.TotalFound != 1 {
		t.Errorf("surviving provider should still return offers, got %d", result.TotalFound)
	}
}

func TestOrchestrator_MaxResultsTruncates(t *testing.T) {
	offers := []booking.Offer{
		{Provider: booking.ProviderAirbnb, TotalPrice: 1},
		{Provider: booking.ProviderBookingCom, TotalPrice: 2},
	}
	cfg := &config.Config{Mode: config.ModeSynthetic}
	router := NewRouter(cfg)
	router.Register(&fakeAdapter{name: SyntheticProviderName, avail: true, offers: offers})

	req := testRequest()
	req.MaxResults = 1

	orch := NewOrchestrator(router)
	result, err := orch.Search(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalFound != 1 {
		t.Errorf("expected truncation to 1, got %d", result.TotalFound)
	}
}

func TestDedupeOffers_KeepsCheapestPerProvider(t *testing.T) {
	offers := []booking.Offer{
		{Provider: booking.ProviderAirbnb, TotalPrice: 120000},
		{Provider: booking.ProviderAirbnb, TotalPrice: 100000},
		{Provider: booking.ProviderBookingCom, TotalPrice: 110000},
	}

	result := DedupeOffers(offers)
	if len(result) != 2 {
		t.Fatalf("expected 2 unique providers, got %d", len(result))
	}
	if result[0].TotalPrice != 100000 {
		t.Errorf("expected the cheaper Airbnb quote kept, got %d", result[0].TotalPrice)
	}
}
