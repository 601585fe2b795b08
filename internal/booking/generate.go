package booking

import (
	"math"
	"time"
)

// Seed offsets decorrelate the derived quantities of one offer. They are
// part of the deterministic contract; changing them invalidates every
// cached or snapshotted result.
const (
	offsetReviews  = 3
	offsetRating   = 7
	offsetSeasonal = 12
	offsetCleaning = 31
	offsetService  = 57
	offsetTaxes    = 93
)

// Currency default nightly bases, used when a location carries no price.
const (
	defaultBaseXOF = 32000
	defaultBaseUSD = 65
)

type providerProfile struct {
	name       Provider
	multiplier float64
	perks      []string
}

// Profile order is the enumeration order of providers and doubles as the
// implicit tiebreaker for equal scores after a stable sort.
var providerProfiles = []providerProfile{
	{
		name:       ProviderAirbnb,
		multiplier: 1.04,
		perks:      []string{"Entire place", "Self check-in", "Local host tips"},
	},
	{
		name:       ProviderBookingCom,
		multiplier: 0.98,
		perks:      []string{"No booking fees", "24/7 customer support", "Pay at property"},
	},
}

// Generate fabricates one offer per supported provider for the given stay.
// Pure computation: for a fixed (location, dates, guests) query the returned
// offers are bit-for-bit identical across calls.
func Generate(loc Location, params SearchParams) []Offer {
	nights := StayNights(params.CheckIn, params.CheckOut)
	offers := make([]Offer, 0, len(providerProfiles))
	for idx, p := range providerProfiles {
		offers = append(offers, buildOffer(loc, params, p, idx, nights))
	}
	return offers
}

func buildOffer(loc Location, params SearchParams, p providerProfile, idx, nights int) Offer {
	currency := loc.PriceCurrency
	if currency == "" {
		currency = "XOF"
	}

	base := float64(loc.PriceAmount)
	if loc.PriceAmount <= 0 {
		if currency == "USD" {
			base = defaultBaseUSD
		} else {
			base = defaultBaseXOF
		}
	}

	seed := querySeed(loc.ID, string(p.name), params.CheckIn, params.CheckOut)

	seasonal := seededRange(seed+offsetSeasonal, 0.90, 1.15)
	guestAdj := 1.0
	if params.Guests > 2 {
		guestAdj += float64(params.Guests-2) * 0.08
	}

	nightly := int(math.Round(base * p.multiplier * seasonal * guestAdj))
	cleaning := int(math.Round(float64(nightly) * seededRange(seed+offsetCleaning, 0.08, 0.18)))
	service := int(math.Round(float64(nightly*nights) * seededRange(seed+offsetService, 0.10, 0.18)))
	taxes := int(math.Round(float64(nightly*nights) * seededRange(seed+offsetTaxes, 0.06, 0.12)))

	rating := math.Round(clamp(seededRange(seed+offsetRating, 4.1, 4.95), 4.1, 4.95)*10) / 10
	reviews := int(math.Round(seededRange(seed+offsetReviews, 120, 980)))

	return Offer{
		Provider:     p.name,
		NightlyPrice: nightly,
		TotalPrice:   nightly*nights + cleaning + service + taxes,
		Currency:     currency,
		Rating:       rating,
		Reviews:      reviews,
		Availability: availabilityBucket(seed, idx),
		Cancellation: cancellationBucket(seed, idx),
		CleaningFee:  cleaning,
		ServiceFee:   service,
		TaxesFee:     taxes,
		Perks:        p.perks,
	}
}

func availabilityBucket(seed int64, idx int) Availability {
	switch (seed + int64(idx)) % 10 {
	case 0, 1:
		return AvailabilitySoldOut
	case 2, 3, 4:
		return AvailabilityLimited
	default:
		return AvailabilityAvailable
	}
}

func cancellationBucket(seed int64, idx int) Cancellation {
	switch (seed + int64(idx)*3) % 3 {
	case 0:
		return CancellationFlexible
	case 1:
		return CancellationModerate
	default:
		return CancellationStrict
	}
}

// StayNights returns the stay length in nights, clamped to a minimum of one.
// Unparsable dates also degrade to a single night instead of failing the
// search. That fail-soft choice mirrors how callers use the engine today;
// rejecting malformed input would be equally defensible.
func StayNights(checkIn, checkOut string) int {
	in, errIn := time.Parse("2006-01-02", checkIn)
	out, errOut := time.Parse("2006-01-02", checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
