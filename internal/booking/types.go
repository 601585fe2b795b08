// Package booking implements the synthetic multi-provider offer engine:
// deterministic offer generation, composite scoring, ranking, and highlight
// selection for a stay at a given location. Everything here is a pure
// function of its inputs; the same query always reproduces the same offers.
package booking

// Provider identifies a booking provider. The set is fixed for now; adding
// a provider means adding a profile in generate.go.
type Provider string

const (
	ProviderAirbnb     Provider = "Airbnb"
	ProviderBookingCom Provider = "Booking.com"
)

// Availability buckets an offer's remaining inventory.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityLimited   Availability = "limited"
	AvailabilitySoldOut   Availability = "sold_out"
)

// Cancellation buckets an offer's cancellation policy.
type Cancellation string

const (
	CancellationFlexible Cancellation = "flexible"
	CancellationModerate Cancellation = "moderate"
	CancellationStrict   Cancellation = "strict"
)

// Location is the slice of a catalog location the engine needs. PriceAmount
// and PriceCurrency are optional; zero/empty values fall back to the
// currency default nightly base.
type Location struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PriceAmount   int    `json:"priceAmount,omitempty"`
	PriceCurrency string `json:"priceCurrency,omitempty"`
	PriceLabel    string `json:"priceLabel,omitempty"`
}

// SearchParams describes the stay being priced. Dates are ISO 8601
// (YYYY-MM-DD) strings; unparsable dates degrade to a one-night stay.
type SearchParams struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Guests   int    `json:"guests"`
}

// Offer is a synthetic quote from one provider for the queried stay. Offers
// are ephemeral: recomputed on every query, never stored with an identity of
// their own.
type Offer struct {
	Provider     Provider     `json:"provider"`
	NightlyPrice int          `json:"nightlyPrice"`
	TotalPrice   int          `json:"totalPrice"`
	Currency     string       `json:"currency"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Availability Availability `json:"availability"`
	Cancellation Cancellation `json:"cancellation"`
	CleaningFee  int          `json:"cleaningFee"`
	ServiceFee   int          `json:"serviceFee"`
	TaxesFee     int          `json:"taxesFee"`
	Perks        []string     `json:"perks"`
	Score        float64      `json:"score"`
}

// Highlights are the UI-facing callouts derived from one ranked batch.
// All three are nil for an empty batch.
type Highlights struct {
	BestValue    *Offer `json:"bestValue,omitempty"`
	BestRating   *Offer `json:"bestRating,omitempty"`
	MostFlexible *Offer `json:"mostFlexible,omitempty"`
}
