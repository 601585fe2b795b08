package core

import (
	"time"

	"github.com/kwabo/benintour/internal/booking"
	"github.com/kwabo/benintour/internal/config"
)

type Capability string

const (
	CapOffersSearch Capability = "offers.search"
	CapDeepLink     Capability = "deepLink"
)

type ProviderTier string

const (
	TierBuiltIn         ProviderTier = "builtIn"
	TierPartnerRequired ProviderTier = "partnerRequired"
)

// SearchRequest is one stay query against a catalog location.
type SearchRequest struct {
	Location   booking.Location `json:"location"`
	CheckIn    string           `json:"checkIn"`
	CheckOut   string           `json:"checkOut"`
	Guests     int              `json:"guests,omitempty"`
	MaxResults int              `json:"maxResults,omitempty"`
}

// Params returns the engine-level search parameters for the request.
func (r SearchRequest) Params() booking.SearchParams {
	return booking.SearchParams{CheckIn: r.CheckIn, CheckOut: r.CheckOut, Guests: r.Guests}
}

// SearchResult is the ranked output of one search, plus the highlights and
// any per-provider failures encountered along the way.
type SearchResult struct {
	Query      SearchRequest      `json:"query"`
	Mode       config.Mode        `json:"mode"`
	Providers  []string           `json:"providers"`
	Offers     []booking.Offer    `json:"offers,omitempty"`
	Highlights booking.Highlights `json:"highlights"`
	Nights     int                `json:"nights"`
	TotalFound int                `json:"totalFound"`
	Errors     []ProviderError    `json:"errors,omitempty"`
	FetchedAt  time.Time          `json:"fetchedAt"`
}

type ProviderError struct {
	Provider string `json:"provider"`
	Reason   string `json:"reason"`
	Fallback string `json:"fallback,omitempty"`
}

type ProviderInfo struct {
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
	Tier         ProviderTier `json:"tier"`
	Status       string       `json:"status"`
	Reason       string       `json:"reason,omitempty"`
}

type DoctorReport struct {
	Mode      config.Mode    `json:"mode"`
	Providers []ProviderInfo `json:"providers"`
	Healthy   bool           `json:"healthy"`
	Summary   string         `json:"summary"`
}

// ProviderAdapter is the extension point for real provider integrations.
// The synthetic adapter implements it over the booking engine; live
// adapters are credential-gated stubs until a partner API lands.
type ProviderAdapter interface {
	Name() string
	Tier() ProviderTier
	Capabilities() []Capability
	Available() (bool, string)
	SearchOffers(req SearchRequest) ([]booking.Offer, error)
}
