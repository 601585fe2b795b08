package live

import (
	"fmt"
	"os"

	"github.com/kwabo/benintour/internal/booking"
	"github.com/kwabo/benintour/internal/core"
)

// BookingComAdapter connects to the Booking.com Demand API.
// Requires partner signup: https://developers.booking.com/demand/docs
// Set BOOKING_PARTNER_TOKEN to enable.
type BookingComAdapter struct{}

func NewBookingComAdapter() *BookingComAdapter {
	return &BookingComAdapter{}
}

func (a *BookingComAdapter) Name() string            { return "bookingcom" }
func (a *BookingComAdapter) Tier() core.ProviderTier { return core.TierPartnerRequired }
func (a *BookingComAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapOffersSearch, core.CapDeepLink}
}

func (a *BookingComAdapter) Available() (bool, string) {
	if os.Getenv("BOOKING_PARTNER_TOKEN") == "" {
		return false, "set BOOKING_PARTNER_TOKEN (Booking.com demand partner signup required)"
	}
	return true, ""
}

func (a *BookingComAdapter) SearchOffers(req core.SearchRequest) ([]booking.Offer, error) {
	// TODO: implement Demand API accommodation search
	// POST https://demandapi.booking.com/3.1/accommodations/search
	return nil, fmt.Errorf("bookingcom adapter not yet implemented")
}
