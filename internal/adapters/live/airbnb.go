package live

import (
	"fmt"
	"os"

	"github.com/kwabo/benintour/internal/booking"
	"github.com/kwabo/benintour/internal/core"
)

// AirbnbAdapter will provide real Airbnb quotes. Airbnb has no public API;
// this adapter is deep-link / affiliate based and stays disabled until
// AIRBNB_AFFILIATE_ID is set.
type AirbnbAdapter struct{}

func NewAirbnbAdapter() *AirbnbAdapter {
	return &AirbnbAdapter{}
}

func (a *AirbnbAdapter) Name() string            { return "airbnb" }
func (a *AirbnbAdapter) Tier() core.ProviderTier { return core.TierPartnerRequired }
func (a *AirbnbAdapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapOffersSearch, core.CapDeepLink}
}

func (a *AirbnbAdapter) Available() (bool, string) {
	if os.Getenv("AIRBNB_AFFILIATE_ID") == "" {
		return false, "set AIRBNB_AFFILIATE_ID (Airbnb affiliate or partner program required)"
	}
	return true, ""
}

func (a *AirbnbAdapter) SearchOffers(req core.SearchRequest) ([]booking.Offer, error) {
	// TODO: deep-link builder once the affiliate program application clears.
	// Pattern: https://www.airbnb.com/s/{location}/homes?checkin={date}&checkout={date}&adults={n}
	return nil, fmt.Errorf("airbnb adapter not yet implemented")
}
