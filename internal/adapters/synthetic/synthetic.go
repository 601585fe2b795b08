// Package synthetic exposes the deterministic booking engine as a provider
// adapter, so it plugs into the router alongside future live integrations.
package synthetic

import (
	"github.com/kwabo/benintour/internal/booking"
	"github.com/kwabo/benintour/internal/core"
)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Name() string            { return core.SyntheticProviderName }
func (a *Adapter) Tier() core.ProviderTier { return core.TierBuiltIn }
func (a *Adapter) Capabilities() []core.Capability {
	return []core.Capability{core.CapOffersSearch}
}

func (a *Adapter) Available() (bool, string) { return true, "" }

// SearchOffers quotes every supported provider from the engine. Guest
// counts below one are clamped before generation; the UI enforces a [1,8]
// range, but the adapter should not depend on that.
func (a *Adapter) SearchOffers(req core.SearchRequest) ([]booking.Offer, error) {
	params := req.Params()
	if params.Guests < 1 {
		params.Guests = 1
	}
	return booking.Generate(req.Location, params), nil
}
