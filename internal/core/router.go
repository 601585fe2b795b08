package core

import (
	"github.com/kwabo/benintour/internal/config"
)

// SyntheticProviderName is the registered name of the built-in engine
// adapter. The router treats it as the fallback when no live adapter can
// serve a request.
const SyntheticProviderName = "synthetic"

type Router struct {
	cfg      *config.Config
	adapters []ProviderAdapter
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{cfg: cfg}
}

func (r *Router) Register(a ProviderAdapter) {
	r.adapters = append(r.adapters, a)
}

func (r *Router) ActiveAdapters() []ProviderAdapter {
	var out []ProviderAdapter
	for _, a := range r.adapters {
		if r.shouldUse(a.Name()) {
			out = append(out, a)
		}
	}
	return out
}

func (r *Router) shouldUse(name string) bool {
	switch r.cfg.Mode {
	case config.ModeSynthetic:
		return name == SyntheticProviderName
	case config.ModeLive:
		return name != SyntheticProviderName
	case config.ModeHybrid:
		if name != SyntheticProviderName {
			return r.cfg.ProviderHasCredentials(name)
		}
		return r.noLiveAlternative()
	}
	return false
}

// noLiveAlternative reports whether no live adapter has credentials, which
// in hybrid mode keeps the synthetic engine in the rotation.
func (r *Router) noLiveAlternative() bool {
	for _, a := range r.adapters {
		if a.Name() != SyntheticProviderName && r.cfg.ProviderHasCredentials(a.Name()) {
			return false
		}
	}
	return true
}

func (r *Router) ProviderInfos() []ProviderInfo {
	var infos []ProviderInfo

	for _, a := range r.adapters {
		info := ProviderInfo{
			Name:         a.Name(),
			Capabilities: a.Capabilities(),
			Tier:         a.Tier(),
		}
		if avail, reason := a.Available(); avail {
			info.Status = "active"
		} else {
			info.Status = "no_credentials"
			info.Reason = reason
		}
		if r.cfg.Mode == config.ModeSynthetic && a.Name() != SyntheticProviderName {
			info.Status = "inactive"
			info.Reason = "mode is synthetic"
		}
		infos = append(infos, info)
	}

	return infos
}
