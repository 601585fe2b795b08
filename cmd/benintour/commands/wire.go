package commands

import (
	"github.com/kwabo/benintour/internal/adapters/live"
	"github.com/kwabo/benintour/internal/adapters/synthetic"
	"github.com/kwabo/benintour/internal/config"
	"github.com/kwabo/benintour/internal/core"
)

func buildRouter(cfg *config.Config) *core.Router {
	router := core.NewRouter(cfg)

	router.Register(synthetic.New())
	router.Register(live.NewAirbnbAdapter())
	router.Register(live.NewBookingComAdapter())

	return router
}
