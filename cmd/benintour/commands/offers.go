package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kwabo/benintour/internal/cache"
	"github.com/kwabo/benintour/internal/catalog"
	"github.com/kwabo/benintour/internal/config"
	"github.com/kwabo/benintour/internal/core"
	"github.com/kwabo/benintour/internal/output"
)

const cliCacheTTL = time.Hour

func OffersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "Search and compare stay offers for a destination",
	}
	cmd.AddCommand(offersSearchCmd())
	cmd.AddCommand(offersHighlightsCmd())
	return cmd
}

type offersFlags struct {
	locationID string
	checkIn    string
	checkOut   string
	guests     int
	max        int
	noCache    bool
}

func (f *offersFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.locationID, "location", "", "Catalog location ID (required; see `benintour locations list`)")
	cmd.Flags().StringVar(&f.checkIn, "checkin", "", "Check-in date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.checkOut, "checkout", "", "Check-out date YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&f.guests, "guests", 2, "Number of guests (1-8)")
	cmd.Flags().IntVar(&f.max, "max", 0, "Maximum offers to return (0 = all)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Bypass the local result cache")
}

func offersSearchCmd() *cobra.Command {
	var flags offersFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search ranked stay offers across providers",
		Example: `  benintour offers search --location ganvie --checkin 2026-06-12 --checkout 2026-06-20
  benintour offers search --location pendjari --checkin 2026-08-01 --checkout 2026-08-05 --guests 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runOfferSearch(cmd, &flags)
			if err != nil {
				output.JSONError("search failed", err.Error())
				return nil
			}
			if result == nil {
				return cmd.Help()
			}
			return output.JSON(result)
		},
	}

	flags.register(cmd)
	return cmd
}

func offersHighlightsCmd() *cobra.Command {
	var flags offersFlags

	cmd := &cobra.Command{
		Use:   "highlights",
		Short: "Show only the best value / best rating / most flexible callouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runOfferSearch(cmd, &flags)
			if err != nil {
				output.JSONError("search failed", err.Error())
				return nil
			}
			if result == nil {
				return cmd.Help()
			}
			return output.JSON(result.Highlights)
		},
	}

	flags.register(cmd)
	return cmd
}

// runOfferSearch resolves the location, consults the local cache, and runs
// the orchestrated search. Returns nil, nil when required flags are
// missing, letting the caller print usage.
func runOfferSearch(cmd *cobra.Command, flags *offersFlags) (*core.SearchResult, error) {
	if flags.locationID == "" || flags.checkIn == "" || flags.checkOut == "" {
		return nil, nil
	}
	if flags.guests < 1 {
		flags.guests = 1
	}
	if flags.guests > 8 {
		flags.guests = 8
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	loc, ok := cat.Location(flags.locationID)
	if !ok {
		return nil, fmt.Errorf("unknown location %q (see `benintour locations list`)", flags.locationID)
	}

	modeFlag, _ := cmd.Flags().GetString("mode")
	cfg := config.Load().WithMode(modeFlag)

	key := cache.CacheKey("offers", string(cfg.Mode), flags.locationID,
		flags.checkIn, flags.checkOut, fmt.Sprint(flags.guests), fmt.Sprint(flags.max))

	fileCache, cacheErr := cache.NewFileCache()
	if !flags.noCache && cacheErr == nil {
		if data, hit := fileCache.Get(key, cliCacheTTL); hit {
			var cached core.SearchResult
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	router := buildRouter(cfg)
	orch := core.NewOrchestrator(router)
	result, err := orch.Search(context.Background(), core.SearchRequest{
		Location:   loc.Booking(),
		CheckIn:    flags.checkIn,
		CheckOut:   flags.checkOut,
		Guests:     flags.guests,
		MaxResults: flags.max,
	})
	if err != nil {
		return nil, err
	}

	if !flags.noCache && cacheErr == nil {
		if data, err := json.Marshal(result); err == nil {
			_ = fileCache.Set(key, data)
		}
	}

	return result, nil
}
