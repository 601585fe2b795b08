package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kwabo/benintour/internal/catalog"
	"github.com/kwabo/benintour/internal/output"
)

func LocationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Browse the destination catalog",
	}
	cmd.AddCommand(locationsListCmd())
	cmd.AddCommand(locationsShowCmd())
	return cmd
}

func locationsListCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all catalog destinations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			locs := cat.Locations()
			if region != "" {
				var filtered []catalog.Location
				for _, l := range locs {
					if l.Region == region {
						filtered = append(filtered, l)
					}
				}
				locs = filtered
			}

			return output.JSON(locs)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Filter by region (e.g. Atlantique, Atakora)")
	return cmd
}

func locationsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one destination with its guided tours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			loc, ok := cat.Location(args[0])
			if !ok {
				return fmt.Errorf("unknown location %q", args[0])
			}

			return output.JSON(map[string]any{
				"location": loc,
				"tours":    cat.ToursFor(loc.ID),
			})
		},
	}
}

func ToursCmd() *cobra.Command {
	var locationID string

	cmd := &cobra.Command{
		Use:   "tours",
		Short: "List guided tours, optionally for one destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			if locationID != "" {
				if _, ok := cat.Location(locationID); !ok {
					return fmt.Errorf("unknown location %q", locationID)
				}
				return output.JSON(cat.ToursFor(locationID))
			}
			return output.JSON(cat.Tours())
		},
	}

	cmd.Flags().StringVar(&locationID, "location", "", "Filter tours by location ID")
	return cmd
}
