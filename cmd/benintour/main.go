package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kwabo/benintour/cmd/benintour/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "benintour",
		Short: "Benin tourism toolkit – destinations, tours, and stay offers",
		Long:  "Discover Benin destinations and guided tours, compare deterministic multi-provider stay offers, and file booking requests. JSON output throughout.",
	}

	root.PersistentFlags().String("mode", "", "Provider mode: synthetic, live, hybrid (default from config/env)")

	root.AddCommand(commands.OffersCmd())
	root.AddCommand(commands.LocationsCmd())
	root.AddCommand(commands.ToursCmd())
	root.AddCommand(commands.BookCmd())
	root.AddCommand(commands.ProvidersCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(commands.ServeCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print benintour version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("benintour v0.1.0")
		},
	}
}
