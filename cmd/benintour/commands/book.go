package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kwabo/benintour/internal/catalog"
	"github.com/kwabo/benintour/internal/output"
	"github.com/kwabo/benintour/internal/storage"
)

func BookCmd() *cobra.Command {
	var (
		locationID string
		checkIn    string
		checkOut   string
		guests     int
		guestName  string
		guestEmail string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "File a booking request for a destination stay",
		Long:  "Creates a pending booking request. With DATABASE_URL set the request is persisted; otherwise it is printed for manual submission.",
		Example: `  benintour book --location ouidah --checkin 2026-06-12 --checkout 2026-06-15 \
    --guests 2 --name "Ayo Dossou" --email ayo@example.bj`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if locationID == "" || checkIn == "" || checkOut == "" || guestName == "" || guestEmail == "" {
				return cmd.Help()
			}
			if guests < 1 {
				guests = 1
			}
			if guests > 8 {
				guests = 8
			}

			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			if _, ok := cat.Location(locationID); !ok {
				return fmt.Errorf("unknown location %q (see `benintour locations list`)", locationID)
			}

			req := storage.Booking{
				LocationID: locationID,
				CheckIn:    checkIn,
				CheckOut:   checkOut,
				Guests:     guests,
				GuestName:  guestName,
				GuestEmail: guestEmail,
				Status:     storage.BookingStatusPending,
			}

			databaseURL := os.Getenv("DATABASE_URL")
			if databaseURL == "" {
				// Offline mode: assign a request ID locally and print it.
				req.ID = uuid.NewString()
				req.CreatedAt = time.Now().UTC()
				return output.JSON(map[string]any{
					"booking":   req,
					"persisted": false,
					"note":      "set DATABASE_URL to persist booking requests",
				})
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			pool, err := storage.Connect(ctx, databaseURL)
			if err != nil {
				output.JSONError("database connection failed", err.Error())
				return nil
			}
			defer pool.Close()

			repo := storage.NewRepository(pool)
			created, err := repo.CreateBooking(ctx, req)
			if err != nil {
				output.JSONError("booking failed", err.Error())
				return nil
			}

			return output.JSON(map[string]any{
				"booking":   created,
				"persisted": true,
			})
		},
	}

	cmd.Flags().StringVar(&locationID, "location", "", "Catalog location ID (required)")
	cmd.Flags().StringVar(&checkIn, "checkin", "", "Check-in date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&checkOut, "checkout", "", "Check-out date YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&guests, "guests", 2, "Number of guests (1-8)")
	cmd.Flags().StringVar(&guestName, "name", "", "Guest full name (required)")
	cmd.Flags().StringVar(&guestEmail, "email", "", "Guest contact email (required)")

	return cmd
}
