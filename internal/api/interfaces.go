package api

import (
	"context"

	"github.com/kwabo/benintour/internal/catalog"
	"github.com/kwabo/benintour/internal/core"
	"github.com/kwabo/benintour/internal/storage"
)

// LocationRepo defines the location storage operations needed by handlers.
type LocationRepo interface {
	ListLocations(ctx context.Context) ([]catalog.Location, error)
	GetLocation(ctx context.Context, id string) (*catalog.Location, error)
}

// BookingRepo defines the booking-request storage operations needed by handlers.
type BookingRepo interface {
	CreateBooking(ctx context.Context, b storage.Booking) (*storage.Booking, error)
	GetBooking(ctx context.Context, id string) (*storage.Booking, error)
}

// ResultCache defines the search-result cache operations needed by handlers.
type ResultCache interface {
	Get(ctx context.Context, locationID, checkIn, checkOut string, guests int) (*core.SearchResult, error)
	Set(ctx context.Context, result *core.SearchResult) error
}

// OfferSearcher runs one ranked offer search.
type OfferSearcher interface {
	Search(ctx context.Context, req core.SearchRequest) (*core.SearchResult, error)
}
