package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds the Chi router with all routes configured. Rate limiting
// is applied globally: 60 requests per minute per IP. There is no auth
// layer; the API serves public catalog and synthetic offer data.
func NewRouter(handlers *Handlers, db dbPinger, redisClient redisPinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))

	r.Get("/api/v1/locations", handlers.ListLocations)
	r.Get("/api/v1/locations/{id}", handlers.GetLocation)
	r.Get("/api/v1/locations/{id}/offers", handlers.GetOffers)

	r.Post("/api/v1/bookings", handlers.CreateBooking)
	r.Get("/api/v1/bookings/{id}", handlers.GetBooking)

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
