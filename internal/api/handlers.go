package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/kwabo/benintour/internal/core"
	"github.com/kwabo/benintour/internal/storage"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	locations LocationRepo
	bookings  BookingRepo
	cache     ResultCache
	searcher  OfferSearcher
	validate  *validator.Validate
	log       *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(locations LocationRepo, bookings BookingRepo, cache ResultCache, searcher OfferSearcher, log *slog.Logger) *Handlers {
	return &Handlers{
		locations: locations,
		bookings:  bookings,
		cache:     cache,
		searcher:  searcher,
		validate:  validator.New(),
		log:       log,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListLocations handles GET /api/v1/locations.
func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.locations.ListLocations(r.Context())
	if err != nil {
		h.log.Error("list locations failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, locs)
}

// GetLocation handles GET /api/v1/locations/{id}.
func (h *Handlers) GetLocation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	loc, err := h.locations.GetLocation(r.Context(), id)
	if err != nil {
		h.log.Error("get location failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if loc == nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

type offersQuery struct {
	CheckIn  string `validate:"required,datetime=2006-01-02"`
	CheckOut string `validate:"required,datetime=2006-01-02"`
	Guests   int    `validate:"min=1,max=8"`
}

// GetOffers handles GET /api/v1/locations/{id}/offers.
// Cache hit → return. Miss → search, cache, return. Offers are
// deterministic, so a cached entry is always as good as a fresh one.
func (h *Handlers) GetOffers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	q := offersQuery{
		CheckIn:  r.URL.Query().Get("checkin"),
		CheckOut: r.URL.Query().Get("checkout"),
		Guests:   2,
	}
	if g := r.URL.Query().Get("guests"); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil {
			writeError(w, http.StatusBadRequest, "guests must be an integer")
			return
		}
		q.Guests = n
	}
	if err := h.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, "invalid query: "+err.Error())
		return
	}

	cached, err := h.cache.Get(r.Context(), id, q.CheckIn, q.CheckOut, q.Guests)
	if err != nil {
		h.log.Error("cache get failed", "location", id, "err", err)
	}
	if cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	loc, err := h.locations.GetLocation(r.Context(), id)
	if err != nil {
		h.log.Error("get location failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if loc == nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}

	result, err := h.searcher.Search(r.Context(), core.SearchRequest{
		Location: loc.Booking(),
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Guests:   q.Guests,
	})
	if err != nil {
		h.log.Error("offer search failed", "location", id, "err", err)
		writeError(w, http.StatusInternalServerError, "offer search failed")
		return
	}

	if err := h.cache.Set(r.Context(), result); err != nil {
		h.log.Warn("cache set failed", "location", id, "err", err)
	}

	writeJSON(w, http.StatusOK, result)
}

type bookingRequest struct {
	LocationID string `json:"locationId" validate:"required"`
	CheckIn    string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests" validate:"required,min=1,max=8"`
	GuestName  string `json:"guestName" validate:"required"`
	GuestEmail string `json:"guestEmail" validate:"required,email"`
}

// CreateBooking handles POST /api/v1/bookings. The request lands as
// pending; confirmation is a provider-side concern out of scope here.
func (h *Handlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking: "+err.Error())
		return
	}

	loc, err := h.locations.GetLocation(r.Context(), req.LocationID)
	if err != nil {
		h.log.Error("get location failed", "id", req.LocationID, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if loc == nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}

	b, err := h.bookings.CreateBooking(r.Context(), storage.Booking{
		LocationID: req.LocationID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
	})
	if err != nil {
		h.log.Error("create booking failed", "location", req.LocationID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to create booking")
		return
	}

	writeJSON(w, http.StatusCreated, b)
}

// GetBooking handles GET /api/v1/bookings/{id}.
func (h *Handlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	b, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		h.log.Error("get booking failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "booking not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity. 200 when both respond, 503 otherwise.
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
