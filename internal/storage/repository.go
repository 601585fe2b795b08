package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kwabo/benintour/internal/catalog"
)

// Booking request statuses. A request starts pending and a provider later
// confirms or rejects it.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusRejected  = "rejected"
)

// Booking is a stored booking request for a stay at a catalog location.
// This is a request record, not a reservation: no payment, no durability
// guarantee beyond the database row.
type Booking struct {
	ID         string    `json:"id"`
	LocationID string    `json:"locationId"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	Guests     int       `json:"guests"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for locations and booking requests.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// SeedLocations upserts the embedded catalog into the locations table so
// the API serves the same directory the CLI ships with.
func (r *Repository) SeedLocations(ctx context.Context, locations []catalog.Location) error {
	const q = `
		INSERT INTO locations (id, name, region, category, description, rating,
			latitude, longitude, price_amount, price_currency, price_label, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			region = EXCLUDED.region,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			rating = EXCLUDED.rating,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			price_amount = EXCLUDED.price_amount,
			price_currency = EXCLUDED.price_currency,
			price_label = EXCLUDED.price_label,
			updated_at = now()
	`

	for _, l := range locations {
		_, err := r.q.Exec(ctx, q,
			l.ID, l.Name, l.Region, l.Category, l.Description, l.Rating,
			l.Latitude, l.Longitude, l.PriceAmount, l.PriceCurrency, l.PriceLabel)
		if err != nil {
			return fmt.Errorf("seeding location %s: %w", l.ID, err)
		}
	}

	return nil
}

// ListLocations returns every stored location ordered by name.
func (r *Repository) ListLocations(ctx context.Context) ([]catalog.Location, error) {
	const q = `
		SELECT id, name, region, category, description, rating,
			latitude, longitude, price_amount, price_currency, price_label
		FROM locations
		ORDER BY name
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var out []catalog.Location
	for rows.Next() {
		var l catalog.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Region, &l.Category, &l.Description,
			&l.Rating, &l.Latitude, &l.Longitude,
			&l.PriceAmount, &l.PriceCurrency, &l.PriceLabel); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}

	return out, nil
}

// GetLocation retrieves one location by ID. Returns nil, nil when not found.
func (r *Repository) GetLocation(ctx context.Context, id string) (*catalog.Location, error) {
	const q = `
		SELECT id, name, region, category, description, rating,
			latitude, longitude, price_amount, price_currency, price_label
		FROM locations
		WHERE id = $1
	`

	var l catalog.Location
	err := r.q.QueryRow(ctx, q, id).Scan(&l.ID, &l.Name, &l.Region, &l.Category,
		&l.Description, &l.Rating, &l.Latitude, &l.Longitude,
		&l.PriceAmount, &l.PriceCurrency, &l.PriceLabel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying location %s: %w", id, err)
	}

	return &l, nil
}

// CreateBooking stores a new pending booking request and returns it with
// its generated ID.
func (r *Repository) CreateBooking(ctx context.Context, b Booking) (*Booking, error) {
	const q = `
		INSERT INTO bookings (id, location_id, check_in, check_out, guests,
			guest_name, guest_email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	b.ID = uuid.NewString()
	b.Status = BookingStatusPending

	err := r.q.QueryRow(ctx, q, b.ID, b.LocationID, b.CheckIn, b.CheckOut,
		b.Guests, b.GuestName, b.GuestEmail, b.Status).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("inserting booking for location %s: %w", b.LocationID, err)
	}

	return &b, nil
}

// GetBooking retrieves one booking request by ID. Returns nil, nil when not found.
func (r *Repository) GetBooking(ctx context.Context, id string) (*Booking, error) {
	const q = `
		SELECT id, location_id, to_char(check_in, 'YYYY-MM-DD'), to_char(check_out, 'YYYY-MM-DD'),
			guests, guest_name, guest_email, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.q.QueryRow(ctx, q, id).Scan(&b.ID, &b.LocationID, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.GuestName, &b.GuestEmail, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying booking %s: %w", id, err)
	}

	return &b, nil
}

// UpdateBookingStatus moves a booking request to confirmed or rejected.
func (r *Repository) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if status != BookingStatusConfirmed && status != BookingStatusRejected {
		return fmt.Errorf("invalid booking status %q", status)
	}

	const q = `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.q.Exec(ctx, q, id, status)
	if err != nil {
		return fmt.Errorf("updating booking %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id)
	}

	return nil
}

// ListBookingsByEmail returns a guest's booking requests, newest first.
func (r *Repository) ListBookingsByEmail(ctx context.Context, email string) ([]Booking, error) {
	const q = `
		SELECT id, location_id, to_char(check_in, 'YYYY-MM-DD'), to_char(check_out, 'YYYY-MM-DD'),
			guests, guest_name, guest_email, status, created_at, updated_at
		FROM bookings
		WHERE guest_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, q, email)
	if err != nil {
		return nil, fmt.Errorf("querying bookings for %s: %w", email, err)
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.LocationID, &b.CheckIn, &b.CheckOut,
			&b.Guests, &b.GuestName, &b.GuestEmail, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}

	return out, nil
}
