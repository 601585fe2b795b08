// Package catalog holds the built-in directory of Benin destinations and
// guided tours. The data ships embedded in the binary so the CLI works
// offline; the HTTP API seeds its database from the same catalog.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/kwabo/benintour/internal/booking"
)

//go:embed data/catalog.yaml
var rawCatalog []byte

// Location is a visitable destination with an optional nightly base price
// used to anchor synthetic offers.
type Location struct {
	ID            string  `yaml:"id" json:"id"`
	Name          string  `yaml:"name" json:"name"`
	Region        string  `yaml:"region" json:"region"`
	Category      string  `yaml:"category" json:"category"`
	Description   string  `yaml:"description" json:"description"`
	Rating        float64 `yaml:"rating" json:"rating"`
	Latitude      float64 `yaml:"latitude" json:"latitude"`
	Longitude     float64 `yaml:"longitude" json:"longitude"`
	PriceAmount   int     `yaml:"priceAmount" json:"priceAmount,omitempty"`
	PriceCurrency string  `yaml:"priceCurrency" json:"priceCurrency,omitempty"`
	PriceLabel    string  `yaml:"priceLabel" json:"priceLabel,omitempty"`
}

// Booking projects the location onto the slice the offer engine consumes.
func (l Location) Booking() booking.Location {
	return booking.Location{
		ID:            l.ID,
		Name:          l.Name,
		PriceAmount:   l.PriceAmount,
		PriceCurrency: l.PriceCurrency,
		PriceLabel:    l.PriceLabel,
	}
}

// Tour is a guided activity anchored at a location.
type Tour struct {
	ID            string `yaml:"id" json:"id"`
	Name          string `yaml:"name" json:"name"`
	LocationID    string `yaml:"locationId" json:"locationId"`
	Description   string `yaml:"description" json:"description"`
	DurationHours int    `yaml:"durationHours" json:"durationHours"`
	PriceAmount   int    `yaml:"priceAmount" json:"priceAmount"`
	PriceCurrency string `yaml:"priceCurrency" json:"priceCurrency"`
}

type Catalog struct {
	locations []Location
	tours     []Tour
	byID      map[string]Location
}

// Load parses the embedded catalog. It fails on duplicate location IDs or
// tours pointing at unknown locations, which would mean the shipped data is
// broken.
func Load() (*Catalog, error) {
	var data struct {
		Locations []Location `yaml:"locations"`
		Tours     []Tour     `yaml:"tours"`
	}
	if err := yaml.Unmarshal(rawCatalog, &data); err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}

	byID := make(map[string]Location, len(data.Locations))
	for _, l := range data.Locations {
		if _, dup := byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q in catalog", l.ID)
		}
		byID[l.ID] = l
	}

	for _, t := range data.Tours {
		if _, ok := byID[t.LocationID]; !ok {
			return nil, fmt.Errorf("tour %q references unknown location %q", t.ID, t.LocationID)
		}
	}

	return &Catalog{locations: data.Locations, tours: data.Tours, byID: byID}, nil
}

// Locations returns all destinations in catalog order.
func (c *Catalog) Locations() []Location {
	return c.locations
}

// Location looks up a destination by ID.
func (c *Catalog) Location(id string) (Location, bool) {
	l, ok := c.byID[id]
	return l, ok
}

// Tours returns all guided tours in catalog order.
func (c *Catalog) Tours() []Tour {
	return c.tours
}

// ToursFor returns the tours anchored at the given location.
func (c *Catalog) ToursFor(locationID string) []Tour {
	return lo.Filter(c.tours, func(t Tour, _ int) bool {
		return t.LocationID == locationID
	})
}
