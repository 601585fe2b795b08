package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwabo/benintour/internal/booking"
	"github.com/kwabo/benintour/internal/cache"
	"github.com/kwabo/benintour/internal/core"
)

func newTestCache(t *testing.T) (*cache.SearchCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewSearchCache(client, time.Hour), mr
}

func sampleResult() *core.SearchResult {
	return &core.SearchResult{
		Query: core.SearchRequest{
			Location: booking.Location{ID: "ganvie", Name: "Ganvié"},
			CheckIn:  "2024-06-01",
			CheckOut: "2024-06-04",
			Guests:   2,
		},
		Offers: []booking.Offer{
			{Provider: booking.ProviderAirbnb, NightlyPrice: 33000, TotalPrice: 115000, Score: 0.81},
		},
		Nights:     3,
		TotalFound: 1,
	}
}

func TestSearchCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))

	got, err := c.Get(ctx, "ganvie", "2024-06-01", "2024-06-04", 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Nights)
	require.Len(t, got.Offers, 1)
	assert.Equal(t, booking.ProviderAirbnb, got.Offers[0].Provider)
	assert.Equal(t, 0.81, got.Offers[0].Score)
}

func TestSearchCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "nowhere", "2024-06-01", "2024-06-04", 2)
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss should return nil, nil")
}

func TestSearchCache_KeyCoversGuests(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))

	got, err := c.Get(ctx, "ganvie", "2024-06-01", "2024-06-04", 4)
	require.NoError(t, err)
	assert.Nil(t, got, "different guest count must not hit the same entry")
}

func TestSearchCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleResult()))

	mr.FastForward(2 * time.Hour)

	got, err := c.Get(ctx, "ganvie", "2024-06-01", "2024-06-04", 2)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should expire after TTL")
}

func TestSearchCache_SetNil(t *testing.T) {
	c, _ := newTestCache(t)
	require.NoError(t, c.Set(context.Background(), nil))
}
