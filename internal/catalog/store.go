package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/alefmoda/alef-golang/internal/models"
)

// Store holds the normalized catalog snapshot and revalidates it against
// NocoDB once per TTL. A refresh that comes back empty after a previous
// good fetch keeps the old snapshot; only a cold failure serves the
// empty catalog.
type Store struct {
	client *Client
	ttl    time.Duration

	mu           sync.RWMutex
	products     []models.Product
	tzitzitImage string
	fetchedAt    time.Time
	loaded       bool
}

// NewStore wraps a NocoDB client with snapshot caching.
func NewStore(client *Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Products returns the current snapshot, revalidating first when stale.
func (s *Store) Products(ctx context.Context) []models.Product {
	s.revalidate(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// TzitzitImage returns the proxied upsell preview source, if any.
func (s *Store) TzitzitImage(ctx context.Context) string {
	s.revalidate(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tzitzitImage
}

// Refresh forces a fetch regardless of TTL.
func (s *Store) Refresh(ctx context.Context) int {
	garments := s.client.FetchGarments(ctx)
	accessories := s.client.FetchAccessories(ctx)
	tzitzit := s.client.FetchTzitzitImage(ctx)

	products := Normalize(garments, accessories)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(products) == 0 && s.loaded {
		log.Println("Catalog refresh returned no products; keeping previous snapshot")
		s.fetchedAt = time.Now()
		return len(s.products)
	}

	s.products = products
	s.tzitzitImage = tzitzit
	s.fetchedAt = time.Now()
	s.loaded = true
	return len(products)
}

func (s *Store) revalidate(ctx context.Context) {
	s.mu.RLock()
	fresh := s.loaded && time.Since(s.fetchedAt) < s.ttl
	s.mu.RUnlock()

	if fresh {
		return
	}
	s.Refresh(ctx)
}
