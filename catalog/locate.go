package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"
)

// ErrNoDistricts is returned by Locate when the catalog has nothing to pick.
var ErrNoDistricts = errors.New("catalog has no districts")

// Locator simulates detecting the user's district: it waits for a fixed delay
// and then picks a random district. Safe for concurrent use.
type Locator struct {
	catalog *Catalog
	delay   time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLocator returns a locator over c.
func NewLocator(c *Catalog, rng *rand.Rand, delay time.Duration) *Locator {
	return &Locator{catalog: c, rng: rng, delay: delay}
}

// Locate waits for the locator's delay and returns a random region and
// district. It returns ctx.Err() if ctx ends first.
func (l *Locator) Locate(ctx context.Context) (Region, SubRegion, error) {
	if l.delay > 0 {
		t := time.NewTimer(l.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Region{}, SubRegion{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return Region{}, SubRegion{}, err
	}

	l.mu.Lock()
	r, d, ok := l.catalog.Pick(l.rng)
	l.mu.Unlock()
	if !ok {
		return Region{}, SubRegion{}, ErrNoDistricts
	}
	return r, d, nil
}
