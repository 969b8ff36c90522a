package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

func TestLocate(t *testing.T) {
	c := Default()
	l := NewLocator(c, rand.New(rand.NewPCG(5, 6)), 10*time.Millisecond)

	start := time.Now()
	r, d, err := l.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Locate returned after %v, want at least the configured delay", elapsed)
	}
	if _, _, err := c.FindSubRegion(r.ID, d.ID); err != nil {
		t.Errorf("located %s/%s is not in the catalog: %v", r.ID, d.ID, err)
	}
}

func TestLocateCancelled(t *testing.T) {
	l := NewLocator(Default(), rand.New(rand.NewPCG(1, 1)), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := l.Locate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Locate on a cancelled context = %v, want context.Canceled", err)
	}
}

func TestLocateNoDelayCancelled(t *testing.T) {
	l := NewLocator(Default(), rand.New(rand.NewPCG(1, 1)), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := l.Locate(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Locate = %v, want context.Canceled", err)
	}
}

func TestLocateEmptyCatalog(t *testing.T) {
	c, err := Load(strings.NewReader("regions:\n  - id: X\n    name: Empty\n"))
	if err != nil {
		t.Fatal(err)
	}
	l := NewLocator(c, rand.New(rand.NewPCG(1, 1)), 0)
	if _, _, err := l.Locate(context.Background()); !errors.Is(err, ErrNoDistricts) {
		t.Errorf("Locate = %v, want ErrNoDistricts", err)
	}
}
