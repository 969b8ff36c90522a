// Package catalog is the static table of states and their districts that the
// dashboard offers for selection. A Catalog is built once and never mutated;
// every accessor returns copies.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var defaultTable []byte

// ErrNotFound is returned when an identifier matches no catalog entry.
var ErrNotFound = errors.New("not found")

func notFound(kind, id, scope string) error {
	if scope != "" {
		return fmt.Errorf("%s %q in %s: %w", kind, id, scope, ErrNotFound)
	}
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}

// Catalog is an immutable, ordered set of regions.
type Catalog struct {
	regions []Region
}

type catalogFile struct {
	Regions []Region `yaml:"regions"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog embedded in the binary. It is parsed on first
// use and shared afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := parse(defaultTable)
		if err != nil {
			// The embedded table is covered by tests; a failure here is a build defect.
			panic(fmt.Sprintf("catalog: embedded table: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads a catalog YAML document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parse(data)
}

// LoadFile reads a catalog YAML document from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// parse decodes and checks required fields. Identifier uniqueness is a
// data-entry contract and is not checked; lookups return the first match.
func parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if len(f.Regions) == 0 {
		return nil, errors.New("catalog has no regions")
	}
	for i, r := range f.Regions {
		if r.ID == "" {
			return nil, fmt.Errorf("region %d: missing id", i+1)
		}
		if r.Name == "" {
			return nil, fmt.Errorf("region %s: missing name", r.ID)
		}
		for j, d := range r.SubRegions {
			if d.ID == "" {
				return nil, fmt.Errorf("region %s district %d: missing id", r.ID, j+1)
			}
			if d.Name == "" {
				return nil, fmt.Errorf("region %s district %s: missing name", r.ID, d.ID)
			}
		}
	}
	return &Catalog{regions: f.Regions}, nil
}

// Regions returns every region in authored order.
func (c *Catalog) Regions() []Region {
	out := make([]Region, len(c.regions))
	for i, r := range c.regions {
		out[i] = r.clone()
	}
	return out
}

// Len is the number of regions.
func (c *Catalog) Len() int {
	return len(c.regions)
}

// FindRegion looks up a region by exact id.
func (c *Catalog) FindRegion(id string) (Region, error) {
	for _, r := range c.regions {
		if r.ID == id {
			return r.clone(), nil
		}
	}
	return Region{}, notFound("state", id, "")
}

// FindSubRegion looks up a district by region id and district id.
func (c *Catalog) FindSubRegion(regionID, subRegionID string) (Region, SubRegion, error) {
	r, err := c.FindRegion(regionID)
	if err != nil {
		return Region{}, SubRegion{}, err
	}
	d, err := r.FindSubRegion(subRegionID)
	if err != nil {
		return Region{}, SubRegion{}, err
	}
	return r, d, nil
}

// Pick chooses a random region and then a random district within it. Regions
// without districts are skipped; ok is false when no region has any.
func (c *Catalog) Pick(rng *rand.Rand) (Region, SubRegion, bool) {
	var candidates []Region
	for _, r := range c.regions {
		if len(r.SubRegions) > 0 {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return Region{}, SubRegion{}, false
	}
	r := candidates[rng.IntN(len(candidates))]
	d := r.SubRegions[rng.IntN(len(r.SubRegions))]
	return r.clone(), d, true
}
