package catalog

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zalepa/ourvoice/i18n"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	regions := c.Regions()
	if len(regions) != 7 {
		t.Fatalf("got %d regions, want 7", len(regions))
	}

	// Authored order, not sorted.
	wantIDs := []string{"UP", "MH", "BR", "RJ", "TN", "WB", "GJ"}
	for i, id := range wantIDs {
		if regions[i].ID != id {
			t.Errorf("regions[%d].ID = %q, want %q", i, regions[i].ID, id)
		}
	}
	for _, r := range regions {
		if len(r.SubRegions) != 5 {
			t.Errorf("region %s has %d districts, want 5", r.ID, len(r.SubRegions))
		}
		if r.NameHi == "" {
			t.Errorf("region %s has no Hindi name", r.ID)
		}
	}

	up := regions[0]
	if up.Name != "Uttar Pradesh" || up.NameHi != "उत्तर प्रदेश" {
		t.Errorf("UP names = %q/%q", up.Name, up.NameHi)
	}
	if up.SubRegions[0] != (SubRegion{ID: "LKO", Name: "Lucknow", NameHi: "लखनऊ"}) {
		t.Errorf("UP first district = %+v", up.SubRegions[0])
	}
}

func TestFindRegionReturnsEveryRegion(t *testing.T) {
	c := Default()
	for _, r := range c.Regions() {
		got, err := c.FindRegion(r.ID)
		if err != nil {
			t.Fatalf("FindRegion(%q): %v", r.ID, err)
		}
		if got.ID != r.ID || got.Name != r.Name || len(got.SubRegions) != len(r.SubRegions) {
			t.Errorf("FindRegion(%q) = %+v, want %+v", r.ID, got, r)
		}
	}
}

func TestFindRegionNotFound(t *testing.T) {
	tests := []string{"", "XX", "up", "U", "UP "}
	for _, id := range tests {
		_, err := Default().FindRegion(id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("FindRegion(%q) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestFindSubRegionScopedToRegion(t *testing.T) {
	c := Default()
	regions := c.Regions()
	for _, r := range regions {
		for _, d := range r.SubRegions {
			got, err := r.FindSubRegion(d.ID)
			if err != nil {
				t.Fatalf("%s.FindSubRegion(%q): %v", r.ID, d.ID, err)
			}
			if got != d {
				t.Errorf("%s.FindSubRegion(%q) = %+v, want %+v", r.ID, d.ID, got, d)
			}

			// Any other region that does not contain this id reports not found.
			for _, other := range regions {
				if other.ID == r.ID || contains(other, d.ID) {
					continue
				}
				if _, err := other.FindSubRegion(d.ID); !errors.Is(err, ErrNotFound) {
					t.Errorf("%s.FindSubRegion(%q) error = %v, want ErrNotFound", other.ID, d.ID, err)
				}
			}
		}
	}
}

func contains(r Region, id string) bool {
	for _, d := range r.SubRegions {
		if d.ID == id {
			return true
		}
	}
	return false
}

func TestCatalogFindSubRegion(t *testing.T) {
	c := Default()

	r, d, err := c.FindSubRegion("RJ", "JPR")
	if err != nil {
		t.Fatalf("FindSubRegion(RJ, JPR): %v", err)
	}
	if r.Name != "Rajasthan" || d.Name != "Jaipur" {
		t.Errorf("got %s/%s, want Rajasthan/Jaipur", r.Name, d.Name)
	}

	if _, _, err := c.FindSubRegion("XX", "JPR"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown region: error = %v, want ErrNotFound", err)
	}
	if _, _, err := c.FindSubRegion("UP", "JPR"); !errors.Is(err, ErrNotFound) {
		t.Errorf("district of another region: error = %v, want ErrNotFound", err)
	}
	if _, _, err := c.FindSubRegion("UP", "JPR"); err == nil || !strings.Contains(err.Error(), `"JPR"`) {
		t.Errorf("error should name the district id, got %v", err)
	}
}

func TestRegionsReturnsCopies(t *testing.T) {
	c := Default()
	regions := c.Regions()
	regions[0].Name = "changed"
	regions[0].SubRegions[0].Name = "changed"

	again := c.Regions()
	if again[0].Name != "Uttar Pradesh" {
		t.Errorf("region name mutated through Regions(): %q", again[0].Name)
	}
	if again[0].SubRegions[0].Name != "Lucknow" {
		t.Errorf("district name mutated through Regions(): %q", again[0].SubRegions[0].Name)
	}

	r, _ := c.FindRegion("UP")
	r.SubRegions[1].ID = "changed"
	if _, err := c.FindSubRegion("UP", "KNP"); err != nil {
		t.Errorf("district mutated through FindRegion(): %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	r, d, err := Default().FindSubRegion("WB", "KOL")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.DisplayName(i18n.Hindi); got != "पश्चिम बंगाल" {
		t.Errorf("region hi = %q", got)
	}
	if got := d.DisplayName(i18n.English); got != "Kolkata" {
		t.Errorf("district en = %q", got)
	}
	noHindi := SubRegion{ID: "X", Name: "Xtown"}
	if got := noHindi.DisplayName(i18n.Hindi); got != "Xtown" {
		t.Errorf("fallback = %q, want Xtown", got)
	}
}

func TestLoad(t *testing.T) {
	doc := `
regions:
  - id: KA
    name: Karnataka
    nameHi: कर्नाटक
    districts:
      - {id: BLR, name: Bengaluru}
      - {id: MYS, name: Mysuru, nameHi: मैसूरु}
  - id: KA
    name: Duplicate
`
	c, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	// Duplicates are not rejected; the first match wins.
	r, err := c.FindRegion("KA")
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Karnataka" {
		t.Errorf("FindRegion(KA).Name = %q, want Karnataka", r.Name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "regions: []\n", "no regions"},
		{"not yaml", "regions: [\n", "parsing catalog YAML"},
		{"missing region id", "regions:\n  - name: X\n", "region 1: missing id"},
		{"missing region name", "regions:\n  - id: X\n", "region X: missing name"},
		{"missing district id", "regions:\n  - id: X\n    name: X\n    districts:\n      - {name: Y}\n", "district 1: missing id"},
		{"missing district name", "regions:\n  - id: X\n    name: X\n    districts:\n      - {id: Y}\n", "district Y: missing name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte("regions:\n  - id: GA\n    name: Goa\n    districts:\n      - {id: NGA, name: North Goa}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, _, err := c.FindSubRegion("GA", "NGA"); err != nil {
		t.Errorf("FindSubRegion(GA, NGA): %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPick(t *testing.T) {
	c := Default()
	rng := rand.New(rand.NewPCG(1, 2))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		r, d, ok := c.Pick(rng)
		if !ok {
			t.Fatal("Pick returned ok=false on default catalog")
		}
		if !contains(r, d.ID) {
			t.Fatalf("picked district %s is not in region %s", d.ID, r.ID)
		}
		seen[r.ID] = true
	}
	if len(seen) != c.Len() {
		t.Errorf("500 picks covered %d regions, want %d", len(seen), c.Len())
	}
}

func TestPickNoDistricts(t *testing.T) {
	c, err := Load(strings.NewReader("regions:\n  - id: X\n    name: Empty\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, ok := c.Pick(rand.New(rand.NewPCG(1, 2))); ok {
		t.Error("Pick on a catalog without districts should return ok=false")
	}
}
