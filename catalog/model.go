package catalog

import "github.com/zalepa/ourvoice/i18n"

// Region is a state and its districts in authored order.
type Region struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	NameHi     string      `json:"nameHi" yaml:"nameHi"`
	SubRegions []SubRegion `json:"districts" yaml:"districts"`
}

// SubRegion is a district. IDs are only unique within the parent Region.
type SubRegion struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	NameHi string `json:"nameHi" yaml:"nameHi"`
}

// DisplayName returns the region name in lang.
func (r Region) DisplayName(lang i18n.Language) string {
	return i18n.Text{En: r.Name, Hi: r.NameHi}.In(lang)
}

// DisplayName returns the district name in lang.
func (d SubRegion) DisplayName(lang i18n.Language) string {
	return i18n.Text{En: d.Name, Hi: d.NameHi}.In(lang)
}

// FindSubRegion looks up a district of r by exact id. Districts of other
// regions are never considered.
func (r Region) FindSubRegion(id string) (SubRegion, error) {
	for _, d := range r.SubRegions {
		if d.ID == id {
			return d, nil
		}
	}
	return SubRegion{}, notFound("district", id, r.ID)
}

func (r Region) clone() Region {
	r.SubRegions = append([]SubRegion(nil), r.SubRegions...)
	return r
}
