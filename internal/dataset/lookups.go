package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Lookups holds the fixed tables the deriver maps coded fields through.
// Swapping them lets the same pipeline run over a differently coded dataset.
type Lookups struct {
	Countries map[int]string
	Colors    map[string]string
	PriceTier func(priceRange float64) string
}

// DefaultLookups returns the country, color and price tables of the
// restaurant dataset.
func DefaultLookups() Lookups {
	return Lookups{
		Countries: map[int]string{
			1:   "India",
			14:  "Australia",
			30:  "Brazil",
			37:  "Canada",
			94:  "Indonesia",
			148: "New Zealand",
			162: "Philippines",
			166: "Qatar",
			184: "Singapore",
			189: "South Africa",
			191: "Sri Lanka",
			208: "Turkey",
			214: "United Arab Emirates",
			215: "England",
			216: "United States of America",
		},
		Colors: map[string]string{
			"3F7E00": "darkgreen",
			"5BA829": "green",
			"9ACD32": "lightgreen",
			"CDD614": "orange",
			"FFBA00": "red",
			"CBCBC8": "darkred",
			"FF7800": "darkred",
		},
		PriceTier: PriceType,
	}
}

// PriceType maps a price range onto its tier. Anything outside 1..3 is gourmet.
func PriceType(priceRange float64) string {
	switch priceRange {
	case 1:
		return "cheap"
	case 2:
		return "normal"
	case 3:
		return "expensive"
	default:
		return "gourmet"
	}
}

type lookupsFile struct {
	Countries map[string]string `json:"countries"`
	Colors    map[string]string `json:"colors"`
}

// LoadLookups reads alternate country and color tables from a JSON file.
// Tables missing from the file keep their defaults.
func LoadLookups(path string) (Lookups, error) {
	l := DefaultLookups()

	b, err := os.ReadFile(path)
	if err != nil {
		return l, err
	}

	var f lookupsFile
	if err := json.Unmarshal(b, &f); err != nil {
		return l, fmt.Errorf("parse lookups %s: %w", path, err)
	}

	if len(f.Countries) > 0 {
		l.Countries = make(map[int]string, len(f.Countries))
		for k, name := range f.Countries {
			code, err := strconv.Atoi(k)
			if err != nil {
				return l, fmt.Errorf("lookups %s: country code %q is not an integer", path, k)
			}
			l.Countries[code] = name
		}
	}
	if len(f.Colors) > 0 {
		l.Colors = f.Colors
	}
	return l, nil
}
