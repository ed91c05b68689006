package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Deriver adds the columns computed from coded raw fields.
type Deriver struct {
	lookups Lookups
}

func NewDeriver(lookups Lookups) *Deriver {
	if lookups.PriceTier == nil {
		lookups.PriceTier = PriceType
	}
	return &Deriver{lookups: lookups}
}

// Derive returns a copy of t with country, price_type and color_name appended
// and cuisines cut down to its first listed entry. An unmapped country code or
// rating color aborts the whole derivation.
func (d *Deriver) Derive(t *Table) (*Table, error) {
	idx := map[string]int{}
	for _, name := range []string{ColCountryCode, ColPriceRange, ColRatingColor, ColCuisines} {
		i := t.Index(name)
		if i < 0 {
			return nil, missing(name)
		}
		idx[name] = i
	}

	out := t.clone()
	out.Columns = append(out.Columns, ColCountry, ColPriceType, ColColorName)

	for r, row := range out.Rows {
		country, err := d.Country(r+1, row[idx[ColCountryCode]].Text)
		if err != nil {
			return nil, err
		}
		color, err := d.ColorName(r+1, row[idx[ColRatingColor]].Text)
		if err != nil {
			return nil, err
		}

		row[idx[ColCuisines]] = Text(PrimaryCuisine(row[idx[ColCuisines]]))
		out.Rows[r] = append(row,
			Text(country),
			Text(d.PriceType(row[idx[ColPriceRange]].Text)),
			Text(color),
		)
	}
	return out, nil
}

// Country resolves a raw country code. row is only used for error reporting.
func (d *Deriver) Country(row int, raw string) (string, error) {
	code, ok := parseWhole(raw)
	if ok {
		if name, found := d.lookups.Countries[code]; found {
			return name, nil
		}
	}
	return "", &UnknownCountryCodeError{Row: row, Code: raw}
}

// ColorName resolves a raw rating color hex code.
func (d *Deriver) ColorName(row int, raw string) (string, error) {
	if name, ok := d.lookups.Colors[raw]; ok {
		return name, nil
	}
	return "", &UnknownColorCodeError{Row: row, Code: raw}
}

// PriceType never fails: text that is not a number falls in the top tier,
// like any other value outside 1..3.
func (d *Deriver) PriceType(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return d.lookups.PriceTier(math.NaN())
	}
	return d.lookups.PriceTier(v)
}

// PrimaryCuisine returns the first comma separated entry of the cell text.
// A missing cell is rendered as "nan", the text form of an absent value.
func PrimaryCuisine(v Value) string {
	s := v.Text
	if v.Null {
		s = "nan"
	}
	first, _, _ := strings.Cut(s, ",")
	return first
}

// parseWhole accepts "14" and "14.0" but not "14.5".
func parseWhole(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
