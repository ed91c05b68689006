package dataset

import (
	"strconv"
	"strings"
)

// Canonical column names, after normalization and derivation.
const (
	ColRestaurantID      = "restaurant_id"
	ColRestaurantName    = "restaurant_name"
	ColCountryCode       = "country_code"
	ColCity              = "city"
	ColCuisines          = "cuisines"
	ColAverageCostForTwo = "average_cost_for_two"
	ColPriceRange        = "price_range"
	ColAggregateRating   = "aggregate_rating"
	ColRatingColor       = "rating_color"
	ColVotes             = "votes"
	ColLatitude          = "latitude"
	ColLongitude         = "longitude"

	ColCountry   = "country"
	ColPriceType = "price_type"
	ColColorName = "color_name"
)

// Restaurant is one cleaned, enriched row of the dataset.
type Restaurant struct {
	RestaurantID      int64   `json:"restaurant_id"`
	RestaurantName    string  `json:"restaurant_name"`
	CountryCode       int     `json:"country_code"`
	Country           string  `json:"country"`
	City              string  `json:"city"`
	Cuisines          string  `json:"cuisines"`
	PriceRange        int     `json:"price_range"`
	PriceType         string  `json:"price_type"`
	RatingColor       string  `json:"rating_color"`
	ColorName         string  `json:"color_name"`
	AggregateRating   float64 `json:"aggregate_rating"`
	Votes             int64   `json:"votes"`
	AverageCostForTwo float64 `json:"average_cost_for_two"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
}

var recordColumns = []string{
	ColRestaurantID, ColRestaurantName, ColCountryCode, ColCountry, ColCity,
	ColCuisines, ColPriceRange, ColPriceType, ColRatingColor, ColColorName,
	ColAggregateRating, ColVotes, ColAverageCostForTwo, ColLatitude, ColLongitude,
}

// Decode turns a derived table into typed records.
func Decode(t *Table) ([]Restaurant, error) {
	idx := make(map[string]int, len(recordColumns))
	for _, name := range recordColumns {
		i := t.Index(name)
		if i < 0 {
			return nil, missing(name)
		}
		idx[name] = i
	}

	out := make([]Restaurant, 0, len(t.Rows))
	for r, row := range t.Rows {
		d := decoder{row: row, n: r + 1, idx: idx}

		rec := Restaurant{
			RestaurantID:      d.whole(ColRestaurantID),
			RestaurantName:    d.text(ColRestaurantName),
			CountryCode:       int(d.whole(ColCountryCode)),
			Country:           d.text(ColCountry),
			City:              d.text(ColCity),
			Cuisines:          d.text(ColCuisines),
			PriceRange:        int(d.whole(ColPriceRange)),
			PriceType:         d.text(ColPriceType),
			RatingColor:       d.text(ColRatingColor),
			ColorName:         d.text(ColColorName),
			AggregateRating:   d.number(ColAggregateRating),
			Votes:             d.whole(ColVotes),
			AverageCostForTwo: d.number(ColAverageCostForTwo),
			Latitude:          d.number(ColLatitude),
			Longitude:         d.number(ColLongitude),
		}
		if d.err != nil {
			return nil, d.err
		}
		out = append(out, rec)
	}
	return out, nil
}

// decoder keeps the first error so a record can be decoded field by field.
type decoder struct {
	row []Value
	n   int
	idx map[string]int
	err error
}

func (d *decoder) text(col string) string {
	return d.row[d.idx[col]].Text
}

func (d *decoder) whole(col string) int64 {
	raw := d.text(col)
	if n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
		return n
	}
	if n, ok := parseWhole(raw); ok {
		return int64(n)
	}
	d.fail(col, raw, strconv.ErrSyntax)
	return 0
}

func (d *decoder) number(col string) float64 {
	raw := d.text(col)
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		d.fail(col, raw, err)
		return 0
	}
	return f
}

func (d *decoder) fail(col, raw string, err error) {
	if d.err == nil {
		d.err = &FieldError{Row: d.n, Column: col, Value: raw, Err: err}
	}
}
