package restaurant

import (
	"context"
	"sort"
	"strconv"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"
)

type InMemoryRepository struct {
	records []dataset.Restaurant
}

func NewInMemoryRepository(records []dataset.Restaurant) *InMemoryRepository {
	return &InMemoryRepository{records: append([]dataset.Restaurant(nil), records...)}
}

func (r *InMemoryRepository) Summary(ctx context.Context, sel filter.Selection) (*Summary, error) {
	ids := map[int64]bool{}
	codes := map[int]bool{}
	cities := map[string]bool{}
	cuisines := map[string]bool{}
	var votes int64

	for _, rec := range sel.Apply(r.records) {
		ids[rec.RestaurantID] = true
		codes[rec.CountryCode] = true
		cities[rec.City] = true
		cuisines[rec.Cuisines] = true
		votes += rec.Votes
	}

	return &Summary{
		Restaurants: len(ids),
		Countries:   len(codes),
		Cities:      len(cities),
		Cuisines:    len(cuisines),
		Votes:       votes,
	}, nil
}

type accumulator struct {
	group  Group
	sum    float64
	count  int
	unique map[string]bool
}

func (r *InMemoryRepository) Aggregate(ctx context.Context, sel filter.Selection, q Query) ([]Group, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	acc := map[[2]string]*accumulator{}
	for _, rec := range sel.Apply(r.records) {
		if q.RatingAbove != nil && !(rec.AggregateRating > *q.RatingAbove) {
			continue
		}
		if q.RatingBelow != nil && !(rec.AggregateRating < *q.RatingBelow) {
			continue
		}

		var k [2]string
		for i, c := range q.GroupBy {
			k[i] = textField(rec, c)
		}
		a, ok := acc[k]
		if !ok {
			a = &accumulator{group: Group{Key: k[0], Secondary: k[1]}, unique: map[string]bool{}}
			acc[k] = a
		}

		switch q.Reduce {
		case CountUnique:
			a.unique[textField(rec, q.Measure)] = true
		default:
			a.sum += numberField(rec, q.Measure)
			a.count++
		}
	}

	out := make([]Group, 0, len(acc))
	for _, a := range acc {
		g := a.group
		switch q.Reduce {
		case Mean:
			g.Value = a.sum / float64(a.count)
		case Sum:
			g.Value = a.sum
		case CountUnique:
			g.Value = float64(len(a.unique))
		}
		out = append(out, g)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Value != b.Value {
			if q.Order == Ascending {
				return a.Value < b.Value
			}
			return a.Value > b.Value
		}
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		return a.Secondary < b.Secondary
	})

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *InMemoryRepository) TopRestaurant(ctx context.Context, sel filter.Selection, cuisine string) (*dataset.Restaurant, error) {
	var best *dataset.Restaurant
	for i, rec := range r.records {
		if rec.Cuisines != cuisine || !sel.Match(rec) {
			continue
		}
		if best == nil ||
			rec.AggregateRating > best.AggregateRating ||
			(rec.AggregateRating == best.AggregateRating && rec.RestaurantID < best.RestaurantID) {
			best = &r.records[i]
		}
	}
	if best == nil {
		return nil, ErrNoRows
	}
	out := *best
	return &out, nil
}

func (r *InMemoryRepository) TopRestaurants(ctx context.Context, sel filter.Selection, limit int) ([]dataset.Restaurant, error) {
	out := sel.Apply(r.records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.AggregateRating != b.AggregateRating {
			return a.AggregateRating > b.AggregateRating
		}
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		return a.RestaurantID < b.RestaurantID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Markers(ctx context.Context, sel filter.Selection) ([]Marker, error) {
	rows := sel.Apply(r.records)
	out := make([]Marker, 0, len(rows))
	for _, rec := range rows {
		out = append(out, Marker{
			Latitude:       rec.Latitude,
			Longitude:      rec.Longitude,
			City:           rec.City,
			Country:        rec.Country,
			RestaurantName: rec.RestaurantName,
		})
	}
	return out, nil
}

func (r *InMemoryRepository) CostsForTwo(ctx context.Context, sel filter.Selection, city, cuisine string) ([]float64, error) {
	var out []float64
	for _, rec := range sel.Apply(r.records) {
		if rec.City == city && rec.Cuisines == cuisine {
			out = append(out, rec.AverageCostForTwo)
		}
	}
	return out, nil
}

// textField renders a column for grouping and distinct counting.
func textField(rec dataset.Restaurant, col string) string {
	switch col {
	case dataset.ColCountry:
		return rec.Country
	case dataset.ColCity:
		return rec.City
	case dataset.ColCuisines:
		return rec.Cuisines
	default:
		return strconv.FormatFloat(numberField(rec, col), 'g', -1, 64)
	}
}

func numberField(rec dataset.Restaurant, col string) float64 {
	switch col {
	case dataset.ColRestaurantID:
		return float64(rec.RestaurantID)
	case dataset.ColCountryCode:
		return float64(rec.CountryCode)
	case dataset.ColAggregateRating:
		return rec.AggregateRating
	case dataset.ColVotes:
		return float64(rec.Votes)
	case dataset.ColAverageCostForTwo:
		return rec.AverageCostForTwo
	}
	return 0
}
