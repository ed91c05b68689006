package restaurant

import (
	"errors"
	"fmt"

	"findarestaurant/internal/dataset"
)

// Reducer folds the measure column of one group into a single number.
type Reducer string

const (
	Mean        Reducer = "mean"
	CountUnique Reducer = "count_unique"
	Sum         Reducer = "sum"
)

type Order int

const (
	Descending Order = iota
	Ascending
)

var ErrInvalidQuery = errors.New("invalid query")

// groupable columns may appear in Query.GroupBy
var groupable = map[string]bool{
	dataset.ColCountry:  true,
	dataset.ColCity:     true,
	dataset.ColCuisines: true,
}

// measures maps every column a query may reduce to whether it is numeric.
var measures = map[string]bool{
	dataset.ColRestaurantID:      true,
	dataset.ColCountryCode:       true,
	dataset.ColAggregateRating:   true,
	dataset.ColVotes:             true,
	dataset.ColAverageCostForTwo: true,
	dataset.ColCountry:           false,
	dataset.ColCity:              false,
	dataset.ColCuisines:          false,
}

// Query is one grouped view: group, reduce, sort, truncate.
type Query struct {
	GroupBy []string
	Measure string
	Reduce  Reducer
	Order   Order
	// Limit of 0 keeps every group.
	Limit int

	// Optional strict rating bounds applied on top of the page selection.
	RatingAbove *float64
	RatingBelow *float64
}

func (q Query) Validate() error {
	if len(q.GroupBy) == 0 || len(q.GroupBy) > 2 {
		return fmt.Errorf("%w: group by one or two columns", ErrInvalidQuery)
	}
	for _, c := range q.GroupBy {
		if !groupable[c] {
			return fmt.Errorf("%w: cannot group by %q", ErrInvalidQuery, c)
		}
	}
	numeric, ok := measures[q.Measure]
	if !ok {
		return fmt.Errorf("%w: unknown measure %q", ErrInvalidQuery, q.Measure)
	}
	switch q.Reduce {
	case CountUnique:
	case Mean, Sum:
		if !numeric {
			return fmt.Errorf("%w: %s of text column %q", ErrInvalidQuery, q.Reduce, q.Measure)
		}
	default:
		return fmt.Errorf("%w: unknown reducer %q", ErrInvalidQuery, q.Reduce)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit", ErrInvalidQuery)
	}
	return nil
}

// Group is one row of a grouped view. Secondary holds the second group column
// (the country of a city) when the query groups by two.
type Group struct {
	Key       string  `json:"key"`
	Secondary string  `json:"secondary,omitempty"`
	Value     float64 `json:"value"`
}

// Summary holds the headline counts of the home page.
type Summary struct {
	Restaurants int   `json:"restaurants"`
	Countries   int   `json:"countries"`
	Cities      int   `json:"cities"`
	Cuisines    int   `json:"cuisines"`
	Votes       int64 `json:"votes"`
}

// Marker is one map point.
type Marker struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	City           string  `json:"city"`
	Country        string  `json:"country"`
	RestaurantName string  `json:"restaurant_name"`
}

// CostInsight describes what a pair for two costs in one city for one cuisine.
type CostInsight struct {
	City          string  `json:"city"`
	Cuisine       string  `json:"cuisine"`
	AvgCostForTwo float64 `json:"avg_cost_for_two"`
	MedianCost    float64 `json:"median_cost_for_two"`
	SampleSize    int     `json:"sample_size"`
	UnderMarket   float64 `json:"under_market_below"`
	Premium       float64 `json:"premium_above"`
	Positioning   string  `json:"positioning,omitempty"`
}

func Float(v float64) *float64 { return &v }
