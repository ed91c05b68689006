package dashboard

import (
	"context"
	"errors"
	"fmt"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"
	"findarestaurant/internal/restaurant"
)

type Metric struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type HomePage struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Metrics  []Metric `json:"metrics"`
}

type ChartsPage struct {
	Title  string     `json:"title"`
	Charts []BarChart `json:"charts"`
}

// CuisineCard is the best restaurant of one cuisine, or the reason there is
// none under the current filters.
type CuisineCard struct {
	Cuisine        string   `json:"cuisine"`
	RestaurantName string   `json:"restaurant_name,omitempty"`
	Rating         *float64 `json:"aggregate_rating,omitempty"`
	Error          string   `json:"error,omitempty"`
}

type CuisinesPage struct {
	Title          string        `json:"title"`
	Best           []CuisineCard `json:"best"`
	TopRestaurants Table         `json:"top_restaurants"`
	CostlyCuisines Table         `json:"costly_cuisines"`
	TopCuisines    BarChart      `json:"top_cuisines"`
	BottomCuisines BarChart      `json:"bottom_cuisines"`
}

// --------------------------------------------------
// Home
// --------------------------------------------------
func Home(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*HomePage, error) {
	s, err := svc.Summary(ctx, sel)
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Title:    "Find-A-Restaurant",
		Subtitle: "Find the right restaurant for you, anywhere in the world!",
		Metrics: []Metric{
			{Label: "Restaurants", Value: float64(s.Restaurants)},
			{Label: "Countries", Value: float64(s.Countries)},
			{Label: "Cities", Value: float64(s.Cities)},
			{Label: "Cuisines", Value: float64(s.Cuisines)},
			{Label: "Number of Ratings", Value: float64(s.Votes)},
		},
	}, nil
}

// chartDef is one grouped bar chart of a page.
type chartDef struct {
	title   string
	xLabel  string
	yLabel  string
	colorBy string
	query   restaurant.Query
}

func renderCharts(ctx context.Context, svc *restaurant.Service, sel filter.Selection, defs []chartDef) ([]BarChart, error) {
	charts := make([]BarChart, 0, len(defs))
	for _, def := range defs {
		groups, err := svc.Aggregate(ctx, sel, def.query)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", def.title, err)
		}
		charts = append(charts, barChart(def.title, def.xLabel, def.yLabel, def.colorBy, groups))
	}
	return charts, nil
}

// --------------------------------------------------
// Countries
// --------------------------------------------------
func perCountry(measure string, reduce restaurant.Reducer) restaurant.Query {
	return restaurant.Query{GroupBy: []string{dataset.ColCountry}, Measure: measure, Reduce: reduce}
}

var countryCharts = []chartDef{
	{"Number of registered restaurants per country", "Country", "Number of Restaurants", ColorByValue,
		perCountry(dataset.ColRestaurantID, restaurant.CountUnique)},
	{"Number of registered cities per country", "Country", "Number of Cities", ColorByValue,
		perCountry(dataset.ColCity, restaurant.CountUnique)},
	{"The mean number of ratings per country", "Country", "Mean Number of Ratings", ColorByValue,
		perCountry(dataset.ColVotes, restaurant.Mean)},
	{"The mean aggregate rating per country", "Country", "Mean Average Rating", ColorByValue,
		perCountry(dataset.ColAggregateRating, restaurant.Mean)},
	{"Number of cuisines per country", "Country", "Number of Cuisines", ColorByValue,
		perCountry(dataset.ColCuisines, restaurant.CountUnique)},
	{"The mean average cost for two per country", "Country", "Mean avg cost for two", ColorByValue,
		perCountry(dataset.ColAverageCostForTwo, restaurant.Mean)},
}

func Countries(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*ChartsPage, error) {
	charts, err := renderCharts(ctx, svc, sel, countryCharts)
	if err != nil {
		return nil, err
	}
	return &ChartsPage{Title: "Countries", Charts: charts}, nil
}

// --------------------------------------------------
// Cities
// --------------------------------------------------
func perCity(measure string, limit int) restaurant.Query {
	return restaurant.Query{
		GroupBy: []string{dataset.ColCity, dataset.ColCountry},
		Measure: measure,
		Reduce:  restaurant.CountUnique,
		Limit:   limit,
	}
}

func cityCharts() []chartDef {
	above := perCity(dataset.ColRestaurantID, 5)
	above.RatingAbove = restaurant.Float(4)
	below := perCity(dataset.ColRestaurantID, 5)
	below.RatingBelow = restaurant.Float(2.5)

	return []chartDef{
		{"Top 10 cities with the most restaurants on the database", "Cities", "Number of Restaurants", ColorByCountry,
			perCity(dataset.ColRestaurantID, 10)},
		{"Top 5 cities with restaurants with an average rating > 4", "Cities", "Number of Restaurants", ColorByCountry,
			above},
		{"Top 5 cities with restaurants with an average rating < 2.5", "Cities", "Number of Restaurants", ColorByCountry,
			below},
		{"Top 10 cities with unique cuisine types", "Cities", "Cuisines", ColorByCountry,
			perCity(dataset.ColCuisines, 10)},
	}
}

func Cities(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*ChartsPage, error) {
	charts, err := renderCharts(ctx, svc, sel, cityCharts())
	if err != nil {
		return nil, err
	}
	return &ChartsPage{Title: "Cities", Charts: charts}, nil
}

// --------------------------------------------------
// Cuisines
// --------------------------------------------------
func perCuisine(measure string, order restaurant.Order) restaurant.Query {
	return restaurant.Query{
		GroupBy: []string{dataset.ColCuisines},
		Measure: measure,
		Reduce:  restaurant.Mean,
		Order:   order,
		Limit:   10,
	}
}

// BestOf returns the card of one cuisine. An empty selection becomes an error
// entry on the card; any other failure aborts.
func BestOf(ctx context.Context, svc *restaurant.Service, sel filter.Selection, cuisine string) (CuisineCard, error) {
	rec, err := svc.TopRestaurant(ctx, sel, cuisine)
	var empty *restaurant.EmptySelectionError
	switch {
	case errors.As(err, &empty):
		return CuisineCard{Cuisine: cuisine, Error: empty.Error()}, nil
	case err != nil:
		return CuisineCard{}, err
	}
	return CuisineCard{Cuisine: cuisine, RestaurantName: rec.RestaurantName, Rating: restaurant.Float(rec.AggregateRating)}, nil
}

func Cuisines(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*CuisinesPage, error) {
	page := &CuisinesPage{Title: "Cuisines"}

	for _, cuisine := range popularCuisines {
		card, err := BestOf(ctx, svc, sel, cuisine)
		if err != nil {
			return nil, err
		}
		page.Best = append(page.Best, card)
	}

	top, err := svc.TopRestaurants(ctx, sel, 10)
	if err != nil {
		return nil, err
	}
	page.TopRestaurants = restaurantTable("Top 10 restaurants overall", top)

	costly, err := svc.Aggregate(ctx, sel, perCuisine(dataset.ColAverageCostForTwo, restaurant.Descending))
	if err != nil {
		return nil, err
	}
	page.CostlyCuisines = groupTable(
		"Top 10 cuisines with the highest mean average cost for two",
		dataset.ColCuisines, dataset.ColAverageCostForTwo, costly,
	)

	charts, err := renderCharts(ctx, svc, sel, []chartDef{
		{"Top 10 cuisines", "Cuisines", "Mean Average Ratings", ColorByValue,
			perCuisine(dataset.ColAggregateRating, restaurant.Descending)},
		{"Bottom 10 cuisines", "Cuisines", "Mean Average Ratings", ColorByValue,
			perCuisine(dataset.ColAggregateRating, restaurant.Ascending)},
	})
	if err != nil {
		return nil, err
	}
	page.TopCuisines, page.BottomCuisines = charts[0], charts[1]

	return page, nil
}

// --------------------------------------------------
// World map
// --------------------------------------------------
func WorldMap(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*Map, error) {
	markers, err := svc.Markers(ctx, sel)
	if err != nil {
		return nil, err
	}
	m := worldMap("World Map", markers)
	return &m, nil
}
