package restaurant

import (
	"context"
	"errors"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"
)

// ErrNoRows is returned when a single-row lookup finds nothing.
var ErrNoRows = errors.New("no rows match the selection")

// Repository answers the dashboard queries over one immutable snapshot.
type Repository interface {
	Summary(ctx context.Context, sel filter.Selection) (*Summary, error)
	Aggregate(ctx context.Context, sel filter.Selection, q Query) ([]Group, error)

	// TopRestaurant orders by rating desc then restaurant id asc.
	TopRestaurant(ctx context.Context, sel filter.Selection, cuisine string) (*dataset.Restaurant, error)
	// TopRestaurants orders by rating desc, votes desc, restaurant id asc.
	TopRestaurants(ctx context.Context, sel filter.Selection, limit int) ([]dataset.Restaurant, error)

	Markers(ctx context.Context, sel filter.Selection) ([]Marker, error)
	CostsForTwo(ctx context.Context, sel filter.Selection, city, cuisine string) ([]float64, error)
}
