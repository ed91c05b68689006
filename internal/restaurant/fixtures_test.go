package restaurant

import (
	"context"
	"testing"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/db"

	"github.com/stretchr/testify/require"
)

func fixtures() []dataset.Restaurant {
	return []dataset.Restaurant{
		{RestaurantID: 1, RestaurantName: "Masala House", CountryCode: 1, Country: "India", City: "Mumbai", Cuisines: "North Indian", AggregateRating: 4.5, Votes: 300, AverageCostForTwo: 800, Latitude: 19.07, Longitude: 72.87},
		{RestaurantID: 2, RestaurantName: "Spice Route", CountryCode: 1, Country: "India", City: "Delhi", Cuisines: "North Indian", AggregateRating: 3.9, Votes: 120, AverageCostForTwo: 600, Latitude: 28.61, Longitude: 77.2},
		{RestaurantID: 3, RestaurantName: "Churrasco", CountryCode: 30, Country: "Brazil", City: "Rio de Janeiro", Cuisines: "Brazilian", AggregateRating: 4.1, Votes: 90, AverageCostForTwo: 120, Latitude: -22.9, Longitude: -43.2},
		{RestaurantID: 4, RestaurantName: "Trattoria", CountryCode: 216, Country: "United States", City: "Austin", Cuisines: "Italian", AggregateRating: 4.1, Votes: 500, AverageCostForTwo: 50, Latitude: 30.26, Longitude: -97.74},
		{RestaurantID: 5, RestaurantName: "Sushi Go", CountryCode: 216, Country: "United States", City: "Austin", Cuisines: "Japanese", AggregateRating: 2.1, Votes: 40, AverageCostForTwo: 70, Latitude: 30.27, Longitude: -97.75},
		{RestaurantID: 6, RestaurantName: "Pasta Bar", CountryCode: 216, Country: "United States", City: "Austin", Cuisines: "Italian", AggregateRating: 4.1, Votes: 500, AverageCostForTwo: 40, Latitude: 30.28, Longitude: -97.76},
		{RestaurantID: 7, RestaurantName: "Nonna", CountryCode: 216, Country: "United States", City: "Austin", Cuisines: "Italian", AggregateRating: 3.2, Votes: 15, AverageCostForTwo: 60, Latitude: 30.29, Longitude: -97.77},
	}
}

type backend struct {
	name string
	repo Repository
}

// backends builds every repository implementation over the same records.
func backends(t *testing.T, records []dataset.Restaurant) []backend {
	t.Helper()

	gdb, err := db.ConnectSQLite()
	require.NoError(t, err)
	require.NoError(t, db.SeedRestaurants(context.Background(), gdb, records))

	return []backend{
		{name: "memory", repo: NewInMemoryRepository(records)},
		{name: "sqlite", repo: NewSQLiteRepository(gdb)},
	}
}
