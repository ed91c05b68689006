package restaurant

import (
	"context"
	"testing"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_CountryRanking(t *testing.T) {
	records := []dataset.Restaurant{
		{RestaurantID: 1, Country: "India", AggregateRating: 4},
		{RestaurantID: 2, Country: "India", AggregateRating: 3},
		{RestaurantID: 3, Country: "Brazil", AggregateRating: 4},
	}

	for _, b := range backends(t, records) {
		t.Run(b.name, func(t *testing.T) {
			groups, err := b.repo.Aggregate(context.Background(), filter.All(), Query{
				GroupBy: []string{dataset.ColCountry},
				Measure: dataset.ColRestaurantID,
				Reduce:  CountUnique,
			})
			require.NoError(t, err)
			assert.Equal(t, []Group{
				{Key: "India", Value: 2},
				{Key: "Brazil", Value: 1},
			}, groups)
		})
	}
}

func TestAggregate_TiesBreakByKey(t *testing.T) {
	records := []dataset.Restaurant{
		{RestaurantID: 1, Country: "Turkey"},
		{RestaurantID: 2, Country: "Brazil"},
		{RestaurantID: 3, Country: "Qatar"},
	}

	for _, b := range backends(t, records) {
		t.Run(b.name, func(t *testing.T) {
			groups, err := b.repo.Aggregate(context.Background(), filter.All(), Query{
				GroupBy: []string{dataset.ColCountry},
				Measure: dataset.ColRestaurantID,
				Reduce:  CountUnique,
				Limit:   2,
			})
			require.NoError(t, err)
			assert.Equal(t, []Group{{Key: "Brazil", Value: 1}, {Key: "Qatar", Value: 1}}, groups)
		})
	}
}

func TestAggregate_InvalidQuery(t *testing.T) {
	for _, b := range backends(t, fixtures()) {
		t.Run(b.name, func(t *testing.T) {
			_, err := b.repo.Aggregate(context.Background(), filter.All(), Query{
				GroupBy: []string{"votes"},
				Measure: dataset.ColRestaurantID,
				Reduce:  CountUnique,
			})
			assert.ErrorIs(t, err, ErrInvalidQuery)

			_, err = b.repo.Aggregate(context.Background(), filter.All(), Query{
				GroupBy: []string{dataset.ColCity},
				Measure: dataset.ColCity,
				Reduce:  Mean,
			})
			assert.ErrorIs(t, err, ErrInvalidQuery)
		})
	}
}

// Every query below must give the same answer on every backend.
func TestBackendsAgree(t *testing.T) {
	ctx := context.Background()
	selections := map[string]filter.Selection{
		"all":       filter.All(),
		"rating":    filter.New(filter.RatingBelow(4.1)),
		"countries": filter.New(filter.Countries("India", "United States")),
		"cuisines":  filter.New(filter.Cuisines("Italian"), filter.RatingBelow(5)),
		"empty":     filter.New(filter.Countries()),
		"excluded":  filter.New(filter.ExcludeCuisines("Italian", "Japanese")),
	}
	queries := []Query{
		{GroupBy: []string{dataset.ColCountry}, Measure: dataset.ColRestaurantID, Reduce: CountUnique},
		{GroupBy: []string{dataset.ColCountry}, Measure: dataset.ColVotes, Reduce: Mean},
		{GroupBy: []string{dataset.ColCountry}, Measure: dataset.ColCuisines, Reduce: CountUnique},
		{GroupBy: []string{dataset.ColCity, dataset.ColCountry}, Measure: dataset.ColRestaurantID, Reduce: CountUnique, Limit: 10},
		{GroupBy: []string{dataset.ColCity, dataset.ColCountry}, Measure: dataset.ColRestaurantID, Reduce: CountUnique, RatingAbove: Float(4)},
		{GroupBy: []string{dataset.ColCuisines}, Measure: dataset.ColAggregateRating, Reduce: Mean, Order: Ascending, Limit: 10},
		{GroupBy: []string{dataset.ColCuisines}, Measure: dataset.ColVotes, Reduce: Sum},
	}

	bs := backends(t, fixtures())
	memory, sqlite := bs[0].repo, bs[1].repo

	for name, sel := range selections {
		t.Run(name, func(t *testing.T) {
			want, err := memory.Summary(ctx, sel)
			require.NoError(t, err)
			got, err := sqlite.Summary(ctx, sel)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			for _, q := range queries {
				want, err := memory.Aggregate(ctx, sel, q)
				require.NoError(t, err)
				got, err := sqlite.Aggregate(ctx, sel, q)
				require.NoError(t, err)
				require.Len(t, got, len(want))
				for i := range want {
					assert.Equal(t, want[i].Key, got[i].Key)
					assert.Equal(t, want[i].Secondary, got[i].Secondary)
					assert.InDelta(t, want[i].Value, got[i].Value, 1e-9)
				}
			}

			wantTop, err := memory.TopRestaurants(ctx, sel, 10)
			require.NoError(t, err)
			gotTop, err := sqlite.TopRestaurants(ctx, sel, 10)
			require.NoError(t, err)
			assert.Equal(t, wantTop, gotTop)

			wantMarkers, err := memory.Markers(ctx, sel)
			require.NoError(t, err)
			gotMarkers, err := sqlite.Markers(ctx, sel)
			require.NoError(t, err)
			assert.Equal(t, wantMarkers, gotMarkers)
		})
	}
}

func TestTopRestaurant(t *testing.T) {
	for _, b := range backends(t, fixtures()) {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()

			// Trattoria and Pasta Bar tie on rating; the lower id wins.
			rec, err := b.repo.TopRestaurant(ctx, filter.All(), "Italian")
			require.NoError(t, err)
			assert.Equal(t, int64(4), rec.RestaurantID)

			rec, err = b.repo.TopRestaurant(ctx, filter.New(filter.RatingBelow(4.1)), "Italian")
			require.NoError(t, err)
			assert.Equal(t, "Nonna", rec.RestaurantName)

			_, err = b.repo.TopRestaurant(ctx, filter.All(), "Arabian")
			assert.ErrorIs(t, err, ErrNoRows)
		})
	}
}

func TestTopRestaurants_Order(t *testing.T) {
	for _, b := range backends(t, fixtures()) {
		t.Run(b.name, func(t *testing.T) {
			top, err := b.repo.TopRestaurants(context.Background(), filter.All(), 4)
			require.NoError(t, err)

			ids := make([]int64, len(top))
			for i, r := range top {
				ids[i] = r.RestaurantID
			}
			// rating desc, then votes desc, then id asc
			assert.Equal(t, []int64{1, 4, 6, 3}, ids)
		})
	}
}

func TestCostsForTwo(t *testing.T) {
	for _, b := range backends(t, fixtures()) {
		t.Run(b.name, func(t *testing.T) {
			costs, err := b.repo.CostsForTwo(context.Background(), filter.All(), "Austin", "Italian")
			require.NoError(t, err)
			assert.ElementsMatch(t, []float64{50, 40, 60}, costs)

			costs, err = b.repo.CostsForTwo(context.Background(), filter.New(filter.RatingBelow(4)), "Austin", "Italian")
			require.NoError(t, err)
			assert.Equal(t, []float64{60}, costs)
		})
	}
}
