package restaurant

import (
	"context"
	"errors"
	"fmt"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/db"
	"findarestaurant/internal/filter"

	"gorm.io/gorm"
)

type SQLiteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(gdb *gorm.DB) *SQLiteRepository {
	return &SQLiteRepository{db: gdb}
}

// scope turns a selection into WHERE clauses. An enabled membership with no
// values matches nothing.
func scope(sel filter.Selection) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if v, ok := sel.RatingBelow(); ok {
			tx = tx.Where("aggregate_rating < ?", v)
		}
		if names, ok := sel.Countries(); ok {
			if len(names) == 0 {
				tx = tx.Where("1 = 0")
			} else {
				tx = tx.Where("country IN ?", names)
			}
		}
		if names, ok := sel.Cuisines(); ok {
			if len(names) == 0 {
				tx = tx.Where("1 = 0")
			} else {
				tx = tx.Where("cuisines IN ?", names)
			}
		}
		if excluded := sel.ExcludedCuisines(); len(excluded) > 0 {
			tx = tx.Where("cuisines NOT IN ?", excluded)
		}
		return tx
	}
}

func (r *SQLiteRepository) table(ctx context.Context, sel filter.Selection) *gorm.DB {
	return r.db.WithContext(ctx).Model(&db.Restaurant{}).Scopes(scope(sel))
}

func (r *SQLiteRepository) Summary(ctx context.Context, sel filter.Selection) (*Summary, error) {
	var row struct {
		Restaurants int
		Countries   int
		Cities      int
		Cuisines    int
		Votes       int64
	}
	err := r.table(ctx, sel).Select(
		"COUNT(DISTINCT restaurant_id) AS restaurants, " +
			"COUNT(DISTINCT country_code) AS countries, " +
			"COUNT(DISTINCT city) AS cities, " +
			"COUNT(DISTINCT cuisines) AS cuisines, " +
			"COALESCE(SUM(votes), 0) AS votes",
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &Summary{
		Restaurants: row.Restaurants,
		Countries:   row.Countries,
		Cities:      row.Cities,
		Cuisines:    row.Cuisines,
		Votes:       row.Votes,
	}, nil
}

type groupRow struct {
	GroupKey       string
	GroupSecondary string
	GroupValue     float64
}

func (r *SQLiteRepository) Aggregate(ctx context.Context, sel filter.Selection, q Query) ([]Group, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	// Column names below come from the closed sets checked by Validate.
	var reduce string
	switch q.Reduce {
	case Mean:
		reduce = fmt.Sprintf("AVG(%s)", q.Measure)
	case Sum:
		reduce = fmt.Sprintf("SUM(%s)", q.Measure)
	case CountUnique:
		reduce = fmt.Sprintf("COUNT(DISTINCT %s)", q.Measure)
	}

	secondary := "''"
	groups := q.GroupBy[0]
	if len(q.GroupBy) == 2 {
		secondary = q.GroupBy[1]
		groups += ", " + q.GroupBy[1]
	}

	dir := "DESC"
	if q.Order == Ascending {
		dir = "ASC"
	}

	tx := r.table(ctx, sel)
	if q.RatingAbove != nil {
		tx = tx.Where("aggregate_rating > ?", *q.RatingAbove)
	}
	if q.RatingBelow != nil {
		tx = tx.Where("aggregate_rating < ?", *q.RatingBelow)
	}

	tx = tx.Select(fmt.Sprintf("%s AS group_key, %s AS group_secondary, %s AS group_value", q.GroupBy[0], secondary, reduce)).
		Group(groups).
		Order(fmt.Sprintf("group_value %s, group_key ASC, group_secondary ASC", dir))
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var rows []groupRow
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Group, len(rows))
	for i, row := range rows {
		out[i] = Group{Key: row.GroupKey, Secondary: row.GroupSecondary, Value: row.GroupValue}
	}
	return out, nil
}

func (r *SQLiteRepository) TopRestaurant(ctx context.Context, sel filter.Selection, cuisine string) (*dataset.Restaurant, error) {
	var row db.Restaurant
	err := r.table(ctx, sel).
		Where("cuisines = ?", cuisine).
		Order("aggregate_rating DESC, restaurant_id ASC, row_id ASC").
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, err
	}
	rec := row.Record()
	return &rec, nil
}

func (r *SQLiteRepository) TopRestaurants(ctx context.Context, sel filter.Selection, limit int) ([]dataset.Restaurant, error) {
	tx := r.table(ctx, sel).Order("aggregate_rating DESC, votes DESC, restaurant_id ASC, row_id ASC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []db.Restaurant
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dataset.Restaurant, len(rows))
	for i, row := range rows {
		out[i] = row.Record()
	}
	return out, nil
}

func (r *SQLiteRepository) Markers(ctx context.Context, sel filter.Selection) ([]Marker, error) {
	var out []Marker
	err := r.table(ctx, sel).
		Select("latitude, longitude, city, country, restaurant_name").
		Order("row_id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Marker{}
	}
	return out, nil
}

func (r *SQLiteRepository) CostsForTwo(ctx context.Context, sel filter.Selection, city, cuisine string) ([]float64, error) {
	var out []float64
	err := r.table(ctx, sel).
		Where("city = ? AND cuisines = ?", city, cuisine).
		Order("row_id ASC").
		Pluck("average_cost_for_two", &out).Error
	return out, err
}
