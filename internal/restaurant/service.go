package restaurant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"
)

// minSamples is the smallest (city, cuisine) population a cost insight is
// computed for.
const minSamples = 3

var ErrInsufficientSamples = errors.New("not enough restaurants to compare")

// EmptySelectionError reports that no row survived the filters for a view
// that needs at least one.
type EmptySelectionError struct {
	Cuisine string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no %s restaurant matches the current filters", e.Cuisine)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context, sel filter.Selection) (*Summary, error) {
	return s.repo.Summary(ctx, sel)
}

// --------------------------------------------------
// Grouped views
// --------------------------------------------------
func (s *Service) Aggregate(ctx context.Context, sel filter.Selection, q Query) ([]Group, error) {
	groups, err := s.repo.Aggregate(ctx, sel, q)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].Value = round2(groups[i].Value)
	}
	return groups, nil
}

// --------------------------------------------------
// Best rated restaurants
// --------------------------------------------------
func (s *Service) TopRestaurant(ctx context.Context, sel filter.Selection, cuisine string) (*dataset.Restaurant, error) {
	rec, err := s.repo.TopRestaurant(ctx, sel, cuisine)
	if errors.Is(err, ErrNoRows) {
		return nil, &EmptySelectionError{Cuisine: cuisine}
	}
	return rec, err
}

func (s *Service) TopRestaurants(ctx context.Context, sel filter.Selection, limit int) ([]dataset.Restaurant, error) {
	return s.repo.TopRestaurants(ctx, sel, limit)
}

func (s *Service) Markers(ctx context.Context, sel filter.Selection) ([]Marker, error) {
	return s.repo.Markers(ctx, sel)
}

// --------------------------------------------------
// Cost insight (READ ONLY)
// --------------------------------------------------

// CostInsight summarizes the cost for two of one (city, cuisine) pair. When
// cost is given it is positioned against the median.
func (s *Service) CostInsight(
	ctx context.Context,
	sel filter.Selection,
	city string,
	cuisine string,
	cost *float64,
) (*CostInsight, error) {

	values, err := s.repo.CostsForTwo(ctx, sel, city, cuisine)
	if err != nil {
		return nil, err
	}

	// 🚨 Require minimum samples
	if len(values) < minSamples {
		log.Printf("[INSIGHT] Skipping %s / %s (samples=%d)", city, cuisine, len(values))
		return nil, fmt.Errorf("%w: %s / %s has %d", ErrInsufficientSamples, city, cuisine, len(values))
	}

	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	median := values[len(values)/2]
	avg := sum / float64(len(values))

	log.Printf(
		"[INSIGHT] %s / %s → avg=%.2f median=%.2f samples=%d",
		city, cuisine, avg, median, len(values),
	)

	insight := &CostInsight{
		City:          city,
		Cuisine:       cuisine,
		AvgCostForTwo: round2(avg),
		MedianCost:    round2(median),
		SampleSize:    len(values),
		UnderMarket:   round2(median * 0.9),
		Premium:       round2(median * 1.1),
	}
	if cost != nil {
		insight.Positioning = determinePosition(*cost, median)
	}
	return insight, nil
}

// --------------------------------------------------
// Positioning logic
// --------------------------------------------------
func determinePosition(cost, median float64) string {
	switch {
	case cost < median*0.9:
		return "UNDER_MARKET"
	case cost > median*1.1:
		return "PREMIUM"
	default:
		return "MARKET_AVERAGE"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
