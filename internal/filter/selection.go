package filter

import (
	"sort"

	"findarestaurant/internal/dataset"
)

// Selection is the set of row predicates a page applies. It is immutable once
// built; every predicate is optional and enabled ones are AND-ed.
type Selection struct {
	rating    *float64
	countries membership
	cuisines  membership
	excluded  map[string]struct{}
}

type membership struct {
	on     bool
	values []string
	set    map[string]struct{}
}

func newMembership(values []string) membership {
	m := membership{
		on:     true,
		values: append([]string{}, values...),
		set:    make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		m.set[v] = struct{}{}
	}
	return m
}

func (m membership) allows(v string) bool {
	if !m.on {
		return true
	}
	_, ok := m.set[v]
	return ok
}

type Option func(*Selection)

// RatingBelow keeps rows whose aggregate rating is strictly less than v.
func RatingBelow(v float64) Option {
	return func(s *Selection) { s.rating = &v }
}

// Countries keeps rows whose country is one of names. No names selects nothing.
func Countries(names ...string) Option {
	return func(s *Selection) { s.countries = newMembership(names) }
}

// Cuisines keeps rows whose primary cuisine is one of names.
func Cuisines(names ...string) Option {
	return func(s *Selection) { s.cuisines = newMembership(names) }
}

// ExcludeCuisines drops rows whose primary cuisine is one of names, whatever
// the cuisine set allows.
func ExcludeCuisines(names ...string) Option {
	return func(s *Selection) {
		if s.excluded == nil {
			s.excluded = make(map[string]struct{}, len(names))
		}
		for _, n := range names {
			s.excluded[n] = struct{}{}
		}
	}
}

func New(opts ...Option) Selection {
	var s Selection
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// All selects every row.
func All() Selection { return Selection{} }

func (s Selection) RatingBelow() (float64, bool) {
	if s.rating == nil {
		return 0, false
	}
	return *s.rating, true
}

func (s Selection) Countries() ([]string, bool) {
	return append([]string{}, s.countries.values...), s.countries.on
}

func (s Selection) Cuisines() ([]string, bool) {
	return append([]string{}, s.cuisines.values...), s.cuisines.on
}

// ExcludedCuisines returns the excluded cuisines, sorted.
func (s Selection) ExcludedCuisines() []string {
	out := make([]string, 0, len(s.excluded))
	for n := range s.excluded {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Match reports whether r passes every enabled predicate.
func (s Selection) Match(r dataset.Restaurant) bool {
	if s.rating != nil && !(r.AggregateRating < *s.rating) {
		return false
	}
	if _, ok := s.excluded[r.Cuisines]; ok {
		return false
	}
	return s.countries.allows(r.Country) && s.cuisines.allows(r.Cuisines)
}

// Apply returns the matching records in their original order. The input
// slice is left untouched.
func (s Selection) Apply(rs []dataset.Restaurant) []dataset.Restaurant {
	out := make([]dataset.Restaurant, 0, len(rs))
	for _, r := range rs {
		if s.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
