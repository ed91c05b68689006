package filter

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Query parameter names of the interactive controls.
const (
	ParamRating  = "rating"
	ParamCountry = "country"
	ParamCuisine = "cuisine"
)

// Slider describes the rating slider.
type Slider struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

var RatingSlider = Slider{Min: 0, Max: 5, Step: 0.25, Default: 5}

// MultiSelect describes a multi-select widget: what may be picked and what is
// picked before the user touches it.
type MultiSelect struct {
	Options []string `json:"options"`
	Default []string `json:"default"`
}

func (m *MultiSelect) allowed(v string) bool {
	for _, o := range m.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Controls lists the widgets a page exposes. A nil widget means the page does
// not filter on that field.
type Controls struct {
	Rating    *Slider      `json:"rating,omitempty"`
	Countries *MultiSelect `json:"countries,omitempty"`
	Cuisines  *MultiSelect `json:"cuisines,omitempty"`

	// ExcludeCuisines are dropped from the page whatever the widgets select.
	ExcludeCuisines []string `json:"exclude_cuisines,omitempty"`
}

type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Parse reads the control values from a query string. Absent parameters take
// the page default; a parameter for a widget the page lacks is ignored.
func Parse(q url.Values, c Controls) (Selection, error) {
	var opts []Option

	if c.Rating != nil {
		v := c.Rating.Default
		if raw := q.Get(ParamRating); raw != "" {
			parsed, err := parseRating(raw, *c.Rating)
			if err != nil {
				return Selection{}, err
			}
			v = parsed
		}
		opts = append(opts, RatingBelow(v))
	}

	if c.Countries != nil {
		names, err := pick(q, ParamCountry, c.Countries)
		if err != nil {
			return Selection{}, err
		}
		opts = append(opts, Countries(names...))
	}

	if c.Cuisines != nil {
		names, err := pick(q, ParamCuisine, c.Cuisines)
		if err != nil {
			return Selection{}, err
		}
		opts = append(opts, Cuisines(names...))
	}

	if len(c.ExcludeCuisines) > 0 {
		opts = append(opts, ExcludeCuisines(c.ExcludeCuisines...))
	}

	return New(opts...), nil
}

func parseRating(raw string, s Slider) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, &ValidationError{Field: ParamRating, Value: raw, Reason: "not a number"}
	}
	if v < s.Min || v > s.Max {
		return 0, &ValidationError{
			Field:  ParamRating,
			Value:  raw,
			Reason: fmt.Sprintf("must be between %g and %g", s.Min, s.Max),
		}
	}
	steps := (v - s.Min) / s.Step
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return 0, &ValidationError{
			Field:  ParamRating,
			Value:  raw,
			Reason: fmt.Sprintf("must be a multiple of %g", s.Step),
		}
	}
	return v, nil
}

// pick returns the selected values, or the default when the parameter is
// absent. "country=" alone selects nothing.
func pick(q url.Values, param string, m *MultiSelect) ([]string, error) {
	raw, present := q[param]
	if !present {
		return m.Default, nil
	}

	names := make([]string, 0, len(raw))
	for _, v := range raw {
		if v == "" {
			continue
		}
		if !m.allowed(v) {
			return nil, &ValidationError{Field: param, Value: v, Reason: "not an available option"}
		}
		names = append(names, v)
	}
	return names, nil
}
