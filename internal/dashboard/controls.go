package dashboard

import (
	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"
)

var (
	popularCuisines = []string{"Italian", "Japanese", "Arabian", "American", "Fast Food"}

	cuisinePageDefaults = []string{
		"Italian", "Japanese", "Chinese", "Seafood", "Brazilian", "Argentine", "Arabian",
		"French", "German", "Sushi", "Mexican", "Vegetarian", "Thai", "Indian", "BBQ",
		"Modern Australian", "Australian", "Mediterranean", "Korean BBQ", "Taco",
		"Continental", "South Indian", "North Indian", "Turkish", "Modern Indian",
		"American", "Fast Food",
	}

	// noReviewCuisines have no rated restaurants and are left off the
	// cuisine page.
	noReviewCuisines = []string{"Drinks Only", "Mineira"}

	mapCountryDefaults = []string{"Brazil", "Canada", "England", "Turkey", "Indonesia", "South Africa", "Australia"}
	mapCuisineDefaults = []string{"Italian", "Japanese", "Brazilian", "American", "Fast Food", "North Indian"}
)

// PageControls holds the widgets of every page.
type PageControls struct {
	Home      filter.Controls `json:"home"`
	Countries filter.Controls `json:"countries"`
	Cities    filter.Controls `json:"cities"`
	Cuisines  filter.Controls `json:"cuisines"`
	Map       filter.Controls `json:"map"`
	Insights  filter.Controls `json:"insights"`
}

// NewPageControls builds the widgets from the country lookup table. Every page
// preselects all countries except the map, which starts from a short list.
func NewPageControls(l dataset.Lookups) PageControls {
	countries := filter.CountryOptions(l)
	rating := filter.RatingSlider

	allCountries := func() *filter.MultiSelect {
		return &filter.MultiSelect{Options: countries, Default: countries}
	}

	return PageControls{
		Home:      filter.Controls{Rating: &rating, Countries: allCountries()},
		Countries: filter.Controls{Rating: &rating, Countries: allCountries()},
		Cities:    filter.Controls{Countries: allCountries()},
		Cuisines: filter.Controls{
			Rating:          &rating,
			Countries:       allCountries(),
			Cuisines:        &filter.MultiSelect{Options: filter.CuisineOptions, Default: cuisinePageDefaults},
			ExcludeCuisines: noReviewCuisines,
		},
		Map: filter.Controls{
			Rating:    &rating,
			Countries: &filter.MultiSelect{Options: countries, Default: mapCountryDefaults},
			Cuisines:  &filter.MultiSelect{Options: filter.CuisineOptions, Default: mapCuisineDefaults},
		},
		Insights: filter.Controls{Rating: &rating, Countries: allCountries()},
	}
}
