package filter

import (
	"sort"

	"findarestaurant/internal/dataset"
)

// CuisineOptions is the fixed list offered by the cuisine multi-select.
var CuisineOptions = []string{
	"Afghan", "African", "American", "Andhra", "Arabian", "Argentine", "Armenian", "Asian",
	"Asian Fusion", "Assamese", "Australian", "Author", "Awadhi", "BBQ", "Bakery", "Balti",
	"Bar Food", "Belgian", "Bengali", "Beverages", "Biryani", "Brazilian", "Breakfast",
	"British", "Burger", "Burmese", "Cafe", "Cafe Food", "Cajun", "California", "Canadian",
	"Cantonese", "Caribbean", "Charcoal Chicken", "Chettinad", "Chinese", "Coffee",
	"Coffee and Tea", "Contemporary", "Continental", "Creole", "Crepes", "Cuban", "Deli",
	"Desserts", "Dim Sum", "Dimsum", "Diner", "Donuts", "Drinks Only", "Durban", "Döner",
	"Eastern European", "Egyptian", "European", "Fast Food", "Filipino", "Finger Food",
	"Fish and Chips", "French", "Fresh Fish", "Fusion", "German", "Giblets", "Goan",
	"Gourmet Fast Food", "Greek", "Grill", "Gujarati", "Hawaiian", "Healthy Food",
	"Home-made", "Hyderabadi", "Ice Cream", "Indian", "Indonesian", "International",
	"Iranian", "Irish", "Italian", "Izgara", "Japanese", "Juices", "Kebab", "Kerala",
	"Khaleeji", "Kiwi", "Kokoreç", "Korean", "Korean BBQ", "Kumpir", "Latin American",
	"Lebanese", "Lucknowi", "Maharashtrian", "Malaysian", "Malwani", "Mandi", "Mangalorean",
	"Mediterranean", "Mexican", "Middle Eastern", "Mineira", "Mithai", "Modern Australian",
	"Modern Indian", "Momos", "Mongolian", "Moroccan", "Mughlai", "Naga", "Nepalese",
	"New American", "New Mexican", "North Eastern", "North Indian", "Old Turkish Bars",
	"Others", "Ottoman", "Pacific Northwest", "Pakistani", "Pan Asian", "Parsi",
	"Patisserie", "Peruvian", "Pizza", "Polish", "Portuguese", "Pub Food", "Rajasthani",
	"Ramen", "Restaurant Cafe", "Roast Chicken", "Rolls", "Russian", "Salad", "Sandwich",
	"Scottish", "Seafood", "Singaporean", "South African", "South Indian", "Southern",
	"Southwestern", "Spanish", "Sri Lankan", "Steak", "Street Food", "Sunda", "Sushi",
	"Taco", "Taiwanese", "Tapas", "Tea", "Tex-Mex", "Thai", "Tibetan", "Turkish",
	"Turkish Pizza", "Ukrainian", "Vegetarian", "Vietnamese", "Western", "World Cuisine",
	"Yum Cha",
}

// CountryOptions lists the country names of the lookup table, sorted.
func CountryOptions(l dataset.Lookups) []string {
	out := make([]string, 0, len(l.Countries))
	for _, name := range l.Countries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
