package dashboard

import (
	"strconv"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/restaurant"
)

// Bar colouring modes.
const (
	ColorByValue   = "value"
	ColorByCountry = "country"
)

type Bar struct {
	Category string  `json:"category"`
	Group    string  `json:"group,omitempty"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// BarChart is a category axis, a numeric axis and one labelled bar per group.
type BarChart struct {
	Title   string `json:"title"`
	XLabel  string `json:"x_label"`
	YLabel  string `json:"y_label"`
	ColorBy string `json:"color_by"`
	Bars    []Bar  `json:"bars"`
}

type Table struct {
	Title   string   `json:"title"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

type MapMarker struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Popup     string  `json:"popup"`
}

type Map struct {
	Title   string      `json:"title"`
	Markers []MapMarker `json:"markers"`
}

func barChart(title, xLabel, yLabel, colorBy string, groups []restaurant.Group) BarChart {
	bars := make([]Bar, len(groups))
	for i, g := range groups {
		bars[i] = Bar{
			Category: g.Key,
			Group:    g.Secondary,
			Value:    g.Value,
			Text:     strconv.FormatFloat(g.Value, 'f', -1, 64),
		}
	}
	return BarChart{Title: title, XLabel: xLabel, YLabel: yLabel, ColorBy: colorBy, Bars: bars}
}

var restaurantColumns = []string{
	dataset.ColRestaurantID,
	dataset.ColRestaurantName,
	dataset.ColCountry,
	dataset.ColCity,
	dataset.ColCuisines,
	dataset.ColAggregateRating,
	dataset.ColVotes,
}

func restaurantTable(title string, rs []dataset.Restaurant) Table {
	rows := make([][]any, len(rs))
	for i, r := range rs {
		rows[i] = []any{r.RestaurantID, r.RestaurantName, r.Country, r.City, r.Cuisines, r.AggregateRating, r.Votes}
	}
	return Table{Title: title, Columns: restaurantColumns, Rows: rows}
}

func groupTable(title, keyColumn, valueColumn string, groups []restaurant.Group) Table {
	rows := make([][]any, len(groups))
	for i, g := range groups {
		rows[i] = []any{g.Key, g.Value}
	}
	return Table{Title: title, Columns: []string{keyColumn, valueColumn}, Rows: rows}
}

// popup is the text shown when a map pin is opened.
func popup(m restaurant.Marker) string {
	return m.City + "\n" + m.Country + "\n" + m.RestaurantName
}

func worldMap(title string, markers []restaurant.Marker) Map {
	out := make([]MapMarker, len(markers))
	for i, m := range markers {
		out[i] = MapMarker{Latitude: m.Latitude, Longitude: m.Longitude, Popup: popup(m)}
	}
	return Map{Title: title, Markers: out}
}
