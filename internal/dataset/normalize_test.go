package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeColumn(t *testing.T) {
	cases := map[string]string{
		"Restaurant ID":        "restaurant_id",
		"Restaurant Name":      "restaurant_name",
		"Country Code":         "country_code",
		"City":                 "city",
		"Cuisines":             "cuisines",
		"Average Cost for two": "average_cost_for_two",
		"Price range":          "price_range",
		"Aggregate rating":     "aggregate_rating",
		"Rating color":         "rating_color",
		"Votes":                "votes",
		"Locality Verbose":     "locality_verbose",
		"Has Online delivery":  "has_online_delivery",
		"  Latitude ":          "latitude",
		"switch-to-order menu": "switch_to_order_menu",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeColumn(in), "label %q", in)
	}
}

func TestNormalizeColumn_Idempotent(t *testing.T) {
	labels := []string{
		"Restaurant ID", "Average Cost for two", "Rating color", "Has Table booking",
		"Locality Verbose", "restaurant_id", "PriceRange", "votes",
	}
	for _, l := range labels {
		once := NormalizeColumn(l)
		assert.Equal(t, once, NormalizeColumn(once), "label %q", l)
	}
}

func TestNormalizeColumns_KeepsOrderAndRows(t *testing.T) {
	in := &Table{
		Columns: []string{"Votes", "Restaurant ID", "City"},
		Rows:    [][]Value{{Text("3"), Text("1"), Text("Delhi")}},
	}

	out := NormalizeColumns(in)

	assert.Equal(t, []string{"votes", "restaurant_id", "city"}, out.Columns)
	assert.Equal(t, in.Rows, out.Rows)
	assert.Equal(t, []string{"Votes", "Restaurant ID", "City"}, in.Columns, "input labels must not change")
}
