package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"findarestaurant/internal/dashboard"
	"findarestaurant/internal/dataset"
	"findarestaurant/internal/restaurant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, build dashboard.BuildFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := dashboard.NewHandler(dashboard.NewProvider(build), dashboard.NewPageControls(dataset.DefaultLookups()))
	return NewRouter(h, []string{"http://localhost:3000"})
}

func snapshotOf(records []dataset.Restaurant) dashboard.BuildFunc {
	return func(ctx context.Context) (*dashboard.Snapshot, error) {
		repo := restaurant.NewInMemoryRepository(records)
		return &dashboard.Snapshot{
			Dataset: &dataset.Dataset{Restaurants: records},
			Service: restaurant.NewService(repo),
		}, nil
	}
}

func get(r http.Handler, path string, query url.Values) *httptest.ResponseRecorder {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t, snapshotOf(nil))

	w := get(r, "/health", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestHome(t *testing.T) {
	r := newTestRouter(t, snapshotOf([]dataset.Restaurant{
		{RestaurantID: 1, CountryCode: 1, Country: "India", City: "Mumbai", Cuisines: "North Indian", AggregateRating: 4.2, Votes: 10},
		{RestaurantID: 2, CountryCode: 30, Country: "Brazil", City: "Rio de Janeiro", Cuisines: "Brazilian", AggregateRating: 4.9, Votes: 5},
	}))

	w := get(r, "/api/home", url.Values{"rating": {"4.5"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page dashboard.HomePage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "Restaurants", page.Metrics[0].Label)
	assert.Equal(t, 1.0, page.Metrics[0].Value)
	assert.Equal(t, 10.0, page.Metrics[4].Value)
}

func TestInvalidRating(t *testing.T) {
	r := newTestRouter(t, snapshotOf(nil))

	w := get(r, "/api/countries", url.Values{"rating": {"4.1"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCuisineTop_EmptySelection(t *testing.T) {
	r := newTestRouter(t, snapshotOf([]dataset.Restaurant{
		{RestaurantID: 1, Country: "India", Cuisines: "Italian", AggregateRating: 4},
		{RestaurantID: 2, Country: "Brazil", Cuisines: "Mineira", AggregateRating: 0},
	}))

	w := get(r, "/api/cuisines/Arabian/top", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/api/cuisines/Italian/top", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/api/cuisines/Mineira/top", url.Values{"cuisine": {"Mineira"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/api/cuisines/Martian/top", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInsights(t *testing.T) {
	records := []dataset.Restaurant{
		{RestaurantID: 1, Country: "India", City: "Mumbai", Cuisines: "Chinese", AverageCostForTwo: 500},
		{RestaurantID: 2, Country: "India", City: "Mumbai", Cuisines: "Chinese", AverageCostForTwo: 700},
	}
	r := newTestRouter(t, snapshotOf(records))

	w := get(r, "/api/insights", url.Values{"city": {"Mumbai"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/api/insights", url.Values{"city": {"Mumbai"}, "cuisine": {"Chinese"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPipelineFailure(t *testing.T) {
	boom := &dataset.DataSourceError{Source: "zomato.csv", Err: errors.New("no such file")}
	r := newTestRouter(t, func(ctx context.Context) (*dashboard.Snapshot, error) {
		return nil, boom
	})

	for _, path := range []string{"/api/home", "/api/map", "/api/cuisines"} {
		w := get(r, path, nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), "zomato.csv", path)
	}
}

func TestOptions(t *testing.T) {
	r := newTestRouter(t, snapshotOf(nil))

	w := get(r, "/api/options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var controls dashboard.PageControls
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &controls))
	assert.Nil(t, controls.Cities.Rating)
	assert.Len(t, controls.Home.Countries.Options, 15)
	assert.Equal(t, 0.25, controls.Map.Rating.Step)
}
