package dashboard

import (
	"context"
	"net/http"
	"slices"
	"strconv"

	"findarestaurant/internal/dataset"
	"findarestaurant/internal/filter"
	"findarestaurant/internal/restaurant"

	"github.com/gin-gonic/gin"
)

// Handler serves the dashboard pages. Failures are attached to the context
// with c.Error and rendered by the error middleware.
type Handler struct {
	provider *Provider
	controls PageControls
}

func NewHandler(provider *Provider, controls PageControls) *Handler {
	return &Handler{provider: provider, controls: controls}
}

// page parses the controls, renders one page from the snapshot and writes it.
func page[T any](
	h *Handler,
	controls filter.Controls,
	render func(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (T, error),
) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := h.provider.Snapshot()
		if err != nil {
			_ = c.Error(err)
			return
		}

		sel, err := filter.Parse(c.Request.URL.Query(), controls)
		if err != nil {
			_ = c.Error(err)
			return
		}

		out, err := render(c.Request.Context(), snap.Service, sel)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, out)
	}
}

// GET /api/home
func (h *Handler) Home() gin.HandlerFunc { return page(h, h.controls.Home, Home) }

// GET /api/countries
func (h *Handler) Countries() gin.HandlerFunc { return page(h, h.controls.Countries, Countries) }

// GET /api/cities
func (h *Handler) Cities() gin.HandlerFunc { return page(h, h.controls.Cities, Cities) }

// GET /api/cuisines
func (h *Handler) Cuisines() gin.HandlerFunc { return page(h, h.controls.Cuisines, Cuisines) }

// GET /api/map
func (h *Handler) WorldMap() gin.HandlerFunc { return page(h, h.controls.Map, WorldMap) }

// --------------------------------------------------
// GET /api/cuisines/:cuisine/top
// --------------------------------------------------
func (h *Handler) CuisineTop() gin.HandlerFunc {
	return func(c *gin.Context) {
		cuisine := c.Param("cuisine")
		if !slices.Contains(filter.CuisineOptions, cuisine) {
			_ = c.Error(&filter.ValidationError{Field: "cuisine", Value: cuisine, Reason: "not an available option"})
			return
		}

		page(h, h.controls.Cuisines, func(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*dataset.Restaurant, error) {
			return svc.TopRestaurant(ctx, sel, cuisine)
		})(c)
	}
}

// --------------------------------------------------
// GET /api/insights?city=&cuisine=&cost=
// --------------------------------------------------
func (h *Handler) Insights() gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Query("city")
		cuisine := c.Query("cuisine")

		if city == "" || cuisine == "" {
			_ = c.Error(&filter.ValidationError{Field: "city/cuisine", Value: city + "/" + cuisine, Reason: "city and cuisine required"})
			return
		}

		var cost *float64
		if raw := c.Query("cost"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 {
				_ = c.Error(&filter.ValidationError{Field: "cost", Value: raw, Reason: "must be a non-negative number"})
				return
			}
			cost = &v
		}

		page(h, h.controls.Insights, func(ctx context.Context, svc *restaurant.Service, sel filter.Selection) (*restaurant.CostInsight, error) {
			return svc.CostInsight(ctx, sel, city, cuisine, cost)
		})(c)
	}
}

// --------------------------------------------------
// GET /api/options
// --------------------------------------------------
func (h *Handler) Options() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, h.controls)
	}
}
