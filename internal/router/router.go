package router

import (
	"time"

	"findarestaurant/internal/dashboard"
	"findarestaurant/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(h *dashboard.Handler, allowOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(middleware.RequestID(), middleware.ErrorHandler())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/home", h.Home())
		api.GET("/countries", h.Countries())
		api.GET("/cities", h.Cities())
		api.GET("/cuisines", h.Cuisines())
		api.GET("/cuisines/:cuisine/top", h.CuisineTop())
		api.GET("/map", h.WorldMap())
		api.GET("/insights", h.Insights())
		api.GET("/options", h.Options())
	}

	return r
}
