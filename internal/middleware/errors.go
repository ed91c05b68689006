package middleware

import (
	"errors"
	"log"
	"net/http"

	"findarestaurant/internal/filter"
	"findarestaurant/internal/restaurant"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached as {"error": "..."}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)

		log.Printf(
			"[HTTP] %s %s → %d request=%s: %v",
			c.Request.Method,
			c.Request.URL.Path,
			status,
			c.GetString("requestID"),
			err,
		)

		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
	}
}

// StatusFor maps an error to the HTTP status of the page response.
func StatusFor(err error) int {
	var invalid *filter.ValidationError
	var empty *restaurant.EmptySelectionError

	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &empty), errors.Is(err, restaurant.ErrInsufficientSamples):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
