package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menuflow/internal/core"
)

// RestaurantScope resolves the :id route param, verifies the caller
// owns that restaurant, and stores the id as "restaurantID" for the
// handlers downstream. Runs after AuthMiddleware.
func RestaurantScope(restaurants core.RestaurantReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("id")
		if restaurantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "restaurant id missing"})
			return
		}

		userID := c.GetString("userID")
		isOwner, err := restaurants.IsOwner(c.Request.Context(), restaurantID, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "ownership check failed"})
			return
		}
		if !isOwner {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not your restaurant"})
			return
		}

		c.Set("restaurantID", restaurantID)
		c.Next()
	}
}
