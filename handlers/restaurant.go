package handlers

import (
	"net/http"

	"savora/models"
	"savora/services/restaurant"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// BrowseRestaurants lists venues by category, nearest first when the
// caller supplies lat/lng.
func BrowseRestaurants(svc restaurant.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rests, err := svc.Browse(c.Request.Context(), c.Query("category"), parseOrigin(c), parseIntQuery(c, "limit", 0))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurants": rests, "count": len(rests)})
	}
}

// GetRestaurant fetches one venue, with distance when lat/lng is given.
func GetRestaurant(svc restaurant.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rest, err := svc.GetByID(c.Request.Context(), c.Param("restaurantID"), parseOrigin(c))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, rest)
	}
}

// CreateRestaurant registers a venue under the calling owner account.
func CreateRestaurant(svc restaurant.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		if u.Role != models.RoleOwner {
			utils.JSONError(c, http.StatusForbidden, "owner account required", "")
			return
		}

		var input models.Restaurant
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		input.OwnerID = u.ID

		rest, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rest)
	}
}

// ListOwnedRestaurants returns the venues the caller manages.
func ListOwnedRestaurants(svc restaurant.RestaurantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		rests, err := svc.ListOwned(c.Request.Context(), u.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurants": rests})
	}
}
