package handlers

import (
	"net/http"

	"savora/services/review"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// SubmitReview posts a rated review for a restaurant.
func SubmitReview(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}

		var input struct {
			Rating int    `json:"rating" binding:"required"`
			Text   string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		rev, err := svc.SubmitReview(c.Request.Context(), u.ID, c.Param("restaurantID"), input.Rating, input.Text)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rev)
	}
}

// ListReviews returns recent reviews for a restaurant, newest first.
func ListReviews(svc review.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		revs, err := svc.ListForRestaurant(c.Request.Context(), c.Param("restaurantID"), parseIntQuery(c, "limit", 0))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": revs, "count": len(revs)})
	}
}
