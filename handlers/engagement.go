package handlers

import (
	"net/http"

	"savora/services/engagement"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// LikeVideo bumps a video's like counter.
func LikeVideo(svc engagement.EngagementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		count, err := svc.LikeVideo(c.Request.Context(), u.ID, c.Param("videoID"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "liked", "like_count": count})
	}
}

// UnlikeVideo reverses a like.
func UnlikeVideo(svc engagement.EngagementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		count, err := svc.UnlikeVideo(c.Request.Context(), u.ID, c.Param("videoID"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "unliked", "like_count": count})
	}
}

// AddFavorite saves a restaurant to the caller's favorites.
func AddFavorite(svc engagement.EngagementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		if err := svc.AddFavorite(c.Request.Context(), u.ID, c.Param("restaurantID")); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "saved"})
	}
}

// RemoveFavorite drops a restaurant from the caller's favorites.
func RemoveFavorite(svc engagement.EngagementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		if err := svc.RemoveFavorite(c.Request.Context(), u.ID, c.Param("restaurantID")); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "removed"})
	}
}

// ListFavorites resolves the caller's saved restaurants.
func ListFavorites(svc engagement.EngagementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		rests, err := svc.ListFavorites(c.Request.Context(), u.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": rests})
	}
}
