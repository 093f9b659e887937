package handlers

import (
	"net/http"

	"savora/services/user"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated account's profile.
func GetProfile(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		profile, err := svc.GetProfile(c.Request.Context(), u.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// GetBadges lists the authenticated account's earned badges.
func GetBadges(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		badges, err := svc.GetBadges(c.Request.Context(), u.ID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"badges": badges})
	}
}

// RegisterDevice stores the FCM token pushes are delivered to.
func RegisterDevice(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		var input struct {
			Token string `json:"token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if err := svc.RegisterDevice(c.Request.Context(), u.ID, input.Token); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "registered"})
	}
}
