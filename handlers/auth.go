package handlers

import (
	"net/http"

	"savora/services/user"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// RegisterUser creates an account and returns a token for it.
func RegisterUser(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input user.RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		result, err := svc.Register(c.Request.Context(), input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// AuthenticateUser checks credentials and returns a token.
func AuthenticateUser(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		result, err := svc.Authenticate(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
