package handlers

import (
	"net/http"

	"savora/services/comment"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// GetComments returns the threaded comment tree for a video.
func GetComments(svc comment.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tree, err := svc.GetTree(c.Request.Context(), c.Param("videoID"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"comments": tree})
	}
}

// PostComment adds a comment or a reply to a video.
func PostComment(svc comment.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}

		var input struct {
			Text     string `json:"text" binding:"required"`
			ParentID string `json:"parentId"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		posted, err := svc.PostComment(c.Request.Context(), c.Param("videoID"), u.ID, u.Username, input.Text, input.ParentID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, posted)
	}
}
