package handlers

import (
	"net/http"

	"savora/models"
	"savora/services/feed"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

const defaultFeedPageSize = 10

// GetFeed returns one ranked feed page by explicit limit/offset.
func GetFeed(svc feed.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := models.FeedFilter{
			Origin:   parseOrigin(c),
			RadiusKm: parseRadius(c),
			Category: c.Query("category"),
		}
		limit := parseIntQuery(c, "limit", defaultFeedPageSize)
		offset := parseIntQuery(c, "offset", 0)

		items, err := svc.GetPage(c.Request.Context(), limit, offset, filter)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
	}
}

// StartFeedSession opens a paging session and returns the first page.
func StartFeedSession(svc feed.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PageSize int               `json:"pageSize"`
			Filter   models.FeedFilter `json:"filter"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		if input.PageSize <= 0 {
			input.PageSize = defaultFeedPageSize
		}

		sessionID, items, hasMore, err := svc.StartSession(c.Request.Context(), input.PageSize, input.Filter)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"sessionID": sessionID,
			"items":     items,
			"hasMore":   hasMore,
		})
	}
}

// NextFeedPage advances a paging session.
func NextFeedPage(svc feed.FeedService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")
		items, hasMore, err := svc.NextPage(c.Request.Context(), sessionID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":   items,
			"hasMore": hasMore,
		})
	}
}
