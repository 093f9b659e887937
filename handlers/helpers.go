package handlers

import (
	"strconv"

	"savora/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated account set by the JWT middleware.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// parseOrigin reads optional lat/lng query parameters. Both must be
// present and numeric for an origin to be returned.
func parseOrigin(c *gin.Context) *models.Coordinate {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &models.Coordinate{Latitude: lat, Longitude: lng}
}

// parseRadius reads the optional radius query parameter in kilometres.
// Both "radius_km" and the shorter "radius" are accepted.
func parseRadius(c *gin.Context) *float64 {
	s := c.Query("radius_km")
	if s == "" {
		s = c.Query("radius")
	}
	if s == "" {
		return nil
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 {
		return nil
	}
	return &r
}

func parseIntQuery(c *gin.Context, key string, fallback int) int {
	s := c.Query(key)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
