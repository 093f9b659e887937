package handlers

import (
	"net/http"
	"time"

	"savora/models"
	"savora/services/booking"
	"savora/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking places a table booking for the authenticated user.
func CreateBooking(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}

		var input models.Booking
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		input.UserID = u.ID

		b, err := svc.CreateBooking(c.Request.Context(), input)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

// UpdateBookingStatus transitions a booking; the customer and the venue
// owner are the only permitted actors.
func UpdateBookingStatus(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}

		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}

		b, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), u.ID, input.Status)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// ListBookings returns the caller's bookings split into upcoming and
// past windows. Owner accounts also see bookings at their venues.
func ListBookings(svc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := currentUser(c)
		if u == nil {
			utils.JSONError(c, http.StatusUnauthorized, "not authenticated", "")
			return
		}
		buckets, err := svc.ListForViewer(c.Request.Context(), *u, time.Now())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, buckets)
	}
}
