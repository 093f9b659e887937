package handlers

import (
	userRepoPkg "savora/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration stays declarative.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler     gin.HandlerFunc
	GetBadgesHandler      gin.HandlerFunc
	RegisterDeviceHandler gin.HandlerFunc

	// Feed endpoints
	GetFeedHandler          gin.HandlerFunc
	StartFeedSessionHandler gin.HandlerFunc
	NextFeedPageHandler     gin.HandlerFunc

	// Restaurant endpoints
	BrowseRestaurantsHandler    gin.HandlerFunc
	GetRestaurantHandler        gin.HandlerFunc
	CreateRestaurantHandler     gin.HandlerFunc
	ListOwnedRestaurantsHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc

	// Comment endpoints
	GetCommentsHandler gin.HandlerFunc
	PostCommentHandler gin.HandlerFunc

	// Engagement endpoints
	LikeVideoHandler      gin.HandlerFunc
	UnlikeVideoHandler    gin.HandlerFunc
	AddFavoriteHandler    gin.HandlerFunc
	RemoveFavoriteHandler gin.HandlerFunc
	ListFavoritesHandler  gin.HandlerFunc

	// Review endpoints
	SubmitReviewHandler gin.HandlerFunc
	ListReviewsHandler  gin.HandlerFunc

	// Storage endpoints
	UploadFileHandler   gin.HandlerFunc
	DeleteFileHandler   gin.HandlerFunc
	GetSignedURLHandler gin.HandlerFunc
}
