package routes

import (
	"net/http"
	"time"

	"savora/handlers"
	"savora/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/me")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetProfileHandler)
		api.GET("/badges", hb.GetBadgesHandler)
		api.POST("/device", hb.RegisterDeviceHandler)
		api.GET("/restaurants", hb.ListOwnedRestaurantsHandler)
		api.GET("/favorites", hb.ListFavoritesHandler)
		api.POST("/favorites/:restaurantID", hb.AddFavoriteHandler)
		api.DELETE("/favorites/:restaurantID", hb.RemoveFavoriteHandler)
	}
}

// RegisterFeedRoutes registers the discovery feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.GET("", hb.GetFeedHandler)
		api.POST("/session", hb.StartFeedSessionHandler)
		api.POST("/session/:sessionID/next", hb.NextFeedPageHandler)
	}
}

// RegisterRestaurantRoutes registers venue endpoints. Discovery is
// public; creation requires an authenticated owner.
func RegisterRestaurantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/restaurants")
	{
		api.GET("", hb.BrowseRestaurantsHandler)
		api.GET("/:restaurantID", hb.GetRestaurantHandler)

		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), hb.CreateRestaurantHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListBookingsHandler)
		api.POST("", hb.CreateBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterVideoRoutes registers comment and like endpoints.
func RegisterVideoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/videos")
	{
		api.GET("/:videoID/comments", hb.GetCommentsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/:videoID/comments", hb.PostCommentHandler)
		protected.POST("/:videoID/like", hb.LikeVideoHandler)
		protected.DELETE("/:videoID/like", hb.UnlikeVideoHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/restaurants/:restaurantID/reviews")
	{
		api.GET("", hb.ListReviewsHandler)
		api.POST("", middleware.JWTAuthMiddleware(hb.UserRepo), hb.SubmitReviewHandler)
	}
}

// RegisterStorageRoutes registers media endpoints: upload, delete and
// signed delivery URLs.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/upload/:bucket", hb.UploadFileHandler)
		api.DELETE("/files", hb.DeleteFileHandler)
		api.GET("/signed-url", hb.GetSignedURLHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Savora"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// global middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterRestaurantRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVideoRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
}
