package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"savora/config"
	"savora/cron"
	"savora/database"
	bookingRepoPkg "savora/database/repository/booking"
	commentRepoPkg "savora/database/repository/comment"
	restaurantRepoPkg "savora/database/repository/restaurant"
	reviewRepoPkg "savora/database/repository/review"
	userRepoPkg "savora/database/repository/user"
	videoRepoPkg "savora/database/repository/video"
	"savora/handlers"
	"savora/routes"
	"savora/services/booking"
	"savora/services/comment"
	"savora/services/engagement"
	"savora/services/feed"
	"savora/services/notification"
	"savora/services/restaurant"
	"savora/services/review"
	"savora/services/user"
	"savora/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.InitFeedCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	videoRepo := videoRepoPkg.NewMongoVideoRepo()
	restaurantRepo := restaurantRepoPkg.NewMongoRestaurantRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	commentRepo := commentRepoPkg.NewMongoCommentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// async reminder queue client.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer taskClient.Close()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	userService := &user.DefaultUserService{Repo: userRepo}
	feedService := feed.NewDefaultFeedService(videoRepo, utils.GetFeedCacheClient())
	restaurantService := &restaurant.DefaultRestaurantService{
		Repo:  restaurantRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		RestaurantRepo:  restaurantRepo,
		NotificationSvc: notificationService,
		TaskClient:      taskClient,
	}
	commentService := &comment.DefaultCommentService{
		Repo:            commentRepo,
		VideoRepo:       videoRepo,
		NotificationSvc: notificationService,
	}
	engagementService := &engagement.DefaultEngagementService{
		Users:       userRepo,
		Videos:      videoRepo,
		Restaurants: restaurantRepo,
	}
	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		Restaurants: restaurantRepo,
		Users:       userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterUserHandler:     handlers.RegisterUser(userService),
		AuthenticateUserHandler: handlers.AuthenticateUser(userService),

		GetProfileHandler:     handlers.GetProfile(userService),
		GetBadgesHandler:      handlers.GetBadges(userService),
		RegisterDeviceHandler: handlers.RegisterDevice(userService),

		GetFeedHandler:          handlers.GetFeed(feedService),
		StartFeedSessionHandler: handlers.StartFeedSession(feedService),
		NextFeedPageHandler:     handlers.NextFeedPage(feedService),

		BrowseRestaurantsHandler:    handlers.BrowseRestaurants(restaurantService),
		GetRestaurantHandler:        handlers.GetRestaurant(restaurantService),
		CreateRestaurantHandler:     handlers.CreateRestaurant(restaurantService),
		ListOwnedRestaurantsHandler: handlers.ListOwnedRestaurants(restaurantService),

		CreateBookingHandler:       handlers.CreateBooking(bookingService),
		UpdateBookingStatusHandler: handlers.UpdateBookingStatus(bookingService),
		ListBookingsHandler:        handlers.ListBookings(bookingService),

		GetCommentsHandler: handlers.GetComments(commentService),
		PostCommentHandler: handlers.PostComment(commentService),

		LikeVideoHandler:      handlers.LikeVideo(engagementService),
		UnlikeVideoHandler:    handlers.UnlikeVideo(engagementService),
		AddFavoriteHandler:    handlers.AddFavorite(engagementService),
		RemoveFavoriteHandler: handlers.RemoveFavorite(engagementService),
		ListFavoritesHandler:  handlers.ListFavorites(engagementService),

		SubmitReviewHandler: handlers.SubmitReview(reviewService),
		ListReviewsHandler:  handlers.ListReviews(reviewService),

		UploadFileHandler:   handlers.UploadFile(storageService),
		DeleteFileHandler:   handlers.DeleteFile(storageService),
		GetSignedURLHandler: handlers.GetSignedURL(storageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
