package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/config"
	"github.com/itssanjain-collab/surgery-hub-connect/cron"
	"github.com/itssanjain-collab/surgery-hub-connect/database"
	bookingRepoPkg "github.com/itssanjain-collab/surgery-hub-connect/database/repository/booking"
	favoriteRepoPkg "github.com/itssanjain-collab/surgery-hub-connect/database/repository/favorite"
	hospitalRepoPkg "github.com/itssanjain-collab/surgery-hub-connect/database/repository/hospital"
	reviewRepoPkg "github.com/itssanjain-collab/surgery-hub-connect/database/repository/review"
	userRepoPkg "github.com/itssanjain-collab/surgery-hub-connect/database/repository/user"
	"github.com/itssanjain-collab/surgery-hub-connect/handlers"
	"github.com/itssanjain-collab/surgery-hub-connect/middleware"
	"github.com/itssanjain-collab/surgery-hub-connect/routes"
	"github.com/itssanjain-collab/surgery-hub-connect/services/booking"
	"github.com/itssanjain-collab/surgery-hub-connect/services/notification"
	"github.com/itssanjain-collab/surgery-hub-connect/services/review"
	"github.com/itssanjain-collab/surgery-hub-connect/services/search"
	"github.com/itssanjain-collab/surgery-hub-connect/services/tasks"
	"github.com/itssanjain-collab/surgery-hub-connect/services/user"
	"github.com/itssanjain-collab/surgery-hub-connect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	hospitalRepo := hospitalRepoPkg.NewMongoHospitalRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	favoriteRepo := favoriteRepoPkg.NewMongoFavoriteRepo()

	if err := hospitalRepoPkg.SeedIfEmpty(hospitalRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed hospital catalog: %v", err)
	}

	// services.
	mailer := notification.NewSendGridMailer()
	dispatcher := notification.NewDefaultDispatcher(mailer)
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	searchService := &search.DefaultSearchService{
		Repo:        hospitalRepo,
		CacheClient: utils.GetCacheClient(),
		CacheTTL:    config.AppConfig.CatalogCacheSeconds,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		HospitalRepo: hospitalRepo,
		Sessions:     booking.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Dispatcher:   dispatcher,
		Reminders:    reminderScheduler,
	}

	userService := &user.DefaultUserService{
		Repo:         userRepo,
		FavoriteRepo: favoriteRepo,
		HospitalRepo: hospitalRepo,
		Mailer:       mailer,
	}

	reviewService := &review.DefaultReviewService{
		Repo:         reviewRepo,
		HospitalRepo: hospitalRepo,
	}

	// handlers.
	hospitalHandler := handlers.NewHospitalHandler(searchService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	reviewHandler := handlers.NewReviewHandler(reviewService, userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		SearchHospitalsHandler:  hospitalHandler.SearchHospitalsHandler,
		GetHospitalHandler:      hospitalHandler.GetHospitalHandler,
		CompareHospitalsHandler: hospitalHandler.CompareHospitalsHandler,
		SurgeryTypesHandler:     hospitalHandler.SurgeryTypesHandler,
		RegionsHandler:          hospitalHandler.RegionsHandler,

		StartSessionHandler:        bookingHandler.StartSessionHandler,
		GetSessionHandler:          bookingHandler.GetSessionHandler,
		AuthenticateSessionHandler: bookingHandler.AuthenticateSessionHandler,
		SelectSlotHandler:          bookingHandler.SelectSlotHandler,
		EnterDetailsHandler:        bookingHandler.EnterDetailsHandler,
		SubmitHandler:              bookingHandler.SubmitHandler,
		ResetSessionHandler:        bookingHandler.ResetSessionHandler,

		ListMyBookingsHandler: bookingHandler.ListMyBookingsHandler,
		RescheduleHandler:     bookingHandler.RescheduleHandler,
		CancelHandler:         bookingHandler.CancelHandler,

		RegisterUserHandler:          authHandler.RegisterUserHandler,
		AuthenticateUserHandler:      authHandler.AuthenticateUserHandler,
		GoogleAuthHandler:            authHandler.GoogleAuthHandler,
		SignOutHandler:               authHandler.SignOutHandler,
		RequestPasswordResetHandler:  authHandler.RequestPasswordResetHandler,
		CompletePasswordResetHandler: authHandler.CompletePasswordResetHandler,

		GetProfileHandler:     userHandler.GetProfileHandler,
		UpdateProfileHandler:  userHandler.UpdateProfileHandler,
		DeleteAccountHandler:  userHandler.DeleteAccountHandler,
		ListFavoritesHandler:  userHandler.ListFavoritesHandler,
		ToggleFavoriteHandler: userHandler.ToggleFavoriteHandler,
		LabelFavoriteHandler:  userHandler.LabelFavoriteHandler,

		ListReviewsHandler:  reviewHandler.ListReviewsHandler,
		SubmitReviewHandler: reviewHandler.SubmitReviewHandler,
		MarkHelpfulHandler:  reviewHandler.MarkHelpfulHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker and health monitor.
	cron.InitReminderWorker(mailer, bookingRepo)
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetSessionCacheClient(),
		utils.GetResetTokenClient(),
	}, database.MongoClient)

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
