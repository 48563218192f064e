package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"wanderhub/config"
	"wanderhub/database"
	bookingRepoPkg "wanderhub/database/repository/booking"
	catalogRepoPkg "wanderhub/database/repository/catalog"
	providerRepoPkg "wanderhub/database/repository/provider"
	userRepoPkg "wanderhub/database/repository/user"
	"wanderhub/handlers"
	"wanderhub/middleware"
	"wanderhub/routes"
	"wanderhub/services/booking"
	"wanderhub/services/catalog"
	"wanderhub/services/provider"
	"wanderhub/services/routing"
	"wanderhub/services/user"
	"wanderhub/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	catRepo := catalogRepoPkg.NewMongoCatalogRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	providerService := &provider.DefaultProviderService{Repo: provRepo}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookRepo,
		Catalog:   catRepo,
		Providers: provRepo,
		Distance:  routing.NewORSResolver(),
	}
	catalogService := &catalog.DefaultCatalogService{
		Catalog:   catRepo,
		Providers: provRepo,
		Bookings:  bookRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userRepo, provRepo,
		userService, providerService, bookingService, catalogService,
	)
	routes.RegisterRoutes(router, handlerBundle)

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
