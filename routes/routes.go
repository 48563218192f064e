package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wanderhub/handlers"
	"wanderhub/middleware"
)

// RegisterUserRoutes registers end-user account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetUserProfileHandler)
		api.PATCH("/me", hb.UpdateUserProfileHandler)
		api.DELETE("/revoke", hb.RevokeUserTokenHandler)
	}
}

// RegisterProviderRoutes registers provider account endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.RegisterProviderHandler)
		api.POST("/login", hb.AuthenticateProviderHandler)

		api.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		api.GET("/me", hb.GetProviderAccountHandler)
		api.DELETE("/revoke", hb.RevokeProviderTokenHandler)
	}
}

// RegisterSearchRoutes registers the public availability search endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("/taxis", hb.SearchTaxisHandler)
		api.GET("/stays", hb.SearchStaysHandler)
		api.GET("/guides", hb.SearchGuidesHandler)
		api.GET("/vehicles", hb.SearchVehiclesHandler)
	}
}

// RegisterBookingRoutes sets up the booking engine endpoints. Creation and
// cancellation act as the user; status changes act as the owning provider.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	userGroup := r.Group("/api/bookings")
	{
		userGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		userGroup.POST("/taxi", hb.CreateTaxiBookingHandler)
		userGroup.POST("/stay", hb.CreateStayBookingHandler)
		userGroup.POST("/guide", hb.CreateGuideBookingHandler)
		userGroup.POST("/rental", hb.CreateRentalBookingHandler)
		userGroup.PUT("/:id/cancel", hb.CancelBookingHandler)
		userGroup.GET("/mine", hb.UserBookingsHandler)
	}

	providerGroup := r.Group("/api/service-bookings")
	{
		providerGroup.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		providerGroup.GET("", hb.ServiceBookingsHandler)
		providerGroup.PUT("/:id/status", hb.ChangeBookingStatusHandler)
	}
}

// RegisterCatalogRoutes sets up service registration and inventory management
// per vertical. Listing endpoints are public; the rest act as the provider.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/taxis", hb.ListTaxisHandler)
	r.GET("/api/stays", hb.ListStaysHandler)
	r.GET("/api/guides", hb.ListGuidesHandler)
	r.GET("/api/rentals", hb.ListRentalCompaniesHandler)

	taxi := r.Group("/api/taxi")
	{
		taxi.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		taxi.POST("/register", hb.RegisterTaxiHandler)
		taxi.GET("/profile", hb.TaxiProfileHandler)
		taxi.PATCH("/profile", hb.UpdateTaxiProfileHandler)
	}

	stay := r.Group("/api/stay")
	{
		stay.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		stay.POST("/register", hb.RegisterStayHandler)
		stay.GET("/profile", hb.StayProfileHandler)
		stay.PATCH("/profile", hb.UpdateStayProfileHandler)
		stay.POST("/rooms", hb.AddRoomHandler)
		stay.PATCH("/rooms/:id", hb.UpdateRoomHandler)
		stay.DELETE("/rooms/:id", hb.DeleteRoomHandler)
	}

	guide := r.Group("/api/guide")
	{
		guide.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		guide.POST("/register", hb.RegisterGuideHandler)
		guide.GET("/profile", hb.GuideProfileHandler)
		guide.PATCH("/profile", hb.UpdateGuideProfileHandler)
	}

	rental := r.Group("/api/rental")
	{
		rental.Use(middleware.JWTAuthProviderMiddleware(hb.ProviderRepo))
		rental.POST("/register", hb.RegisterRentalHandler)
		rental.GET("/profile", hb.RentalProfileHandler)
		rental.POST("/vehicles", hb.AddVehicleHandler)
		rental.PATCH("/vehicles/:id", hb.UpdateVehicleHandler)
		rental.DELETE("/vehicles/:id", hb.DeleteVehicleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm WanderHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
