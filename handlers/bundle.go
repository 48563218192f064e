package handlers

import (
	"github.com/gin-gonic/gin"

	providerRepoPkg "wanderhub/database/repository/provider"
	userRepoPkg "wanderhub/database/repository/user"
	bookingService "wanderhub/services/booking"
	catalogService "wanderhub/services/catalog"
	providerService "wanderhub/services/provider"
	userService "wanderhub/services/user"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos are
// carried so the routes can construct the auth middleware.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	ProviderRepo providerRepoPkg.ProviderRepository

	// User account endpoints
	RegisterUserHandler      gin.HandlerFunc
	AuthenticateUserHandler  gin.HandlerFunc
	GetUserProfileHandler    gin.HandlerFunc
	UpdateUserProfileHandler gin.HandlerFunc
	RevokeUserTokenHandler   gin.HandlerFunc

	// Provider account endpoints
	RegisterProviderHandler     gin.HandlerFunc
	AuthenticateProviderHandler gin.HandlerFunc
	GetProviderAccountHandler   gin.HandlerFunc
	RevokeProviderTokenHandler  gin.HandlerFunc

	// Availability search endpoints
	SearchTaxisHandler    gin.HandlerFunc
	SearchStaysHandler    gin.HandlerFunc
	SearchGuidesHandler   gin.HandlerFunc
	SearchVehiclesHandler gin.HandlerFunc

	// Booking endpoints
	CreateTaxiBookingHandler   gin.HandlerFunc
	CreateStayBookingHandler   gin.HandlerFunc
	CreateGuideBookingHandler  gin.HandlerFunc
	CreateRentalBookingHandler gin.HandlerFunc
	ChangeBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	UserBookingsHandler        gin.HandlerFunc
	ServiceBookingsHandler     gin.HandlerFunc

	// Catalog endpoints
	RegisterTaxiHandler          gin.HandlerFunc
	TaxiProfileHandler           gin.HandlerFunc
	UpdateTaxiProfileHandler     gin.HandlerFunc
	ListTaxisHandler             gin.HandlerFunc
	RegisterStayHandler          gin.HandlerFunc
	StayProfileHandler           gin.HandlerFunc
	UpdateStayProfileHandler     gin.HandlerFunc
	ListStaysHandler             gin.HandlerFunc
	AddRoomHandler               gin.HandlerFunc
	UpdateRoomHandler            gin.HandlerFunc
	DeleteRoomHandler            gin.HandlerFunc
	RegisterGuideHandler         gin.HandlerFunc
	GuideProfileHandler          gin.HandlerFunc
	UpdateGuideProfileHandler    gin.HandlerFunc
	ListGuidesHandler            gin.HandlerFunc
	RegisterRentalHandler        gin.HandlerFunc
	RentalProfileHandler         gin.HandlerFunc
	ListRentalCompaniesHandler   gin.HandlerFunc
	AddVehicleHandler            gin.HandlerFunc
	UpdateVehicleHandler         gin.HandlerFunc
	DeleteVehicleHandler         gin.HandlerFunc
}

// NewHandlerBundle wires every handler to its service.
func NewHandlerBundle(
	userRepo userRepoPkg.UserRepository,
	providerRepo providerRepoPkg.ProviderRepository,
	users userService.UserService,
	providers providerService.ProviderService,
	bookings bookingService.BookingService,
	catalog catalogService.CatalogService,
) *HandlerBundle {
	return &HandlerBundle{
		UserRepo:     userRepo,
		ProviderRepo: providerRepo,

		RegisterUserHandler:      RegisterUserHandler(users),
		AuthenticateUserHandler:  AuthenticateUserHandler(users),
		GetUserProfileHandler:    GetUserProfileHandler(users),
		UpdateUserProfileHandler: UpdateUserProfileHandler(users),
		RevokeUserTokenHandler:   RevokeUserTokenHandler(users),

		RegisterProviderHandler:     RegisterProviderHandler(providers),
		AuthenticateProviderHandler: AuthenticateProviderHandler(providers),
		GetProviderAccountHandler:   GetProviderAccountHandler(providers),
		RevokeProviderTokenHandler:  RevokeProviderTokenHandler(providers),

		SearchTaxisHandler:    SearchTaxisHandler(bookings),
		SearchStaysHandler:    SearchStaysHandler(bookings),
		SearchGuidesHandler:   SearchGuidesHandler(bookings),
		SearchVehiclesHandler: SearchVehiclesHandler(bookings),

		CreateTaxiBookingHandler:   CreateTaxiBookingHandler(bookings),
		CreateStayBookingHandler:   CreateStayBookingHandler(bookings),
		CreateGuideBookingHandler:  CreateGuideBookingHandler(bookings),
		CreateRentalBookingHandler: CreateRentalBookingHandler(bookings),
		ChangeBookingStatusHandler: ChangeBookingStatusHandler(bookings),
		CancelBookingHandler:       CancelBookingHandler(bookings),
		UserBookingsHandler:        UserBookingsHandler(bookings),
		ServiceBookingsHandler:     ServiceBookingsHandler(bookings),

		RegisterTaxiHandler:        RegisterTaxiHandler(catalog),
		TaxiProfileHandler:         TaxiProfileHandler(catalog),
		UpdateTaxiProfileHandler:   UpdateTaxiProfileHandler(catalog),
		ListTaxisHandler:           ListTaxisHandler(catalog),
		RegisterStayHandler:        RegisterStayHandler(catalog),
		StayProfileHandler:         StayProfileHandler(catalog),
		UpdateStayProfileHandler:   UpdateStayProfileHandler(catalog),
		ListStaysHandler:           ListStaysHandler(catalog),
		AddRoomHandler:             AddRoomHandler(catalog),
		UpdateRoomHandler:          UpdateRoomHandler(catalog),
		DeleteRoomHandler:          DeleteRoomHandler(catalog),
		RegisterGuideHandler:       RegisterGuideHandler(catalog),
		GuideProfileHandler:        GuideProfileHandler(catalog),
		UpdateGuideProfileHandler:  UpdateGuideProfileHandler(catalog),
		ListGuidesHandler:          ListGuidesHandler(catalog),
		RegisterRentalHandler:      RegisterRentalHandler(catalog),
		RentalProfileHandler:       RentalProfileHandler(catalog),
		ListRentalCompaniesHandler: ListRentalCompaniesHandler(catalog),
		AddVehicleHandler:          AddVehicleHandler(catalog),
		UpdateVehicleHandler:       UpdateVehicleHandler(catalog),
		DeleteVehicleHandler:       DeleteVehicleHandler(catalog),
	}
}
