// Package booking implements the availability and booking engine: per-vertical
// availability evaluation, race-free booking creation and the booking status
// state machine.
package booking

import (
	"context"

	bookingRepo "wanderhub/database/repository/booking"
	catalogRepo "wanderhub/database/repository/catalog"
	providerRepo "wanderhub/database/repository/provider"
	"wanderhub/models"
	"wanderhub/services/routing"
)

// BookingService exposes the booking engine to the HTTP layer.
type BookingService interface {
	// Availability
	FindAvailableTaxis(ctx context.Context, search models.TaxiSearch) ([]models.TaxiUnit, error)
	FindAvailableStays(ctx context.Context, search models.StaySearch) ([]models.StayAvailability, error)
	FindAvailableGuides(ctx context.Context, search models.GuideSearch) ([]models.GuideUnit, error)
	FindAvailableVehicles(ctx context.Context, search models.RentalSearch) ([]models.RentalVehicleUnit, error)

	// Creation
	CreateTaxiBooking(ctx context.Context, userID string, in models.TaxiBookingInput) (*models.Booking, error)
	CreateStayBooking(ctx context.Context, userID string, in models.StayBookingInput) (*models.Booking, error)
	CreateGuideBooking(ctx context.Context, userID string, in models.GuideBookingInput) (*models.Booking, error)
	CreateRentalBooking(ctx context.Context, userID string, in models.RentalBookingInput) (*models.Booking, error)

	// Lifecycle
	ChangeStatus(ctx context.Context, providerID, bookingID string, to models.BookingStatus) (*models.Booking, error)
	CancelByUser(ctx context.Context, userID, bookingID string) (*models.Booking, error)

	// History
	UserBookings(ctx context.Context, userID string) (*models.UserBookings, error)
	ServiceBookings(ctx context.Context, providerID string) ([]models.Booking, error)
}

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Catalog   catalogRepo.CatalogRepository
	Providers providerRepo.ProviderRepository
	Distance  routing.DistanceResolver
}
