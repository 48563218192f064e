// Package catalog manages service registrations and the bookable inventory
// each provider owns: a taxi, a stay with rooms, a guide, or a rental company
// with vehicles.
package catalog

import (
	"context"

	bookingRepo "wanderhub/database/repository/booking"
	catalogRepo "wanderhub/database/repository/catalog"
	providerRepo "wanderhub/database/repository/provider"
	"wanderhub/models"
	"wanderhub/services/errs"
)

// CatalogService exposes catalog management to the HTTP layer.
type CatalogService interface {
	// Taxi
	RegisterTaxi(ctx context.Context, providerID string, in models.TaxiUnit) (*models.TaxiUnit, error)
	TaxiProfile(ctx context.Context, providerID string) (*models.TaxiUnit, error)
	UpdateTaxiProfile(ctx context.Context, providerID string, in TaxiProfileUpdate) (*models.TaxiUnit, error)
	ListTaxis(ctx context.Context) ([]models.TaxiUnit, error)

	// Stay + rooms
	RegisterStay(ctx context.Context, providerID string, in models.Stay) (*models.Stay, error)
	StayProfile(ctx context.Context, providerID string) (*models.Stay, []models.RoomUnit, error)
	UpdateStayProfile(ctx context.Context, providerID string, in StayProfileUpdate) (*models.Stay, error)
	ListStays(ctx context.Context) ([]models.Stay, error)
	AddRoom(ctx context.Context, providerID string, in models.RoomUnit) (*models.RoomUnit, error)
	UpdateRoom(ctx context.Context, providerID, roomID string, in RoomUpdate) (*models.RoomUnit, error)
	DeleteRoom(ctx context.Context, providerID, roomID string) error

	// Guide
	RegisterGuide(ctx context.Context, providerID string, in models.GuideUnit) (*models.GuideUnit, error)
	GuideProfile(ctx context.Context, providerID string) (*models.GuideUnit, error)
	UpdateGuideProfile(ctx context.Context, providerID string, in GuideProfileUpdate) (*models.GuideUnit, error)
	ListGuides(ctx context.Context) ([]models.GuideUnit, error)

	// Rental company + vehicles
	RegisterRental(ctx context.Context, providerID string, in models.RentalCompany) (*models.RentalCompany, error)
	RentalProfile(ctx context.Context, providerID string) (*models.RentalCompany, []models.RentalVehicleUnit, error)
	ListRentalCompanies(ctx context.Context) ([]models.RentalCompany, error)
	AddVehicle(ctx context.Context, providerID string, in models.RentalVehicleUnit) (*models.RentalVehicleUnit, error)
	UpdateVehicle(ctx context.Context, providerID, vehicleID string, in VehicleUpdate) (*models.RentalVehicleUnit, error)
	DeleteVehicle(ctx context.Context, providerID, vehicleID string) error
}

// DefaultCatalogService is the production catalog manager.
type DefaultCatalogService struct {
	Catalog   catalogRepo.CatalogRepository
	Providers providerRepo.ProviderRepository
	Bookings  bookingRepo.BookingRepository
}

// requireService loads the provider and checks it owns a registration of the
// given vertical.
func (s *DefaultCatalogService) requireService(ctx context.Context, providerID string, vertical models.Vertical) (*models.ServiceProvider, error) {
	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("service provider account")
	}
	if provider.Service == nil || provider.Service.Type != vertical {
		return nil, errs.NotFound("service registration")
	}
	return provider, nil
}

// claim links the provider to a freshly generated registration id before the
// unit document is inserted; the conditional write closes the race between two
// concurrent registrations on the same account.
func (s *DefaultCatalogService) claim(ctx context.Context, providerID string, ref models.ServiceRef) error {
	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return err
	}
	if provider == nil {
		return errs.NotFound("service provider account")
	}
	if provider.Service != nil {
		return errs.Validation("can't create multiple services using a single account")
	}
	if err := s.Providers.ClaimService(ctx, providerID, ref); err != nil {
		if err == providerRepo.ErrServiceAlreadyRegistered {
			return errs.Validation("can't create multiple services using a single account")
		}
		return err
	}
	return nil
}
