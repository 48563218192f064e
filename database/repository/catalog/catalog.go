package catalogRepo

import (
	"context"

	"wanderhub/models"
)

// CatalogRepository is the persistence contract for the bookable inventory of
// every vertical: taxis, stays and their rooms, guides, rental companies and
// their vehicles.
type CatalogRepository interface {
	// Taxi
	CreateTaxi(ctx context.Context, t *models.TaxiUnit) error
	GetTaxi(ctx context.Context, id string) (*models.TaxiUnit, error)
	UpdateTaxi(ctx context.Context, t *models.TaxiUnit) error
	ListTaxis(ctx context.Context) ([]models.TaxiUnit, error)
	// FindTaxis applies the search filters and excludes the given unit ids.
	FindTaxis(ctx context.Context, search models.TaxiSearch, excludeIDs []string) ([]models.TaxiUnit, error)

	// Stay + rooms
	CreateStay(ctx context.Context, s *models.Stay) error
	GetStay(ctx context.Context, id string) (*models.Stay, error)
	UpdateStay(ctx context.Context, s *models.Stay) error
	ListStays(ctx context.Context) ([]models.Stay, error)
	FindStays(ctx context.Context, location string, facilities []string) ([]models.Stay, error)
	AddRoom(ctx context.Context, room *models.RoomUnit) error
	GetRoom(ctx context.Context, id string) (*models.RoomUnit, error)
	UpdateRoom(ctx context.Context, room *models.RoomUnit) error
	DeleteRoom(ctx context.Context, stayID, roomID string) error
	RoomsByStay(ctx context.Context, stayID string, features []string) ([]models.RoomUnit, error)

	// Guide
	CreateGuide(ctx context.Context, g *models.GuideUnit) error
	GetGuide(ctx context.Context, id string) (*models.GuideUnit, error)
	UpdateGuide(ctx context.Context, g *models.GuideUnit) error
	ListGuides(ctx context.Context) ([]models.GuideUnit, error)
	FindGuides(ctx context.Context, search models.GuideSearch, excludeIDs []string) ([]models.GuideUnit, error)

	// Rental company + vehicles
	CreateRentalCompany(ctx context.Context, c *models.RentalCompany) error
	GetRentalCompany(ctx context.Context, id string) (*models.RentalCompany, error)
	UpdateRentalCompany(ctx context.Context, c *models.RentalCompany) error
	ListRentalCompanies(ctx context.Context) ([]models.RentalCompany, error)
	AddVehicle(ctx context.Context, v *models.RentalVehicleUnit) error
	GetVehicle(ctx context.Context, id string) (*models.RentalVehicleUnit, error)
	UpdateVehicle(ctx context.Context, v *models.RentalVehicleUnit) error
	DeleteVehicle(ctx context.Context, companyID, vehicleID string) error
	FindVehicles(ctx context.Context, search models.RentalSearch, excludeIDs []string) ([]models.RentalVehicleUnit, error)
	GetCompanyByVehicle(ctx context.Context, vehicleID string) (*models.RentalCompany, error)
}
