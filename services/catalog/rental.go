package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderhub/models"
	"wanderhub/services/errs"
)

// RegisterRental creates the provider's vehicle-rental registration. Vehicles
// are added separately with AddVehicle.
func (s *DefaultCatalogService) RegisterRental(ctx context.Context, providerID string, in models.RentalCompany) (*models.RentalCompany, error) {
	if in.Name == "" || in.NIC == "" {
		return nil, errs.Validation("name and nic are required")
	}

	in.ID = uuid.New().String()
	in.ProviderID = providerID
	in.VehicleIDs = []string{}
	in.CreatedAt = time.Now()

	if err := s.claim(ctx, providerID, models.ServiceRef{Type: models.VerticalRental, ID: in.ID}); err != nil {
		return nil, err
	}
	if err := s.Catalog.CreateRentalCompany(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *DefaultCatalogService) RentalProfile(ctx context.Context, providerID string) (*models.RentalCompany, []models.RentalVehicleUnit, error) {
	provider, err := s.requireService(ctx, providerID, models.VerticalRental)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.Catalog.GetRentalCompany(ctx, provider.Service.ID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, errs.NotFound("rental profile")
	}

	vehicles := make([]models.RentalVehicleUnit, 0, len(company.VehicleIDs))
	for _, id := range company.VehicleIDs {
		v, err := s.Catalog.GetVehicle(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		if v != nil {
			vehicles = append(vehicles, *v)
		}
	}
	return company, vehicles, nil
}

func (s *DefaultCatalogService) ListRentalCompanies(ctx context.Context) ([]models.RentalCompany, error) {
	return s.Catalog.ListRentalCompanies(ctx)
}

// AddVehicle adds a bookable vehicle to the provider's fleet.
func (s *DefaultCatalogService) AddVehicle(ctx context.Context, providerID string, in models.RentalVehicleUnit) (*models.RentalVehicleUnit, error) {
	if in.ChassisNo == "" || in.VehicleNo == "" || in.Province == "" ||
		in.VehicleType == "" || in.Area == "" || in.PerDay <= 0 {
		return nil, errs.Validation("chassisNo, vehicleNo, province, vehicleType, area and a positive perDay rate are required")
	}

	company, _, err := s.RentalProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}

	in.ID = uuid.New().String()
	in.CompanyID = company.ID
	if err := s.Catalog.AddVehicle(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// ownedVehicle checks the vehicle belongs to the provider's company.
func (s *DefaultCatalogService) ownedVehicle(ctx context.Context, providerID, vehicleID string) (*models.RentalVehicleUnit, error) {
	company, _, err := s.RentalProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.Catalog.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil || vehicle.CompanyID != company.ID {
		return nil, errs.Authorization("vehicle does not belong to your rental service")
	}
	return vehicle, nil
}

func (s *DefaultCatalogService) UpdateVehicle(ctx context.Context, providerID, vehicleID string, in VehicleUpdate) (*models.RentalVehicleUnit, error) {
	vehicle, err := s.ownedVehicle(ctx, providerID, vehicleID)
	if err != nil {
		return nil, err
	}

	if in.Images != nil {
		vehicle.Images = in.Images
	}
	if in.Province != "" {
		vehicle.Province = in.Province
	}
	if in.Area != "" {
		vehicle.Area = in.Area
	}
	if in.PerDay != nil {
		vehicle.PerDay = *in.PerDay
	}

	if err := s.Catalog.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle unless an active booking still references it.
func (s *DefaultCatalogService) DeleteVehicle(ctx context.Context, providerID, vehicleID string) error {
	vehicle, err := s.ownedVehicle(ctx, providerID, vehicleID)
	if err != nil {
		return err
	}

	busy, err := s.Bookings.HasActiveForUnit(ctx, vehicle.ID)
	if err != nil {
		return err
	}
	if busy {
		return errs.Conflict("vehicle has active bookings and cannot be deleted")
	}
	return s.Catalog.DeleteVehicle(ctx, vehicle.CompanyID, vehicle.ID)
}
