package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wanderhub/models"
	"wanderhub/services/errs"
)

// RegisterTaxi creates the provider's taxi registration. A provider may own
// exactly one service registration.
func (s *DefaultCatalogService) RegisterTaxi(ctx context.Context, providerID string, in models.TaxiUnit) (*models.TaxiUnit, error) {
	if in.DriverName == "" || in.NIC == "" || in.DrivingID == "" || in.ChassisNo == "" ||
		in.VehicleNo == "" || in.VehicleType == "" || in.City == "" || in.PerKm <= 0 {
		return nil, errs.Validation("driverName, nic, drivingId, chassisNo, vehicleNo, vehicleType, city and a positive perKm rate are required")
	}

	in.ID = uuid.New().String()
	in.ProviderID = providerID
	in.CreatedAt = time.Now()

	if err := s.claim(ctx, providerID, models.ServiceRef{Type: models.VerticalTaxi, ID: in.ID}); err != nil {
		return nil, err
	}
	if err := s.Catalog.CreateTaxi(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *DefaultCatalogService) TaxiProfile(ctx context.Context, providerID string) (*models.TaxiUnit, error) {
	provider, err := s.requireService(ctx, providerID, models.VerticalTaxi)
	if err != nil {
		return nil, err
	}
	taxi, err := s.Catalog.GetTaxi(ctx, provider.Service.ID)
	if err != nil {
		return nil, err
	}
	if taxi == nil {
		return nil, errs.NotFound("taxi profile")
	}
	return taxi, nil
}

func (s *DefaultCatalogService) UpdateTaxiProfile(ctx context.Context, providerID string, in TaxiProfileUpdate) (*models.TaxiUnit, error) {
	taxi, err := s.TaxiProfile(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if in.DriverName != "" {
		taxi.DriverName = in.DriverName
	}
	if in.Contact != nil {
		taxi.Contact = in.Contact
	}
	if in.Website != "" {
		taxi.Website = in.Website
	}
	if in.ProfilePic != "" {
		taxi.ProfilePic = in.ProfilePic
	}
	if in.City != "" {
		taxi.City = in.City
	}

	if err := s.Catalog.UpdateTaxi(ctx, taxi); err != nil {
		return nil, err
	}
	return taxi, nil
}

func (s *DefaultCatalogService) ListTaxis(ctx context.Context) ([]models.TaxiUnit, error) {
	return s.Catalog.ListTaxis(ctx)
}
