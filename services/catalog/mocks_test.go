package catalog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wanderhub/models"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) ConflictingUnitIDs(ctx context.Context, vertical models.Vertical, key models.TemporalKey) ([]string, error) {
	args := m.Called(ctx, vertical, key)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, cancelledAt *time.Time) (*models.Booking, error) {
	args := m.Called(ctx, id, from, to, cancelledAt)
	if v := args.Get(0); v != nil {
		return v.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string, vertical models.Vertical) ([]models.Booking, error) {
	args := m.Called(ctx, userID, vertical)
	if v := args.Get(0); v != nil {
		return v.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByService(ctx context.Context, serviceID string) ([]models.Booking, error) {
	args := m.Called(ctx, serviceID)
	if v := args.Get(0); v != nil {
		return v.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) HasActiveForUnit(ctx context.Context, unitID string) (bool, error) {
	args := m.Called(ctx, unitID)
	return args.Bool(0), args.Error(1)
}

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) Create(ctx context.Context, p *models.ServiceProvider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProviderRepo) GetByID(ctx context.Context, id string) (*models.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceProvider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderRepo) GetByEmail(ctx context.Context, email string) (*models.ServiceProvider, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceProvider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.ServiceProvider, error) {
	args := m.Called(ctx, tokenHash)
	if v := args.Get(0); v != nil {
		return v.(*models.ServiceProvider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProviderRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	args := m.Called(ctx, id, tokenHash)
	return args.Error(0)
}

func (m *mockProviderRepo) ClaimService(ctx context.Context, providerID string, ref models.ServiceRef) error {
	args := m.Called(ctx, providerID, ref)
	return args.Error(0)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) CreateTaxi(ctx context.Context, t *models.TaxiUnit) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockCatalogRepo) GetTaxi(ctx context.Context, id string) (*models.TaxiUnit, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.TaxiUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) UpdateTaxi(ctx context.Context, t *models.TaxiUnit) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockCatalogRepo) ListTaxis(ctx context.Context) ([]models.TaxiUnit, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.TaxiUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) FindTaxis(ctx context.Context, search models.TaxiSearch, excludeIDs []string) ([]models.TaxiUnit, error) {
	args := m.Called(ctx, search, excludeIDs)
	if v := args.Get(0); v != nil {
		return v.([]models.TaxiUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) CreateStay(ctx context.Context, s *models.Stay) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockCatalogRepo) GetStay(ctx context.Context, id string) (*models.Stay, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Stay), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) UpdateStay(ctx context.Context, s *models.Stay) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockCatalogRepo) ListStays(ctx context.Context) ([]models.Stay, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Stay), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) FindStays(ctx context.Context, location string, facilities []string) ([]models.Stay, error) {
	args := m.Called(ctx, location, facilities)
	if v := args.Get(0); v != nil {
		return v.([]models.Stay), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) AddRoom(ctx context.Context, room *models.RoomUnit) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockCatalogRepo) GetRoom(ctx context.Context, id string) (*models.RoomUnit, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.RoomUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) UpdateRoom(ctx context.Context, room *models.RoomUnit) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockCatalogRepo) DeleteRoom(ctx context.Context, stayID, roomID string) error {
	return m.Called(ctx, stayID, roomID).Error(0)
}

func (m *mockCatalogRepo) RoomsByStay(ctx context.Context, stayID string, features []string) ([]models.RoomUnit, error) {
	args := m.Called(ctx, stayID, features)
	if v := args.Get(0); v != nil {
		return v.([]models.RoomUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) CreateGuide(ctx context.Context, g *models.GuideUnit) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockCatalogRepo) GetGuide(ctx context.Context, id string) (*models.GuideUnit, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.GuideUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) UpdateGuide(ctx context.Context, g *models.GuideUnit) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockCatalogRepo) ListGuides(ctx context.Context) ([]models.GuideUnit, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.GuideUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) FindGuides(ctx context.Context, search models.GuideSearch, excludeIDs []string) ([]models.GuideUnit, error) {
	args := m.Called(ctx, search, excludeIDs)
	if v := args.Get(0); v != nil {
		return v.([]models.GuideUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) CreateRentalCompany(ctx context.Context, c *models.RentalCompany) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCatalogRepo) GetRentalCompany(ctx context.Context, id string) (*models.RentalCompany, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.RentalCompany), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) UpdateRentalCompany(ctx context.Context, c *models.RentalCompany) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCatalogRepo) ListRentalCompanies(ctx context.Context) ([]models.RentalCompany, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.RentalCompany), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) AddVehicle(ctx context.Context, v *models.RentalVehicleUnit) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockCatalogRepo) GetVehicle(ctx context.Context, id string) (*models.RentalVehicleUnit, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.RentalVehicleUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) UpdateVehicle(ctx context.Context, v *models.RentalVehicleUnit) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockCatalogRepo) DeleteVehicle(ctx context.Context, companyID, vehicleID string) error {
	return m.Called(ctx, companyID, vehicleID).Error(0)
}

func (m *mockCatalogRepo) FindVehicles(ctx context.Context, search models.RentalSearch, excludeIDs []string) ([]models.RentalVehicleUnit, error) {
	args := m.Called(ctx, search, excludeIDs)
	if v := args.Get(0); v != nil {
		return v.([]models.RentalVehicleUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetCompanyByVehicle(ctx context.Context, vehicleID string) (*models.RentalCompany, error) {
	args := m.Called(ctx, vehicleID)
	if v := args.Get(0); v != nil {
		return v.(*models.RentalCompany), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService() (*DefaultCatalogService, *mockCatalogRepo, *mockProviderRepo, *mockBookingRepo) {
	catalog := &mockCatalogRepo{}
	providers := &mockProviderRepo{}
	bookings := &mockBookingRepo{}
	svc := &DefaultCatalogService{
		Catalog:   catalog,
		Providers: providers,
		Bookings:  bookings,
	}
	return svc, catalog, providers, bookings
}
