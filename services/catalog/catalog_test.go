package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	providerRepo "wanderhub/database/repository/provider"
	"wanderhub/models"
	"wanderhub/services/errs"
)

func freshProvider() *models.ServiceProvider {
	return &models.ServiceProvider{ID: "provider-1"}
}

func validTaxi() models.TaxiUnit {
	return models.TaxiUnit{
		DriverName: "Nimal", NIC: "901234567V", DrivingID: "B1234567",
		ChassisNo: "CH-001", VehicleNo: "WP-1234", VehicleType: "sedan",
		City: "Colombo", PerKm: 120,
	}
}

func TestRegisterTaxiClaimsBeforeInsert(t *testing.T) {
	svc, catalog, providers, _ := newTestService()

	providers.On("GetByID", mock.Anything, "provider-1").Return(freshProvider(), nil)

	var claimed models.ServiceRef
	providers.On("ClaimService", mock.Anything, "provider-1", mock.AnythingOfType("models.ServiceRef")).
		Run(func(args mock.Arguments) { claimed = args.Get(2).(models.ServiceRef) }).
		Return(nil)
	catalog.On("CreateTaxi", mock.Anything, mock.AnythingOfType("*models.TaxiUnit")).Return(nil)

	taxi, err := svc.RegisterTaxi(context.Background(), "provider-1", validTaxi())
	require.NoError(t, err)
	assert.Equal(t, models.VerticalTaxi, claimed.Type)
	assert.Equal(t, taxi.ID, claimed.ID, "the claimed registration id is the taxi id")
	assert.Equal(t, "provider-1", taxi.ProviderID)
}

func TestRegisterTaxiSecondServiceRejected(t *testing.T) {
	svc, catalog, providers, _ := newTestService()

	registered := &models.ServiceProvider{
		ID:      "provider-1",
		Service: &models.ServiceRef{Type: models.VerticalStay, ID: "stay-1"},
	}
	providers.On("GetByID", mock.Anything, "provider-1").Return(registered, nil)

	_, err := svc.RegisterTaxi(context.Background(), "provider-1", validTaxi())
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "single account")
	catalog.AssertNotCalled(t, "CreateTaxi", mock.Anything, mock.Anything)
}

func TestRegisterTaxiLostClaimRace(t *testing.T) {
	svc, catalog, providers, _ := newTestService()

	providers.On("GetByID", mock.Anything, "provider-1").Return(freshProvider(), nil)
	providers.On("ClaimService", mock.Anything, "provider-1", mock.Anything).
		Return(providerRepo.ErrServiceAlreadyRegistered)

	_, err := svc.RegisterTaxi(context.Background(), "provider-1", validTaxi())
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
	catalog.AssertNotCalled(t, "CreateTaxi", mock.Anything, mock.Anything)
}

func TestRegisterTaxiMissingFields(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := validTaxi()
	in.PerKm = 0
	_, err := svc.RegisterTaxi(context.Background(), "provider-1", in)
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func stayProviderAndRooms(catalog *mockCatalogRepo, providers *mockProviderRepo) {
	providers.On("GetByID", mock.Anything, "provider-1").Return(&models.ServiceProvider{
		ID:      "provider-1",
		Service: &models.ServiceRef{Type: models.VerticalStay, ID: "stay-1"},
	}, nil)
	catalog.On("GetStay", mock.Anything, "stay-1").Return(&models.Stay{
		ID: "stay-1", ProviderID: "provider-1", RoomIDs: []string{"room-1"},
	}, nil)
	catalog.On("RoomsByStay", mock.Anything, "stay-1", []string(nil)).
		Return([]models.RoomUnit{{ID: "room-1", StayID: "stay-1"}}, nil)
}

func TestDeleteRoomBlockedWhileActivelyBooked(t *testing.T) {
	svc, catalog, providers, bookings := newTestService()
	stayProviderAndRooms(catalog, providers)

	catalog.On("GetRoom", mock.Anything, "room-1").
		Return(&models.RoomUnit{ID: "room-1", StayID: "stay-1"}, nil)
	bookings.On("HasActiveForUnit", mock.Anything, "room-1").Return(true, nil)

	err := svc.DeleteRoom(context.Background(), "provider-1", "room-1")
	var ce *errs.ConflictError
	assert.ErrorAs(t, err, &ce)
	catalog.AssertNotCalled(t, "DeleteRoom", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteRoomSucceedsWhenFree(t *testing.T) {
	svc, catalog, providers, bookings := newTestService()
	stayProviderAndRooms(catalog, providers)

	catalog.On("GetRoom", mock.Anything, "room-1").
		Return(&models.RoomUnit{ID: "room-1", StayID: "stay-1"}, nil)
	bookings.On("HasActiveForUnit", mock.Anything, "room-1").Return(false, nil)
	catalog.On("DeleteRoom", mock.Anything, "stay-1", "room-1").Return(nil)

	err := svc.DeleteRoom(context.Background(), "provider-1", "room-1")
	require.NoError(t, err)
	catalog.AssertExpectations(t)
}

func TestUpdateRoomRejectsForeignRoom(t *testing.T) {
	svc, catalog, providers, _ := newTestService()
	stayProviderAndRooms(catalog, providers)

	catalog.On("GetRoom", mock.Anything, "room-9").
		Return(&models.RoomUnit{ID: "room-9", StayID: "stay-other"}, nil)

	_, err := svc.UpdateRoom(context.Background(), "provider-1", "room-9", RoomUpdate{})
	var ae *errs.AuthorizationError
	assert.ErrorAs(t, err, &ae)
}

func TestTaxiProfileRequiresMatchingVertical(t *testing.T) {
	svc, _, providers, _ := newTestService()

	providers.On("GetByID", mock.Anything, "provider-1").Return(&models.ServiceProvider{
		ID:      "provider-1",
		Service: &models.ServiceRef{Type: models.VerticalGuide, ID: "guide-1"},
	}, nil)

	_, err := svc.TaxiProfile(context.Background(), "provider-1")
	var nf *errs.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestAddVehicleLinksCompany(t *testing.T) {
	svc, catalog, providers, _ := newTestService()

	providers.On("GetByID", mock.Anything, "provider-1").Return(&models.ServiceProvider{
		ID:      "provider-1",
		Service: &models.ServiceRef{Type: models.VerticalRental, ID: "company-1"},
	}, nil)
	catalog.On("GetRentalCompany", mock.Anything, "company-1").
		Return(&models.RentalCompany{ID: "company-1", ProviderID: "provider-1"}, nil)

	var added *models.RentalVehicleUnit
	catalog.On("AddVehicle", mock.Anything, mock.AnythingOfType("*models.RentalVehicleUnit")).
		Run(func(args mock.Arguments) { added = args.Get(1).(*models.RentalVehicleUnit) }).
		Return(nil)

	_, err := svc.AddVehicle(context.Background(), "provider-1", models.RentalVehicleUnit{
		ChassisNo: "CH-100", VehicleNo: "SP-2222", Province: "Southern",
		VehicleType: "suv", Area: "Galle", PerDay: 9000,
	})
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, "company-1", added.CompanyID)
	assert.NotEmpty(t, added.ID)
}

func TestDeleteVehicleBlockedWhileActivelyBooked(t *testing.T) {
	svc, catalog, providers, bookings := newTestService()

	providers.On("GetByID", mock.Anything, "provider-1").Return(&models.ServiceProvider{
		ID:      "provider-1",
		Service: &models.ServiceRef{Type: models.VerticalRental, ID: "company-1"},
	}, nil)
	catalog.On("GetRentalCompany", mock.Anything, "company-1").
		Return(&models.RentalCompany{ID: "company-1", VehicleIDs: []string{"vehicle-1"}}, nil)
	catalog.On("GetVehicle", mock.Anything, "vehicle-1").
		Return(&models.RentalVehicleUnit{ID: "vehicle-1", CompanyID: "company-1"}, nil)
	bookings.On("HasActiveForUnit", mock.Anything, "vehicle-1").Return(true, nil)

	err := svc.DeleteVehicle(context.Background(), "provider-1", "vehicle-1")
	var ce *errs.ConflictError
	assert.ErrorAs(t, err, &ce)
	catalog.AssertNotCalled(t, "DeleteVehicle", mock.Anything, mock.Anything, mock.Anything)
}
