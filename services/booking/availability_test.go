package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wanderhub/models"
	"wanderhub/services/errs"
)

func TestFindAvailableTaxisRequiresFilters(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.FindAvailableTaxis(context.Background(), models.TaxiSearch{Date: "2026-09-01"})
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.FindAvailableTaxis(context.Background(), models.TaxiSearch{
		Date: "not-a-date", VehicleType: "sedan", Pickup: "Colombo",
	})
	assert.ErrorAs(t, err, &ve)
}

func TestFindAvailableTaxisExcludesBookedUnits(t *testing.T) {
	svc, bookings, catalog, _, _ := newTestService()
	search := models.TaxiSearch{Date: "2026-09-01", VehicleType: "sedan", Pickup: "Colombo"}

	bookings.On("ConflictingUnitIDs", mock.Anything, models.VerticalTaxi, models.DateKey{Date: "2026-09-01"}).
		Return([]string{"taxi-2"}, nil)
	catalog.On("FindTaxis", mock.Anything, search, []string{"taxi-2"}).
		Return([]models.TaxiUnit{{ID: "taxi-1"}}, nil)

	taxis, err := svc.FindAvailableTaxis(context.Background(), search)
	require.NoError(t, err)
	require.Len(t, taxis, 1)
	assert.Equal(t, "taxi-1", taxis[0].ID)
	bookings.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestFindAvailableGuidesUsesSlotKey(t *testing.T) {
	svc, bookings, catalog, _, _ := newTestService()
	search := models.GuideSearch{Date: "2026-09-01", Slot: "morning", City: "Kandy"}

	bookings.On("ConflictingUnitIDs", mock.Anything, models.VerticalGuide,
		models.SlotKey{Date: "2026-09-01", Slot: "morning"}).
		Return([]string{}, nil)
	catalog.On("FindGuides", mock.Anything, search, []string{}).
		Return([]models.GuideUnit{{ID: "guide-1"}}, nil)

	guides, err := svc.FindAvailableGuides(context.Background(), search)
	require.NoError(t, err)
	assert.Len(t, guides, 1)
}

func TestFindAvailableVehiclesRejectsZeroNightRange(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.FindAvailableVehicles(context.Background(), models.RentalSearch{
		PickupDate: "2026-09-01", ReturnDate: "2026-09-01",
		Area: "Galle", VehicleType: "suv",
	})
	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestFindAvailableStays(t *testing.T) {
	svc, bookings, catalog, _, _ := newTestService()
	search := models.StaySearch{
		Location:      "Ella",
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-12",
		NumberOfGuest: 4,
		NumberOfRooms: 2,
	}
	key := models.RangeKey{Start: "2026-09-10", End: "2026-09-12"}

	catalog.On("FindStays", mock.Anything, "Ella", []string(nil)).Return([]models.Stay{
		{ID: "stay-1"},
		{ID: "stay-2"},
		{ID: "stay-3"},
	}, nil)
	bookings.On("ConflictingUnitIDs", mock.Anything, models.VerticalStay, key).
		Return([]string{"room-12"}, nil)

	// stay-1: three free rooms after room-12 drops out; capacity 3+2 covers 4.
	catalog.On("RoomsByStay", mock.Anything, "stay-1", []string(nil)).Return([]models.RoomUnit{
		{ID: "room-10", StayID: "stay-1", Price: 90, MaxGuest: 2},
		{ID: "room-11", StayID: "stay-1", Price: 150, MaxGuest: 3},
		{ID: "room-12", StayID: "stay-1", Price: 60, MaxGuest: 4},
		{ID: "room-13", StayID: "stay-1", Price: 120, MaxGuest: 1},
	}, nil)
	// stay-2: only one free room, fewer than requested.
	catalog.On("RoomsByStay", mock.Anything, "stay-2", []string(nil)).Return([]models.RoomUnit{
		{ID: "room-20", StayID: "stay-2", Price: 200, MaxGuest: 2},
	}, nil)
	// stay-3: two rooms but combined capacity 2 cannot host 4 guests.
	catalog.On("RoomsByStay", mock.Anything, "stay-3", []string(nil)).Return([]models.RoomUnit{
		{ID: "room-30", StayID: "stay-3", Price: 40, MaxGuest: 1},
		{ID: "room-31", StayID: "stay-3", Price: 45, MaxGuest: 1},
	}, nil)

	results, err := svc.FindAvailableStays(context.Background(), search)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "stay-1", got.Stay.ID)
	assert.Equal(t, 3, got.TotalAvailableRooms)
	require.Len(t, got.SelectedRooms, 2)
	assert.Equal(t, "room-11", got.SelectedRooms[0].ID, "largest room picked first")
	assert.Equal(t, "room-10", got.SelectedRooms[1].ID)
	assert.Equal(t, 90.0, got.StartingFrom, "cheapest of all free rooms, not just the selected")
}

func TestFindAvailableStaysPriceBand(t *testing.T) {
	svc, bookings, catalog, _, _ := newTestService()
	min, max := 80.0, 160.0
	search := models.StaySearch{
		Location:  "Ella",
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		MinPrice:  &min,
		MaxPrice:  &max,
	}

	catalog.On("FindStays", mock.Anything, "Ella", []string(nil)).
		Return([]models.Stay{{ID: "stay-1"}}, nil)
	bookings.On("ConflictingUnitIDs", mock.Anything, models.VerticalStay, mock.Anything).
		Return([]string{}, nil)
	catalog.On("RoomsByStay", mock.Anything, "stay-1", []string(nil)).Return([]models.RoomUnit{
		{ID: "room-cheap", Price: 50, MaxGuest: 2},
		{ID: "room-mid", Price: 100, MaxGuest: 2},
		{ID: "room-steep", Price: 300, MaxGuest: 2},
	}, nil)

	results, err := svc.FindAvailableStays(context.Background(), search)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].AvailableRooms, 1)
	assert.Equal(t, "room-mid", results[0].AvailableRooms[0].ID)
}
