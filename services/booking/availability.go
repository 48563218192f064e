package booking

import (
	"context"
	"sort"
	"time"

	"wanderhub/models"
	"wanderhub/services/errs"
	"wanderhub/utils"

	"go.uber.org/zap"
)

// parseDate validates a "YYYY-MM-DD" date string.
func parseDate(s string) error {
	_, err := time.Parse("2006-01-02", s)
	return err
}

// validateRange checks both dates parse and start precedes end (half-open
// ranges of zero nights are rejected).
func validateRange(start, end string) error {
	if err := parseDate(start); err != nil {
		return errs.Validation("invalid start date %q", start)
	}
	if err := parseDate(end); err != nil {
		return errs.Validation("invalid end date %q", end)
	}
	if start >= end {
		return errs.Validation("return/checkout date must be after the start date")
	}
	return nil
}

// FindAvailableTaxis returns taxis matching the filters that have no active
// booking on the requested date.
func (s *DefaultBookingService) FindAvailableTaxis(ctx context.Context, search models.TaxiSearch) ([]models.TaxiUnit, error) {
	if search.Date == "" || search.VehicleType == "" || search.Pickup == "" {
		return nil, errs.Validation("please provide date, vehicleType and pickup location")
	}
	if err := parseDate(search.Date); err != nil {
		return nil, errs.Validation("invalid date %q", search.Date)
	}

	booked, err := s.Bookings.ConflictingUnitIDs(ctx, models.VerticalTaxi, models.DateKey{Date: search.Date})
	if err != nil {
		return nil, err
	}
	return s.Catalog.FindTaxis(ctx, search, booked)
}

// FindAvailableGuides returns guides matching the filters that have no active
// booking for the requested date and slot.
func (s *DefaultBookingService) FindAvailableGuides(ctx context.Context, search models.GuideSearch) ([]models.GuideUnit, error) {
	if search.Date == "" || search.Slot == "" || search.City == "" {
		return nil, errs.Validation("please provide date, slot and city to check availability")
	}
	if err := parseDate(search.Date); err != nil {
		return nil, errs.Validation("invalid date %q", search.Date)
	}

	booked, err := s.Bookings.ConflictingUnitIDs(ctx, models.VerticalGuide, models.SlotKey{Date: search.Date, Slot: search.Slot})
	if err != nil {
		return nil, err
	}
	return s.Catalog.FindGuides(ctx, search, booked)
}

// FindAvailableVehicles returns rental vehicles matching the filters that have
// no active booking overlapping the requested range.
func (s *DefaultBookingService) FindAvailableVehicles(ctx context.Context, search models.RentalSearch) ([]models.RentalVehicleUnit, error) {
	if search.PickupDate == "" || search.ReturnDate == "" || search.Area == "" || search.VehicleType == "" {
		return nil, errs.Validation("please provide pickup date, return date, area and vehicle type")
	}
	if err := validateRange(search.PickupDate, search.ReturnDate); err != nil {
		return nil, err
	}

	key := models.RangeKey{Start: search.PickupDate, End: search.ReturnDate}
	booked, err := s.Bookings.ConflictingUnitIDs(ctx, models.VerticalRental, key)
	if err != nil {
		return nil, err
	}
	return s.Catalog.FindVehicles(ctx, search, booked)
}

// FindAvailableStays evaluates room-level availability per stay. A stay
// qualifies only if it still has at least NumberOfRooms free rooms whose
// combined capacity (taking the largest rooms first) covers NumberOfGuest.
// StartingFrom is the cheapest of all free rooms, not just the selected ones.
func (s *DefaultBookingService) FindAvailableStays(ctx context.Context, search models.StaySearch) ([]models.StayAvailability, error) {
	if search.Location == "" {
		return nil, errs.Validation("please provide location")
	}
	if search.StartDate == "" || search.EndDate == "" {
		return nil, errs.Validation("please provide startDate and endDate")
	}
	if err := validateRange(search.StartDate, search.EndDate); err != nil {
		return nil, err
	}

	guestCount := search.NumberOfGuest
	if guestCount < 1 {
		guestCount = 1
	}
	roomCount := search.NumberOfRooms
	if roomCount < 1 {
		roomCount = 1
	}

	stays, err := s.Catalog.FindStays(ctx, search.Location, search.Facilities)
	if err != nil {
		return nil, err
	}

	key := models.RangeKey{Start: search.StartDate, End: search.EndDate}
	bookedRoomIDs, err := s.Bookings.ConflictingUnitIDs(ctx, models.VerticalStay, key)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(bookedRoomIDs))
	for _, id := range bookedRoomIDs {
		booked[id] = true
	}

	results := make([]models.StayAvailability, 0, len(stays))
	for _, stay := range stays {
		rooms, err := s.Catalog.RoomsByStay(ctx, stay.ID, search.RoomFeatures)
		if err != nil {
			utils.GetLogger().Error("failed to load rooms for stay",
				zap.String("stayID", stay.ID), zap.Error(err))
			continue
		}

		available := make([]models.RoomUnit, 0, len(rooms))
		for _, room := range rooms {
			if booked[room.ID] {
				continue
			}
			if search.MinPrice != nil && room.Price < *search.MinPrice {
				continue
			}
			if search.MaxPrice != nil && room.Price > *search.MaxPrice {
				continue
			}
			available = append(available, room)
		}
		if len(available) < roomCount {
			continue
		}

		// Largest rooms first so the fewest rooms cover the guest count.
		sort.Slice(available, func(i, j int) bool {
			return available[i].MaxGuest > available[j].MaxGuest
		})
		selected := available[:roomCount]
		capacity := 0
		for _, room := range selected {
			capacity += room.MaxGuest
		}
		if capacity < guestCount {
			continue
		}

		startingFrom := available[0].Price
		for _, room := range available[1:] {
			if room.Price < startingFrom {
				startingFrom = room.Price
			}
		}

		results = append(results, models.StayAvailability{
			Stay:                stay,
			AvailableRooms:      available,
			SelectedRooms:       selected,
			TotalAvailableRooms: len(available),
			StartingFrom:        startingFrom,
		})
	}
	return results, nil
}
