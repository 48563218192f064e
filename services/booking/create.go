package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "wanderhub/database/repository/booking"
	"wanderhub/models"
	"wanderhub/services/errs"
	"wanderhub/utils"
)

// persist runs the atomic conflict-check-and-insert and maps a lost race to a
// ConflictError with the vertical's message. The availability list the client
// saw earlier is only a hint; this is the authoritative check.
func (s *DefaultBookingService) persist(ctx context.Context, b *models.Booking, conflictMsg string) (*models.Booking, error) {
	if err := s.Bookings.CreateIfFree(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrConflict) {
			return nil, errs.Conflict(conflictMsg)
		}
		return nil, err
	}
	utils.GetLogger().Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("vertical", string(b.Vertical)),
		zap.String("unitID", b.UnitID))
	return b, nil
}

// CreateTaxiBooking resolves the trip distance, derives the fare and books the
// taxi for the requested date. A quote request starts in the contacted state
// instead of pending.
func (s *DefaultBookingService) CreateTaxiBooking(ctx context.Context, userID string, in models.TaxiBookingInput) (*models.Booking, error) {
	if in.TaxiID == "" || in.Pickup == "" || in.Dropoff == "" || in.Date == "" {
		return nil, errs.Validation("taxiId, pickup, dropoff and date are required")
	}
	if err := parseDate(in.Date); err != nil {
		return nil, errs.Validation("invalid date %q", in.Date)
	}

	taxi, err := s.Catalog.GetTaxi(ctx, in.TaxiID)
	if err != nil {
		return nil, err
	}
	if taxi == nil {
		return nil, errs.NotFound("taxi")
	}

	distanceKm, err := s.Distance.ResolveDistanceKm(ctx, in.Pickup, in.Dropoff)
	if err != nil {
		utils.GetLogger().Warn("distance resolution failed",
			zap.String("pickup", in.Pickup), zap.String("dropoff", in.Dropoff), zap.Error(err))
		return nil, errs.Upstream("please check your pickup & dropoff location names")
	}

	amount := float64(distanceKm) * taxi.PerKm
	status := models.StatusPending
	if in.QuoteRequest {
		status = models.StatusContacted
	}
	b := &models.Booking{
		ID:         uuid.New().String(),
		Vertical:   models.VerticalTaxi,
		UnitID:     taxi.ID,
		ServiceID:  taxi.ID,
		UserID:     userID,
		Date:       in.Date,
		Pickup:     in.Pickup,
		Dropoff:    in.Dropoff,
		TimeLabel:  in.TimeLabel,
		DistanceKm: distanceKm,
		Amount:     &amount,
		Status:     status,
		CreatedAt:  time.Now(),
	}
	return s.persist(ctx, b, "taxi is already booked for this date")
}

// CreateStayBooking books one room of a stay for a half-open date range.
func (s *DefaultBookingService) CreateStayBooking(ctx context.Context, userID string, in models.StayBookingInput) (*models.Booking, error) {
	if in.StayID == "" || in.RoomID == "" || in.StartDate == "" || in.EndDate == "" {
		return nil, errs.Validation("stayId, roomId, startDate and endDate are required")
	}
	if err := validateRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	stay, err := s.Catalog.GetStay(ctx, in.StayID)
	if err != nil {
		return nil, err
	}
	if stay == nil {
		return nil, errs.NotFound("stay")
	}
	owned := false
	for _, id := range stay.RoomIDs {
		if id == in.RoomID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, errs.Validation("room does not belong to this stay")
	}

	b := &models.Booking{
		ID:        uuid.New().String(),
		Vertical:  models.VerticalStay,
		UnitID:    in.RoomID,
		ServiceID: stay.ID,
		UserID:    userID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	return s.persist(ctx, b, "room is already booked for these dates")
}

// CreateGuideBooking books a guide for a date and time-slot label.
func (s *DefaultBookingService) CreateGuideBooking(ctx context.Context, userID string, in models.GuideBookingInput) (*models.Booking, error) {
	if in.GuideID == "" || in.Date == "" || in.Slot == "" {
		return nil, errs.Validation("guideId, date and slot are required")
	}
	if err := parseDate(in.Date); err != nil {
		return nil, errs.Validation("invalid date %q", in.Date)
	}

	guide, err := s.Catalog.GetGuide(ctx, in.GuideID)
	if err != nil {
		return nil, err
	}
	if guide == nil {
		return nil, errs.NotFound("guide")
	}

	b := &models.Booking{
		ID:        uuid.New().String(),
		Vertical:  models.VerticalGuide,
		UnitID:    guide.ID,
		ServiceID: guide.ID,
		UserID:    userID,
		Date:      in.Date,
		Slot:      in.Slot,
		Requests:  in.Requests,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	return s.persist(ctx, b, "this guide is already booked for the selected slot, please choose another")
}

// CreateRentalBooking books a rental vehicle for a half-open date range.
func (s *DefaultBookingService) CreateRentalBooking(ctx context.Context, userID string, in models.RentalBookingInput) (*models.Booking, error) {
	if in.VehicleID == "" || in.PickupDate == "" || in.ReturnDate == "" || in.Area == "" {
		return nil, errs.Validation("vehicleId, pickupDate, returnDate and area are required")
	}
	if err := validateRange(in.PickupDate, in.ReturnDate); err != nil {
		return nil, err
	}

	vehicle, err := s.Catalog.GetVehicle(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, errs.NotFound("vehicle")
	}
	company, err := s.Catalog.GetCompanyByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errs.NotFound("rental company")
	}

	b := &models.Booking{
		ID:        uuid.New().String(),
		Vertical:  models.VerticalRental,
		UnitID:    vehicle.ID,
		ServiceID: company.ID,
		UserID:    userID,
		StartDate: in.PickupDate,
		EndDate:   in.ReturnDate,
		Area:      in.Area,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	return s.persist(ctx, b, "vehicle is not available for the selected dates")
}
