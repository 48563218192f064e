package booking

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	bookingRepo "wanderhub/database/repository/booking"
	"wanderhub/models"
	"wanderhub/services/errs"
	"wanderhub/utils"
)

// ChangeStatus lets the provider owning the booked unit drive the booking
// through the state machine. The write is a compare-and-set on the current
// status so a racing user cancellation cannot be silently overwritten.
func (s *DefaultBookingService) ChangeStatus(ctx context.Context, providerID, bookingID string, to models.BookingStatus) (*models.Booking, error) {
	if !to.IsValid() {
		return nil, errs.Validation("invalid booking status %q", to)
	}

	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("service provider account")
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errs.NotFound("booking")
	}
	if provider.Service == nil || provider.Service.ID != b.ServiceID {
		return nil, errs.Authorization("not authorized to update this booking")
	}
	if !models.CanTransition(b.Status, to) {
		return nil, errs.Validation("cannot move booking from %q to %q", b.Status, to)
	}

	var cancelledAt *time.Time
	if to == models.StatusCancelled {
		now := time.Now()
		cancelledAt = &now
	}
	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, b.Status, to, cancelledAt)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStale) {
			return nil, errs.Conflict("booking was updated concurrently, please retry")
		}
		return nil, err
	}

	utils.GetLogger().Info("booking status changed",
		zap.String("bookingID", bookingID),
		zap.String("from", string(b.Status)),
		zap.String("to", string(to)),
		zap.String("by", providerID))
	return updated, nil
}

// CancelByUser cancels the user's own booking. Completed bookings cannot be
// cancelled and re-cancelling is rejected rather than silently accepted.
func (s *DefaultBookingService) CancelByUser(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errs.NotFound("booking")
	}
	if b.UserID != userID {
		return nil, errs.Authorization("not authorized to cancel this booking")
	}
	switch b.Status {
	case models.StatusCompleted:
		return nil, errs.Validation("a completed booking cannot be cancelled")
	case models.StatusCancelled:
		return nil, errs.Validation("booking is already cancelled")
	}

	now := time.Now()
	updated, err := s.Bookings.UpdateStatus(ctx, bookingID, b.Status, models.StatusCancelled, &now)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStale) {
			return nil, errs.Conflict("booking was updated concurrently, please retry")
		}
		return nil, err
	}

	utils.GetLogger().Info("booking cancelled by user",
		zap.String("bookingID", bookingID), zap.String("userID", userID))
	return updated, nil
}

// UserBookings returns the user's booking history grouped by vertical.
func (s *DefaultBookingService) UserBookings(ctx context.Context, userID string) (*models.UserBookings, error) {
	out := &models.UserBookings{}
	targets := []struct {
		vertical models.Vertical
		dest     *[]models.Booking
	}{
		{models.VerticalTaxi, &out.Taxi},
		{models.VerticalStay, &out.Stay},
		{models.VerticalGuide, &out.Guide},
		{models.VerticalRental, &out.Rental},
	}
	for _, t := range targets {
		bookings, err := s.Bookings.ListByUser(ctx, userID, t.vertical)
		if err != nil {
			return nil, err
		}
		*t.dest = bookings
	}
	return out, nil
}

// ServiceBookings returns all bookings referencing the provider's service
// registration, newest first.
func (s *DefaultBookingService) ServiceBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, errs.NotFound("service provider account")
	}
	if provider.Service == nil {
		return nil, errs.Validation("no service registered for this account")
	}
	return s.Bookings.ListByService(ctx, provider.Service.ID)
}
