package bookingRepo

import (
	"context"
	"errors"
	"time"

	"wanderhub/models"
)

// ErrConflict is returned when a create or status write loses to a concurrent
// booking occupying the same capacity.
var ErrConflict = errors.New("booking conflict")

// ErrStale is returned when a compare-and-set status update matched no
// document, meaning the booking changed under the caller.
var ErrStale = errors.New("booking was modified concurrently")

// BookingRepository is the persistence contract for booking records across all
// verticals. Implementations must make CreateIfFree atomic with respect to
// concurrent calls for the same unit.
type BookingRepository interface {
	// CreateIfFree inserts the booking only if no active booking for the same
	// unit overlaps its temporal key. Returns ErrConflict otherwise.
	CreateIfFree(ctx context.Context, b *models.Booking) error
	// ConflictingUnitIDs returns the unit ids of all active bookings in the
	// vertical whose temporal key overlaps the given one.
	ConflictingUnitIDs(ctx context.Context, vertical models.Vertical, key models.TemporalKey) ([]string, error)
	// GetByID fetches a booking or returns nil if absent.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus moves a booking from an expected current status to a new
	// one as a single conditional write. Returns ErrStale if the booking was
	// not in the expected status anymore.
	UpdateStatus(ctx context.Context, id string, from, to models.BookingStatus, cancelledAt *time.Time) (*models.Booking, error)
	// ListByUser returns the user's bookings for one vertical, newest first.
	ListByUser(ctx context.Context, userID string, vertical models.Vertical) ([]models.Booking, error)
	// ListByService returns bookings referencing a service registration.
	ListByService(ctx context.Context, serviceID string) ([]models.Booking, error)
	// HasActiveForUnit reports whether any active booking references the unit.
	HasActiveForUnit(ctx context.Context, unitID string) (bool, error)
}
