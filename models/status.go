package models

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusContacted BookingStatus = "contacted" // taxi quote flow
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusContacted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s frees the booked capacity.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// NonTerminalStatuses are the statuses that occupy capacity.
func NonTerminalStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed, StatusContacted}
}

// CanTransition reports whether a booking may move from one status to another.
// Terminal states absorb nothing.
func CanTransition(from, to BookingStatus) bool {
	if !to.IsValid() || from.IsTerminal() {
		return false
	}
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed, StatusContacted:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}
