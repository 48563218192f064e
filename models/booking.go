package models

import "time"

// Vertical names a service family.
type Vertical string

const (
	VerticalTaxi   Vertical = "taxi"
	VerticalStay   Vertical = "stay"
	VerticalGuide  Vertical = "guide"
	VerticalRental Vertical = "rental"
)

func (v Vertical) IsValid() bool {
	switch v {
	case VerticalTaxi, VerticalStay, VerticalGuide, VerticalRental:
		return true
	}
	return false
}

// Booking is a single booking record. All verticals share one collection; the
// Vertical field discriminates which temporal fields are meaningful.
type Booking struct {
	ID       string   `bson:"id" json:"id"`
	Vertical Vertical `bson:"vertical" json:"vertical"`
	// UnitID is the bookable unit the conflict rule applies to: a taxi, a
	// room, a guide or a rental vehicle.
	UnitID string `bson:"unit_id" json:"unitId"`
	// ServiceID is the owning service registration (equals UnitID except for
	// stay bookings, where it is the stay, and rental bookings, where it is
	// the rental company).
	ServiceID string `bson:"service_id" json:"serviceId"`
	UserID    string `bson:"user_id" json:"userId"`

	// Temporal fields. Equality verticals use Date (+ Slot for guides);
	// range verticals use StartDate/EndDate as a half-open interval.
	Date      string `bson:"date,omitempty" json:"date,omitempty"`
	Slot      string `bson:"slot,omitempty" json:"slot,omitempty"`
	StartDate string `bson:"start_date,omitempty" json:"startDate,omitempty"`
	EndDate   string `bson:"end_date,omitempty" json:"endDate,omitempty"`

	// Taxi fields.
	Pickup     string `bson:"pickup,omitempty" json:"pickup,omitempty"`
	Dropoff    string `bson:"dropoff,omitempty" json:"dropoff,omitempty"`
	TimeLabel  string `bson:"time_label,omitempty" json:"timeLabel,omitempty"`
	DistanceKm int    `bson:"distance_km,omitempty" json:"distanceKm,omitempty"`

	// Guide fields.
	Requests string `bson:"requests,omitempty" json:"requests,omitempty"`

	// Rental fields.
	Area string `bson:"area,omitempty" json:"area,omitempty"`

	// Amount is nil until derived (taxi fare at creation time, other
	// verticals when the provider quotes).
	Amount *float64 `bson:"amount,omitempty" json:"amount,omitempty"`

	Status BookingStatus `bson:"status" json:"status"`
	// Active mirrors !Status.IsTerminal() so the partial unique index and the
	// overlap queries can filter on a single field.
	Active bool `bson:"active" json:"-"`
	// SlotUniq is "<unitID>|<UniqueKey>" for equality verticals, guarded by a
	// partial unique index while Active. Empty for range verticals.
	SlotUniq string `bson:"slot_uniq,omitempty" json:"-"`

	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	CancelledAt *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
}

// TemporalKey returns the booking's occupancy key per its vertical.
func (b *Booking) TemporalKey() TemporalKey {
	switch b.Vertical {
	case VerticalTaxi:
		return DateKey{Date: b.Date}
	case VerticalGuide:
		return SlotKey{Date: b.Date, Slot: b.Slot}
	default:
		return RangeKey{Start: b.StartDate, End: b.EndDate}
	}
}

// Normalize fills the derived Active and SlotUniq fields from Status, UnitID
// and the temporal key. Must be called before persisting.
func (b *Booking) Normalize() {
	b.Active = !b.Status.IsTerminal()
	if key, ok := b.TemporalKey().UniqueKey(); ok && b.Active {
		b.SlotUniq = b.UnitID + "|" + key
	} else {
		b.SlotUniq = ""
	}
}
