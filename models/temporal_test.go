package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyOverlaps(t *testing.T) {
	a := DateKey{Date: "2026-09-01"}
	b := DateKey{Date: "2026-09-01"}
	c := DateKey{Date: "2026-09-02"}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestSlotKeyOverlaps(t *testing.T) {
	morning := SlotKey{Date: "2026-09-01", Slot: "morning"}
	evening := SlotKey{Date: "2026-09-01", Slot: "evening"}
	nextDay := SlotKey{Date: "2026-09-02", Slot: "morning"}

	assert.True(t, morning.Overlaps(SlotKey{Date: "2026-09-01", Slot: "morning"}))
	assert.False(t, morning.Overlaps(evening), "different slots on the same day are independent")
	assert.False(t, morning.Overlaps(nextDay))
}

func TestRangeKeyOverlaps(t *testing.T) {
	base := RangeKey{Start: "2026-09-10", End: "2026-09-15"}

	cases := []struct {
		name    string
		other   RangeKey
		overlap bool
	}{
		{"identical", RangeKey{Start: "2026-09-10", End: "2026-09-15"}, true},
		{"contained", RangeKey{Start: "2026-09-11", End: "2026-09-12"}, true},
		{"straddles start", RangeKey{Start: "2026-09-08", End: "2026-09-11"}, true},
		{"straddles end", RangeKey{Start: "2026-09-14", End: "2026-09-20"}, true},
		{"checkout day is someone else's check-in", RangeKey{Start: "2026-09-15", End: "2026-09-18"}, false},
		{"ends on check-in day", RangeKey{Start: "2026-09-05", End: "2026-09-10"}, false},
		{"disjoint", RangeKey{Start: "2026-10-01", End: "2026-10-05"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlap, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlap, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestKeysOfDifferentShapesNeverOverlap(t *testing.T) {
	date := DateKey{Date: "2026-09-01"}
	slot := SlotKey{Date: "2026-09-01", Slot: "morning"}
	rng := RangeKey{Start: "2026-09-01", End: "2026-09-02"}

	assert.False(t, date.Overlaps(slot))
	assert.False(t, slot.Overlaps(rng))
	assert.False(t, rng.Overlaps(date))
}

func TestUniqueKey(t *testing.T) {
	key, ok := DateKey{Date: "2026-09-01"}.UniqueKey()
	assert.True(t, ok)
	assert.Equal(t, "2026-09-01", key)

	key, ok = SlotKey{Date: "2026-09-01", Slot: "morning"}.UniqueKey()
	assert.True(t, ok)
	assert.Equal(t, "2026-09-01|morning", key)

	_, ok = RangeKey{Start: "2026-09-01", End: "2026-09-05"}.UniqueKey()
	assert.False(t, ok, "range keys cannot be guarded by a uniqueness constraint")
}

func TestBookingNormalize(t *testing.T) {
	b := &Booking{
		Vertical: VerticalGuide,
		UnitID:   "guide-1",
		Date:     "2026-09-01",
		Slot:     "morning",
		Status:   StatusPending,
	}
	b.Normalize()
	assert.True(t, b.Active)
	assert.Equal(t, "guide-1|2026-09-01|morning", b.SlotUniq)

	b.Status = StatusCancelled
	b.Normalize()
	assert.False(t, b.Active)
	assert.Empty(t, b.SlotUniq, "terminal bookings release the uniqueness guard")

	rental := &Booking{
		Vertical:  VerticalRental,
		UnitID:    "vehicle-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Status:    StatusPending,
	}
	rental.Normalize()
	assert.True(t, rental.Active)
	assert.Empty(t, rental.SlotUniq)
}
