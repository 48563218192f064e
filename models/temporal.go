package models

// Dates are carried as "YYYY-MM-DD" strings throughout; lexical order equals
// chronological order, so the same comparisons work in Go and in Mongo filters.

// TemporalKey identifies when a booking occupies a unit. The three shapes form
// a closed set; keys of different shapes never meet for the same unit.
type TemporalKey interface {
	// Overlaps reports whether two keys claim the same capacity. Symmetric.
	Overlaps(other TemporalKey) bool
	// UniqueKey returns a stable string naming the occupied slot for
	// equality-based keys, and ok=false for range keys (ranges cannot be
	// guarded by a uniqueness constraint).
	UniqueKey() (key string, ok bool)
}

// DateKey books a unit for a whole calendar day (taxi).
type DateKey struct {
	Date string
}

func (k DateKey) Overlaps(other TemporalKey) bool {
	o, ok := other.(DateKey)
	return ok && o.Date == k.Date
}

func (k DateKey) UniqueKey() (string, bool) {
	return k.Date, true
}

// SlotKey books a unit for a labelled slot on one day (guide). Different slot
// labels on the same date are independent.
type SlotKey struct {
	Date string
	Slot string
}

func (k SlotKey) Overlaps(other TemporalKey) bool {
	o, ok := other.(SlotKey)
	return ok && o.Date == k.Date && o.Slot == k.Slot
}

func (k SlotKey) UniqueKey() (string, bool) {
	return k.Date + "|" + k.Slot, true
}

// RangeKey books a unit for a half-open date range [Start, End) — the End day
// itself is free, so a checkout day can be someone else's check-in day.
type RangeKey struct {
	Start string
	End   string
}

func (k RangeKey) Overlaps(other TemporalKey) bool {
	o, ok := other.(RangeKey)
	return ok && k.Start < o.End && o.Start < k.End
}

func (k RangeKey) UniqueKey() (string, bool) {
	return "", false
}
