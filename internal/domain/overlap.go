package domain

import "github.com/m04kA/SMC-SalonService/pkg/types"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not conflict.
//
// The same predicate runs at slot-generation time and inside the booking
// transaction; the advisory availability read and the authoritative
// commit-time re-check therefore agree on what counts as a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeOfDay) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// OverlapsInterval reports whether the appointment's interval intersects
// [start, end). Cancelled appointments never overlap anything.
func (a *Appointment) OverlapsInterval(start, end types.TimeOfDay) bool {
	if !a.IsActive() {
		return false
	}
	return Overlaps(start, end, a.StartTime, a.EndTime)
}
