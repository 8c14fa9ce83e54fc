package model

import "time"

// TimeSlot is one concrete (start, end, location) option for a session.
// Start must precede End; slots are never mutated after construction.
type TimeSlot struct {
	Start    time.Time
	End      time.Time
	Location Location
}

// ConflictsWith reports whether attending both slots is impossible once the
// travel buffer is applied. The buffer is travelMinutes when the locations
// differ and zero otherwise, so back-to-back slots at the same location never
// conflict. The predicate is symmetric.
func (slot TimeSlot) ConflictsWith(other TimeSlot, travelMinutes int) bool {
	var buffer time.Duration
	if !slot.Location.Equal(other.Location) {
		buffer = time.Duration(travelMinutes) * time.Minute
	}

	return slot.End.Add(buffer).After(other.Start) && other.End.Add(buffer).After(slot.Start)
}
