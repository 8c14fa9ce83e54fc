package model

import (
	"slices"

	"github.com/samber/lo"
)

// Entry is an accepted (session, time slot) pair within a schedule.
type Entry struct {
	Request SessionRequest
	Slot    TimeSlot
}

// Schedule is an ordered sequence of accepted entries, at most one per
// distinct session. Solvers build it incrementally through AddEntry and
// RemoveLastEntry; a returned schedule must hold the no-conflict invariant.
type Schedule struct {
	entries []Entry
}

func NewSchedule() *Schedule {
	return &Schedule{}
}

func (schedule *Schedule) AddEntry(request SessionRequest, slot TimeSlot) {
	schedule.entries = append(schedule.entries, Entry{Request: request, Slot: slot})
}

// RemoveLastEntry pops the most recent addition. Backtracking search only
// ever appends before recursing and undoes immediately after, so an O(1)
// pop is all the undo step needs.
func (schedule *Schedule) RemoveLastEntry() {
	schedule.entries = schedule.entries[:len(schedule.entries)-1]
}

// HasConflict reports whether the candidate slot conflicts, under the correct
// pairwise travel time, with any already-accepted slot.
func (schedule *Schedule) HasConflict(slot TimeSlot, travelTimes TravelTimes) bool {
	return lo.SomeBy(schedule.entries, func(entry Entry) bool {
		travelMinutes := travelTimes.Between(entry.Slot.Location, slot.Location)
		return entry.Slot.ConflictsWith(slot, travelMinutes)
	})
}

func (schedule *Schedule) CountByPriority() map[Priority]int {
	counts := map[Priority]int{MustAttend: 0, Optional: 0}
	for _, entry := range schedule.entries {
		counts[entry.Request.Priority]++
	}
	return counts
}

func (schedule *Schedule) Len() int {
	return len(schedule.entries)
}

// Entries returns a copy of the accepted entries in acceptance order.
func (schedule *Schedule) Entries() []Entry {
	return slices.Clone(schedule.entries)
}

// ScheduledSessions returns the IDs of all sessions present in the schedule.
func (schedule *Schedule) ScheduledSessions() map[string]bool {
	return lo.SliceToMap(schedule.entries, func(entry Entry) (string, bool) {
		return entry.Request.Session.ID, true
	})
}

func (schedule *Schedule) Clone() *Schedule {
	return &Schedule{entries: slices.Clone(schedule.entries)}
}
