package model

import (
	"context"
	"errors"
	"slices"

	"github.com/samber/lo"
)

// ErrSearchAborted is returned together with the best schedule found so far
// when the context is cancelled before the search completes.
var ErrSearchAborted = errors.New("search aborted before completion")

// Scheduler selects, from a set of session requests each offering multiple
// alternative time slots, a conflict-free subset maximizing attendance under
// the lexicographic objective: must-attend count first, total count second.
// The four implementations are drop-in substitutable.
type Scheduler interface {
	OptimizeSchedule(ctx context.Context, requests []SessionRequest, travelTimes TravelTimes) (*Schedule, error)
}

// SearchMetrics are the observable diagnostics of a tree search. Counters
// reset on every OptimizeSchedule call.
type SearchMetrics struct {
	NodesExplored  uint64
	BranchesPruned uint64
}

// SearchScheduler is a Scheduler that explores a solution tree and exposes
// diagnostics about its last run.
type SearchScheduler interface {
	Scheduler
	Metrics() SearchMetrics
}

// objective orders schedules lexicographically: must-attend sessions
// scheduled first, total sessions scheduled as the tie-break. Every strategy
// must honor this identical comparison for results to be comparable.
type objective struct {
	mustAttend int
	total      int
}

func scheduleObjective(schedule *Schedule) objective {
	return objective{
		mustAttend: schedule.CountByPriority()[MustAttend],
		total:      schedule.Len(),
	}
}

func (value objective) beats(other objective) bool {
	if value.mustAttend != other.mustAttend {
		return value.mustAttend > other.mustAttend
	}
	return value.total > other.total
}

// orderRequests places must-attend requests before optional ones and sorts
// each group ascending by candidate-slot count: sessions with fewer options
// are riskier to defer. Greedy relies on this order for solution quality; the
// tree searches use it only to reach good solutions early.
func orderRequests(requests []SessionRequest) []SessionRequest {
	mustAttend, optional := lo.FilterReject(requests, func(request SessionRequest, _ int) bool {
		return request.Priority == MustAttend
	})

	byOptionCount := func(a, b SessionRequest) int {
		return len(a.Session.TimeSlots) - len(b.Session.TimeSlots)
	}
	slices.SortStableFunc(mustAttend, byOptionCount)
	slices.SortStableFunc(optional, byOptionCount)

	return append(mustAttend, optional...)
}

// VerifySchedule independently checks the invariants every returned schedule
// must hold: at most one entry per session and no conflicting pair of
// accepted slots under the correct symmetric travel time.
func VerifySchedule(schedule *Schedule, travelTimes TravelTimes) bool {
	entries := schedule.Entries()

	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if seen[entry.Request.Session.ID] {
			return false
		}
		seen[entry.Request.Session.ID] = true
	}

	for i := range len(entries) - 1 {
		for j := i + 1; j < len(entries); j++ {
			travelMinutes := travelTimes.Between(entries[i].Slot.Location, entries[j].Slot.Location)
			if entries[i].Slot.ConflictsWith(entries[j].Slot, travelMinutes) {
				return false
			}
		}
	}

	return true
}
