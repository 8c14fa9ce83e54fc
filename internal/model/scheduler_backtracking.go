package model

import "context"

type backtrackingScheduler struct {
	//** Per-solve state, owned exclusively by one OptimizeSchedule call
	ctx         context.Context
	requests    []SessionRequest
	travelTimes TravelTimes
	current     *Schedule
	best        *Schedule
	metrics     SearchMetrics
	aborted     bool
}

// NewBacktrackingScheduler returns the exhaustive strategy: at every session
// it branches over each non-conflicting candidate slot and over leaving the
// session unscheduled, then compares completed schedules against the best
// found so far. Guaranteed optimal under the lexicographic objective, at
// exponential worst-case cost in the number of sessions. Recursion depth
// equals the session count; a pathologically large input can exhaust the
// stack, which is a documented limitation.
func NewBacktrackingScheduler() SearchScheduler {
	return &backtrackingScheduler{}
}

func (scheduler *backtrackingScheduler) OptimizeSchedule(ctx context.Context, requests []SessionRequest, travelTimes TravelTimes) (*Schedule, error) {
	scheduler.ctx = ctx
	scheduler.requests = orderRequests(requests)
	scheduler.travelTimes = travelTimes
	scheduler.current = NewSchedule()
	scheduler.best = NewSchedule()
	scheduler.metrics = SearchMetrics{}
	scheduler.aborted = false

	scheduler.search(0)

	if scheduler.aborted {
		return scheduler.best, ErrSearchAborted
	}
	return scheduler.best, nil
}

func (scheduler *backtrackingScheduler) Metrics() SearchMetrics {
	return scheduler.metrics
}

func (scheduler *backtrackingScheduler) search(index int) {
	if scheduler.aborted {
		return
	} else if scheduler.ctx.Err() != nil {
		scheduler.aborted = true
		return
	}

	scheduler.metrics.NodesExplored++

	if index == len(scheduler.requests) {
		if scheduleObjective(scheduler.current).beats(scheduleObjective(scheduler.best)) {
			scheduler.best = scheduler.current.Clone()
		}
		return
	}

	request := scheduler.requests[index]
	for _, slot := range request.Session.TimeSlots {
		if scheduler.current.HasConflict(slot, scheduler.travelTimes) {
			continue
		}

		// Push the tentative entry, recurse, and pop unconditionally on
		// return before trying the next candidate slot.
		scheduler.current.AddEntry(request, slot)
		scheduler.search(index + 1)
		scheduler.current.RemoveLastEntry()
	}

	// Leave the session unscheduled. Even a must-attend session may need to
	// be sacrificed when scheduling it makes the overall result worse.
	scheduler.search(index + 1)
}
