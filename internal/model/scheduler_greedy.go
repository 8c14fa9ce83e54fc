package model

import "context"

type greedyScheduler struct{}

// NewGreedyScheduler returns the single-pass heuristic strategy: process
// must-attend requests first, then optional ones, most-constrained-first
// within each group, accepting the first non-conflicting slot of each
// session. Early choices are never revisited, so a schedulable combination
// can be stranded; the result is a baseline, not guaranteed optimal.
func NewGreedyScheduler() Scheduler {
	return &greedyScheduler{}
}

func (scheduler *greedyScheduler) OptimizeSchedule(ctx context.Context, requests []SessionRequest, travelTimes TravelTimes) (*Schedule, error) {
	schedule := NewSchedule()

	for _, request := range orderRequests(requests) {
		if ctx.Err() != nil {
			return schedule, ErrSearchAborted
		}

		for _, slot := range request.Session.TimeSlots {
			if !schedule.HasConflict(slot, travelTimes) {
				schedule.AddEntry(request, slot)
				break
			}
		}
	}

	return schedule, nil
}
