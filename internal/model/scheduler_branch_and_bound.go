package model

import "context"

type branchAndBoundScheduler struct {
	//** Per-solve state, owned exclusively by one OptimizeSchedule call
	ctx                 context.Context
	requests            []SessionRequest
	travelTimes         TravelTimes
	current             *Schedule
	best                *Schedule
	remainingMustAttend []int
	metrics             SearchMetrics
	aborted             bool
}

// NewBranchAndBoundScheduler returns the pruned exhaustive strategy. It
// explores the same tree as the backtracking scheduler but computes, before
// branching, an optimistic bound assuming every remaining session can be
// scheduled conflict-free. Subtrees whose bound cannot beat the incumbent
// are cut without recursion. The bound is admissible, so optimality is
// preserved while far fewer nodes are typically visited.
func NewBranchAndBoundScheduler() SearchScheduler {
	return &branchAndBoundScheduler{}
}

func (scheduler *branchAndBoundScheduler) OptimizeSchedule(ctx context.Context, requests []SessionRequest, travelTimes TravelTimes) (*Schedule, error) {
	scheduler.ctx = ctx
	scheduler.requests = orderRequests(requests)
	scheduler.travelTimes = travelTimes
	scheduler.current = NewSchedule()
	scheduler.best = NewSchedule()
	scheduler.metrics = SearchMetrics{}
	scheduler.aborted = false

	// remainingMustAttend[i] counts must-attend requests at index >= i.
	scheduler.remainingMustAttend = make([]int, len(scheduler.requests)+1)
	for i := len(scheduler.requests) - 1; i >= 0; i-- {
		scheduler.remainingMustAttend[i] = scheduler.remainingMustAttend[i+1]
		if scheduler.requests[i].Priority == MustAttend {
			scheduler.remainingMustAttend[i]++
		}
	}

	scheduler.search(0)

	if scheduler.aborted {
		return scheduler.best, ErrSearchAborted
	}
	return scheduler.best, nil
}

func (scheduler *branchAndBoundScheduler) Metrics() SearchMetrics {
	return scheduler.metrics
}

func (scheduler *branchAndBoundScheduler) search(index int) {
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

	if !scheduler.bound(index).beats(scheduleObjective(scheduler.best)) {
		scheduler.metrics.BranchesPruned++
		return
	}

	request := scheduler.requests[index]
	for _, slot := range request.Session.TimeSlots {
		if scheduler.current.HasConflict(slot, scheduler.travelTimes) {
			continue
		}

		scheduler.current.AddEntry(request, slot)
		scheduler.search(index + 1)
		scheduler.current.RemoveLastEntry()
	}

	scheduler.search(index + 1)
}

// bound is the best objective reachable from this node assuming every
// unprocessed session gets scheduled with zero conflict.
func (scheduler *branchAndBoundScheduler) bound(index int) objective {
	accepted := scheduleObjective(scheduler.current)
	return objective{
		mustAttend: accepted.mustAttend + scheduler.remainingMustAttend[index],
		total:      accepted.total + len(scheduler.requests) - index,
	}
}
