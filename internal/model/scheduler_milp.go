package model

import (
	"context"
	"fmt"

	"sessionscheduler/internal/milp"
)

// mustAttendWeight makes any single must-attend variable outweigh every
// optional variable combined, encoding the lexicographic objective as one
// linear function. Valid while optional sessions number under a thousand.
const mustAttendWeight = 1000

type milpScheduler struct {
	solver milp.MILPSolver
}

// NewMILPScheduler returns the integer-programming strategy: one binary
// variable per (session, slot) pair, at-most-one-slot-per-session and
// pairwise conflict-exclusion constraints, and a weighted objective that
// dominates optional attendance with must-attend attendance. The external
// MILP backend is injected; its constructor is where an unavailable solver
// binary surfaces as a configuration error.
func NewMILPScheduler(solver milp.MILPSolver) Scheduler {
	return &milpScheduler{solver: solver}
}

func (scheduler *milpScheduler) OptimizeSchedule(ctx context.Context, requests []SessionRequest, travelTimes TravelTimes) (*Schedule, error) {
	ordered := orderRequests(requests)

	//** Assign each (session, slot) pair a 1-based variable number
	offsets := make([]uint64, len(ordered))
	var variables uint64
	for i, request := range ordered {
		offsets[i] = variables
		variables += uint64(len(request.Session.TimeSlots))
	}
	variable := func(session, slot int) uint64 {
		return offsets[session] + uint64(slot) + 1
	}

	instance := milp.MILP{
		Variables: variables,
		Objective: make([]int64, variables),
	}

	//** Objective: must-attend variables dominate optional ones
	for i, request := range ordered {
		weight := int64(1)
		if request.Priority == MustAttend {
			weight = mustAttendWeight
		}
		for j := range request.Session.TimeSlots {
			instance.Objective[variable(i, j)-1] = weight
		}
	}

	//** At most one slot per session
	for i, request := range ordered {
		if len(request.Session.TimeSlots) < 2 {
			continue
		}
		members := make([]uint64, len(request.Session.TimeSlots))
		for j := range request.Session.TimeSlots {
			members[j] = variable(i, j)
		}
		instance.Constraints = append(instance.Constraints, milp.Constraint{Variables: members, Bound: 1})
	}

	//** Mutual exclusion for every conflicting cross-session slot pair
	for i1 := range len(ordered) - 1 {
		for i2 := i1 + 1; i2 < len(ordered); i2++ {
			for j1, slot1 := range ordered[i1].Session.TimeSlots {
				for j2, slot2 := range ordered[i2].Session.TimeSlots {
					travelMinutes := travelTimes.Between(slot1.Location, slot2.Location)
					if slot1.ConflictsWith(slot2, travelMinutes) {
						instance.Constraints = append(instance.Constraints, milp.Constraint{
							Variables: []uint64{variable(i1, j1), variable(i2, j2)},
							Bound:     1,
						})
					}
				}
			}
		}
	}

	assignment, err := scheduler.solver.Solve(ctx, instance)
	if err != nil {
		return nil, fmt.Errorf("cannot solve scheduling program: %w", err)
	} else if assignment == nil {
		// Cannot happen for this model (the empty selection is always
		// feasible), but honor the backend contract anyway.
		return NewSchedule(), nil
	}

	schedule := NewSchedule()
	for i, request := range ordered {
		for j := range request.Session.TimeSlots {
			if assignment[variable(i, j)-1] {
				schedule.AddEntry(request, request.Session.TimeSlots[j])
				break
			}
		}
	}

	return schedule, nil
}
