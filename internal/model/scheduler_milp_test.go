package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"sessionscheduler/internal/milp"
)

// exactSolver is an in-process MILP backend that enumerates every assignment.
// Only usable for the small programs these tests build, but it makes the
// MILP strategy testable without an external binary.
type exactSolver struct{}

func (exactSolver) Solve(_ context.Context, instance milp.MILP) (milp.Assignment, error) {
	best := make(milp.Assignment, instance.Variables)
	bestValue := int64(-1)

	current := make(milp.Assignment, instance.Variables)
	var enumerate func(index uint64)
	enumerate = func(index uint64) {
		if index == instance.Variables {
			if !milp.AssertAssignment(instance, current) {
				return
			}
			if value := milp.ObjectiveValue(instance, current); value > bestValue {
				bestValue = value
				copy(best, current)
			}
			return
		}

		current[index] = false
		enumerate(index + 1)
		current[index] = true
		enumerate(index + 1)
		current[index] = false
	}
	enumerate(0)

	return best, nil
}

type failingSolver struct{}

func (failingSolver) Solve(context.Context, milp.MILP) (milp.Assignment, error) {
	return nil, errors.New("backend exploded")
}

func TestMILPGapScenario(t *testing.T) {
	requests, travelTimes := gapScenario()

	schedule, err := NewMILPScheduler(exactSolver{}).OptimizeSchedule(context.Background(), requests, travelTimes)

	assert.NoError(t, err)
	assert.True(t, VerifySchedule(schedule, travelTimes))

	counts := schedule.CountByPriority()
	assert.Equal(t, 1, counts[MustAttend])
	assert.Equal(t, 1, counts[Optional])
}

func TestMILPLongTravelScenario(t *testing.T) {
	requests, travelTimes := longTravelScenario()

	schedule, err := NewMILPScheduler(exactSolver{}).OptimizeSchedule(context.Background(), requests, travelTimes)

	assert.NoError(t, err)
	assert.True(t, VerifySchedule(schedule, travelTimes))
	assert.Equal(t, 1, schedule.Len())
}

func TestMILPMatchesExhaustiveObjective(t *testing.T) {
	scenarios := []func() ([]SessionRequest, TravelTimes){
		gapScenario,
		longTravelScenario,
	}

	for _, build := range scenarios {
		requests, travelTimes := build()

		exhaustive, err := NewBacktrackingScheduler().OptimizeSchedule(context.Background(), requests, travelTimes)
		assert.NoError(t, err)

		viaMILP, err := NewMILPScheduler(exactSolver{}).OptimizeSchedule(context.Background(), requests, travelTimes)
		assert.NoError(t, err)

		assert.Equal(t, scheduleObjective(exhaustive), scheduleObjective(viaMILP))
	}
}

func TestMILPMustAttendDominatesOptionals(t *testing.T) {
	// One must-attend session excludes two optional ones; the weighted
	// objective must still prefer the must-attend session.
	requests := []SessionRequest{
		requestFor("keynote", MustAttend, slotAt("09:00", "11:00", roomA)),
		requestFor("opt-1", Optional, slotAt("09:00", "10:00", roomA)),
		requestFor("opt-2", Optional, slotAt("10:00", "11:00", roomA)),
	}

	schedule, err := NewMILPScheduler(exactSolver{}).OptimizeSchedule(context.Background(), requests, TravelTimes{})

	assert.NoError(t, err)
	assert.Equal(t, 1, schedule.Len())
	assert.True(t, schedule.ScheduledSessions()["keynote"])
}

func TestMILPEmptyInput(t *testing.T) {
	schedule, err := NewMILPScheduler(exactSolver{}).OptimizeSchedule(context.Background(), nil, TravelTimes{})

	assert.NoError(t, err)
	assert.Equal(t, 0, schedule.Len())
}

func TestMILPBackendErrorPropagates(t *testing.T) {
	requests, travelTimes := gapScenario()

	_, err := NewMILPScheduler(failingSolver{}).OptimizeSchedule(context.Background(), requests, travelTimes)

	assert.Error(t, err)
}
