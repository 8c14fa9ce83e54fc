package scenario

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"sessionscheduler/internal/model"
)

func TestTravelTimesMatrix(t *testing.T) {
	locations := Locations()
	travelTimes := TravelTimes(locations)

	sameBuilding := travelTimes.Between(locations[0], locations[1])
	assert.Equal(t, sameBuildingMinutes, sameBuilding)

	crossBuilding := travelTimes.Between(locations[0], locations[5])
	assert.Equal(t, crossBuildingMinutes, crossBuilding)

	// Symmetric regardless of argument order
	assert.Equal(t, crossBuilding, travelTimes.Between(locations[5], locations[0]))
}

func TestSimpleScenarioShape(t *testing.T) {
	requests, travelTimes := Simple()

	assert.Len(t, requests, 3)
	assert.NotEmpty(t, travelTimes)

	mustAttend := lo.CountBy(requests, func(request model.SessionRequest) bool {
		return request.Priority == model.MustAttend
	})
	assert.Equal(t, 2, mustAttend)

	for _, request := range requests {
		assert.NotEmpty(t, request.Session.TimeSlots)
		for _, slot := range request.Session.TimeSlots {
			assert.True(t, slot.Start.Before(slot.End))
		}
	}
}

func TestSimpleScenarioOptimum(t *testing.T) {
	// The two must-attend sessions clash on their first options, but the
	// keynote has a later repeat, so all three sessions fit.
	requests, travelTimes := Simple()

	schedule, err := model.NewBacktrackingScheduler().OptimizeSchedule(context.Background(), requests, travelTimes)

	assert.NoError(t, err)
	assert.True(t, model.VerifySchedule(schedule, travelTimes))
	assert.Equal(t, 3, schedule.Len())
	assert.Equal(t, 2, schedule.CountByPriority()[model.MustAttend])
}

func TestConferenceScenario(t *testing.T) {
	requests, travelTimes := Conference()

	assert.Len(t, requests, 8)

	schedule, err := model.NewBranchAndBoundScheduler().OptimizeSchedule(context.Background(), requests, travelTimes)

	assert.NoError(t, err)
	assert.True(t, model.VerifySchedule(schedule, travelTimes))
	// Every must-attend session fits this program.
	assert.Equal(t, 4, schedule.CountByPriority()[model.MustAttend])
}

func TestComplexScenario(t *testing.T) {
	requests, travelTimes := Complex()

	assert.Len(t, requests, 13)

	schedule, err := model.NewGreedyScheduler().OptimizeSchedule(context.Background(), requests, travelTimes)

	assert.NoError(t, err)
	assert.True(t, model.VerifySchedule(schedule, travelTimes))
}

func TestRandomScenarioReproducible(t *testing.T) {
	first, _ := Random(10, 42)
	second, _ := Random(10, 42)

	assert.Len(t, first, 10)
	for i := range first {
		assert.Equal(t, first[i].Priority, second[i].Priority)
		assert.Equal(t, len(first[i].Session.TimeSlots), len(second[i].Session.TimeSlots))
		for j := range first[i].Session.TimeSlots {
			assert.Equal(t, first[i].Session.TimeSlots[j].Start, second[i].Session.TimeSlots[j].Start)
			assert.Equal(t, first[i].Session.TimeSlots[j].Location, second[i].Session.TimeSlots[j].Location)
		}
	}
}
