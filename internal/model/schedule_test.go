package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func requestFor(id string, priority Priority, slots ...TimeSlot) SessionRequest {
	return SessionRequest{
		Session:  Session{ID: id, Title: id, TimeSlots: slots},
		Priority: priority,
	}
}

func TestScheduleAddAndRemove(t *testing.T) {
	schedule := NewSchedule()
	assert.Equal(t, 0, schedule.Len())

	first := slotAt("09:00", "10:00", roomA)
	second := slotAt("10:00", "11:00", roomA)

	schedule.AddEntry(requestFor("s1", MustAttend, first), first)
	schedule.AddEntry(requestFor("s2", Optional, second), second)
	assert.Equal(t, 2, schedule.Len())

	schedule.RemoveLastEntry()
	assert.Equal(t, 1, schedule.Len())
	assert.Equal(t, "s1", schedule.Entries()[0].Request.Session.ID)
}

func TestScheduleHasConflict(t *testing.T) {
	travelTimes := TravelTimes{
		{"loc1", "loc2"}: 15,
	}

	schedule := NewSchedule()
	accepted := slotAt("09:00", "10:00", roomA)
	schedule.AddEntry(requestFor("s1", MustAttend, accepted), accepted)

	t.Run("same location back-to-back fits", func(t *testing.T) {
		assert.False(t, schedule.HasConflict(slotAt("10:00", "11:00", roomA), travelTimes))
	})

	t.Run("cross location back-to-back needs the buffer", func(t *testing.T) {
		assert.True(t, schedule.HasConflict(slotAt("10:00", "11:00", roomB), travelTimes))
		assert.False(t, schedule.HasConflict(slotAt("10:15", "11:00", roomB), travelTimes))
	})

	t.Run("missing table entry means no penalty", func(t *testing.T) {
		roomC := Location{ID: "loc3", Name: "Room C", Building: "Building 3"}
		assert.False(t, schedule.HasConflict(slotAt("10:00", "11:00", roomC), TravelTimes{}))
	})
}

func TestScheduleCountByPriority(t *testing.T) {
	schedule := NewSchedule()
	schedule.AddEntry(requestFor("s1", MustAttend), slotAt("09:00", "10:00", roomA))
	schedule.AddEntry(requestFor("s2", MustAttend), slotAt("10:00", "11:00", roomA))
	schedule.AddEntry(requestFor("s3", Optional), slotAt("11:00", "12:00", roomA))

	counts := schedule.CountByPriority()
	assert.Equal(t, 2, counts[MustAttend])
	assert.Equal(t, 1, counts[Optional])
}

func TestScheduleCloneIsIndependent(t *testing.T) {
	schedule := NewSchedule()
	schedule.AddEntry(requestFor("s1", MustAttend), slotAt("09:00", "10:00", roomA))

	clone := schedule.Clone()
	schedule.RemoveLastEntry()

	assert.Equal(t, 0, schedule.Len())
	assert.Equal(t, 1, clone.Len())
}

func TestVerifySchedule(t *testing.T) {
	travelTimes := TravelTimes{
		{"loc1", "loc2"}: 15,
	}

	t.Run("valid schedule passes", func(t *testing.T) {
		schedule := NewSchedule()
		schedule.AddEntry(requestFor("s1", MustAttend), slotAt("09:00", "10:00", roomA))
		schedule.AddEntry(requestFor("s2", Optional), slotAt("10:30", "11:00", roomB))

		assert.True(t, VerifySchedule(schedule, travelTimes))
	})

	t.Run("conflicting pair fails", func(t *testing.T) {
		schedule := NewSchedule()
		schedule.AddEntry(requestFor("s1", MustAttend), slotAt("09:00", "10:00", roomA))
		schedule.AddEntry(requestFor("s2", Optional), slotAt("10:00", "11:00", roomB))

		assert.False(t, VerifySchedule(schedule, travelTimes))
	})

	t.Run("duplicate session fails", func(t *testing.T) {
		schedule := NewSchedule()
		schedule.AddEntry(requestFor("s1", MustAttend), slotAt("09:00", "10:00", roomA))
		schedule.AddEntry(requestFor("s1", MustAttend), slotAt("11:00", "12:00", roomA))

		assert.False(t, VerifySchedule(schedule, travelTimes))
	})
}
