// Package scenario constructs scheduling inputs: curated conference
// scenarios, random instances for benchmarks, and JSON-file loading. It only
// produces the model's input shapes and never feeds back into the solvers.
package scenario

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"sessionscheduler/internal/model"
)

const (
	sameBuildingMinutes  = 5
	crossBuildingMinutes = 15
)

// Locations returns ten conference venues spread across three buildings.
func Locations() []model.Location {
	return []model.Location{
		{ID: "venetian-ballroom-a", Name: "Ballroom A", Building: "The Venetian"},
		{ID: "venetian-ballroom-b", Name: "Ballroom B", Building: "The Venetian"},
		{ID: "venetian-ballroom-c", Name: "Ballroom C", Building: "The Venetian"},
		{ID: "venetian-room-301", Name: "Room 301", Building: "The Venetian"},
		{ID: "venetian-room-302", Name: "Room 302", Building: "The Venetian"},
		{ID: "mandalay-hall-a", Name: "Hall A", Building: "Mandalay Bay"},
		{ID: "mandalay-hall-b", Name: "Hall B", Building: "Mandalay Bay"},
		{ID: "mandalay-room-201", Name: "Room 201", Building: "Mandalay Bay"},
		{ID: "aria-ballroom", Name: "Main Ballroom", Building: "ARIA"},
		{ID: "aria-room-101", Name: "Room 101", Building: "ARIA"},
	}
}

// TravelTimes builds the travel matrix: walking distance inside a building,
// bus ride across buildings.
func TravelTimes(locations []model.Location) model.TravelTimes {
	travelTimes := model.TravelTimes{}

	for i := range len(locations) - 1 {
		for j := i + 1; j < len(locations); j++ {
			minutes := crossBuildingMinutes
			if locations[i].Building == locations[j].Building {
				minutes = sameBuildingMinutes
			}
			travelTimes[[2]string{locations[i].ID, locations[j].ID}] = minutes
		}
	}

	return travelTimes
}

// Simple returns a small scenario with clear conflicts: two must-attend
// sessions whose first options collide, and one optional session fitting in
// a gap once the travel buffer is honored.
func Simple() ([]model.SessionRequest, model.TravelTimes) {
	locations := Locations()
	travelTimes := TravelTimes(locations)

	base := time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

	sessions := []model.Session{
		{
			ID:       "keynote-1",
			Title:    "Opening Keynote",
			Priority: model.MustAttend,
			TimeSlots: []model.TimeSlot{
				{Start: base, End: base.Add(time.Hour), Location: locations[0]},
				{Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour), Location: locations[0]},
			},
		},
		{
			ID:       "ai-workshop",
			Title:    "AI/ML Workshop",
			Priority: model.MustAttend,
			TimeSlots: []model.TimeSlot{
				{Start: base, End: base.Add(time.Hour), Location: locations[1]},
			},
		},
		{
			ID:       "networking",
			Title:    "Networking Break",
			Priority: model.Optional,
			TimeSlots: []model.TimeSlot{
				{Start: base.Add(3*time.Hour + 10*time.Minute), End: base.Add(3*time.Hour + 40*time.Minute), Location: locations[2]},
			},
		},
	}

	return model.NewRequests(sessions), travelTimes
}

// Conference returns a realistic single-day conference: keynotes with fixed
// times, popular sessions with repeats, and optional fillers across venues.
func Conference() ([]model.SessionRequest, model.TravelTimes) {
	locations := Locations()
	travelTimes := TravelTimes(locations)

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 12, 2, hour, minute, 0, 0, time.UTC)
	}

	sessions := []model.Session{
		{
			ID: "keynote-morning", Title: "CEO Keynote: The Future of Cloud", Priority: model.MustAttend,
			TimeSlots: []model.TimeSlot{
				{Start: at(9, 0), End: at(10, 30), Location: locations[0]},
			},
		},
		{
			ID: "serverless-best-practices", Title: "Serverless Best Practices", Priority: model.MustAttend,
			TimeSlots: []model.TimeSlot{
				{Start: at(11, 0), End: at(12, 0), Location: locations[3]},
				{Start: at(14, 0), End: at(15, 0), Location: locations[4]},
				{Start: at(16, 0), End: at(17, 0), Location: locations[3]},
			},
		},
		{
			ID: "security-deep-dive", Title: "Security Deep Dive", Priority: model.MustAttend,
			TimeSlots: []model.TimeSlot{
				{Start: at(11, 0), End: at(12, 0), Location: locations[5]},
				{Start: at(13, 0), End: at(14, 0), Location: locations[6]},
			},
		},
		{
			ID: "containers-intro", Title: "Introduction to Containers", Priority: model.Optional,
			TimeSlots: []model.TimeSlot{
				{Start: at(13, 0), End: at(14, 0), Location: locations[4]},
				{Start: at(15, 0), End: at(16, 0), Location: locations[7]},
			},
		},
		{
			ID: "machine-learning-101", Title: "Machine Learning 101", Priority: model.Optional,
			TimeSlots: []model.TimeSlot{
				{Start: at(14, 0), End: at(15, 0), Location: locations[8]},
				{Start: at(16, 0), End: at(17, 0), Location: locations[9]},
			},
		},
		{
			ID: "networking-lunch", Title: "Networking Lunch", Priority: model.Optional,
			TimeSlots: []model.TimeSlot{
				{Start: at(12, 0), End: at(13, 0), Location: locations[2]},
			},
		},
		{
			ID: "keynote-afternoon", Title: "Product Announcements", Priority: model.MustAttend,
			TimeSlots: []model.TimeSlot{
				{Start: at(15, 0), End: at(16, 30), Location: locations[0]},
			},
		},
		{
			ID: "happy-hour", Title: "Sponsor Happy Hour", Priority: model.Optional,
			TimeSlots: []model.TimeSlot{
				{Start: at(17, 0), End: at(18, 0), Location: locations[8]},
			},
		},
	}

	return model.NewRequests(sessions), travelTimes
}

// Complex returns thirteen overlapping sessions with rotating venues,
// exercising the travel-buffer logic under heavy contention.
func Complex() ([]model.SessionRequest, model.TravelTimes) {
	locations := Locations()
	travelTimes := TravelTimes(locations)

	type config struct {
		id       string
		title    string
		priority model.Priority
		hours    [][2]int
	}

	configs := []config{
		{"must-1", "Critical Session 1", model.MustAttend, [][2]int{{9, 10}, {14, 15}}},
		{"must-2", "Critical Session 2", model.MustAttend, [][2]int{{9, 10}, {11, 12}}},
		{"must-3", "Critical Session 3", model.MustAttend, [][2]int{{10, 11}}},
		{"must-4", "Critical Session 4", model.MustAttend, [][2]int{{11, 12}, {15, 16}}},
		{"must-5", "Critical Session 5", model.MustAttend, [][2]int{{13, 14}}},
		{"opt-1", "Optional Session 1", model.Optional, [][2]int{{9, 10}, {12, 13}}},
		{"opt-2", "Optional Session 2", model.Optional, [][2]int{{10, 11}, {14, 15}}},
		{"opt-3", "Optional Session 3", model.Optional, [][2]int{{11, 12}}},
		{"opt-4", "Optional Session 4", model.Optional, [][2]int{{12, 13}, {16, 17}}},
		{"opt-5", "Optional Session 5", model.Optional, [][2]int{{13, 14}, {15, 16}}},
		{"opt-6", "Optional Session 6", model.Optional, [][2]int{{14, 15}}},
		{"opt-7", "Optional Session 7", model.Optional, [][2]int{{15, 16}}},
		{"opt-8", "Optional Session 8", model.Optional, [][2]int{{16, 17}}},
	}

	sessions := make([]model.Session, 0, len(configs))
	for i, cfg := range configs {
		location := locations[i%len(locations)]

		slots := make([]model.TimeSlot, 0, len(cfg.hours))
		for _, hours := range cfg.hours {
			slots = append(slots, model.TimeSlot{
				Start:    time.Date(2025, 12, 3, hours[0], 0, 0, 0, time.UTC),
				End:      time.Date(2025, 12, 3, hours[1], 0, 0, 0, time.UTC),
				Location: location,
			})
		}

		sessions = append(sessions, model.Session{ID: cfg.id, Title: cfg.title, Priority: cfg.priority, TimeSlots: slots})
	}

	return model.NewRequests(sessions), travelTimes
}

// Random generates a reproducible scenario of the given size for benchmarks:
// hour-long sessions across a full day, one to three slot options each,
// roughly one third must-attend.
func Random(sessionCount int, seed uint64) ([]model.SessionRequest, model.TravelTimes) {
	locations := Locations()
	travelTimes := TravelTimes(locations)
	rng := rand.New(rand.NewPCG(seed, seed))

	day := time.Date(2025, 12, 4, 8, 0, 0, 0, time.UTC)

	sessions := make([]model.Session, 0, sessionCount)
	for i := range sessionCount {
		priority := model.Optional
		if rng.IntN(3) == 0 {
			priority = model.MustAttend
		}

		slots := make([]model.TimeSlot, 0, 3)
		for range rng.IntN(3) + 1 {
			start := day.Add(time.Duration(rng.IntN(10)) * time.Hour)
			slots = append(slots, model.TimeSlot{
				Start:    start,
				End:      start.Add(time.Hour),
				Location: locations[rng.IntN(len(locations))],
			})
		}

		sessions = append(sessions, model.Session{
			ID:        uuid.NewString(),
			Title:     fmt.Sprintf("Generated Session %d", i+1),
			Priority:  priority,
			TimeSlots: slots,
		})
	}

	return model.NewRequests(sessions), travelTimes
}
