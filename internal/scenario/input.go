package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"sessionscheduler/internal/model"
)

// Input is the JSON scenario shape: locations, a symmetric travel table and
// sessions referencing locations by ID.
type Input struct {
	Locations   []LocationInput
	TravelTimes []TravelTimeInput `mapstructure:"travelTimes"`
	Sessions    []SessionInput
}

type LocationInput struct {
	ID       string
	Name     string
	Building string
}

type TravelTimeInput struct {
	From    string
	To      string
	Minutes int
}

type SessionInput struct {
	ID        string
	Title     string
	Priority  string
	TimeSlots []TimeSlotInput `mapstructure:"timeSlots"`
}

type TimeSlotInput struct {
	Start    string // RFC 3339
	End      string // RFC 3339
	Location string // location ID
}

func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, err
	}

	var input Input
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return Input{}, err
	}

	return input, nil
}

// Requests resolves the raw input into solver-ready session requests and a
// travel-time table.
func (input Input) Requests() ([]model.SessionRequest, model.TravelTimes, error) {
	locations := lo.SliceToMap(input.Locations, func(location LocationInput) (string, model.Location) {
		return location.ID, model.Location(location)
	})

	travelTimes := model.TravelTimes{}
	for _, entry := range input.TravelTimes {
		travelTimes[[2]string{entry.From, entry.To}] = entry.Minutes
	}

	sessions := make([]model.Session, 0, len(input.Sessions))
	for _, sessionInput := range input.Sessions {
		priority, err := parsePriority(sessionInput.Priority)
		if err != nil {
			return nil, nil, fmt.Errorf("session %v: %w", sessionInput.ID, err)
		}

		slots := make([]model.TimeSlot, 0, len(sessionInput.TimeSlots))
		for _, slotInput := range sessionInput.TimeSlots {
			slot, err := parseTimeSlot(slotInput, locations)
			if err != nil {
				return nil, nil, fmt.Errorf("session %v: %w", sessionInput.ID, err)
			}
			slots = append(slots, slot)
		}

		sessions = append(sessions, model.Session{
			ID:        sessionInput.ID,
			Title:     sessionInput.Title,
			Priority:  priority,
			TimeSlots: slots,
		})
	}

	return model.NewRequests(sessions), travelTimes, nil
}

func parsePriority(name string) (model.Priority, error) {
	switch name {
	case "must-attend":
		return model.MustAttend, nil
	case "optional":
		return model.Optional, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", name)
	}
}

func parseTimeSlot(input TimeSlotInput, locations map[string]model.Location) (model.TimeSlot, error) {
	start, err := time.Parse(time.RFC3339, input.Start)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, input.End)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("invalid end time: %w", err)
	}
	if !start.Before(end) {
		return model.TimeSlot{}, fmt.Errorf("start %v is not before end %v", input.Start, input.End)
	}

	location, ok := locations[input.Location]
	if !ok {
		return model.TimeSlot{}, fmt.Errorf("unknown location %q", input.Location)
	}

	return model.TimeSlot{Start: start, End: end, Location: location}, nil
}
