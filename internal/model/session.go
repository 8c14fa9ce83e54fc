package model

import "github.com/samber/lo"

type Priority int

const (
	Optional Priority = iota + 1
	MustAttend
)

func (priority Priority) String() string {
	if priority == MustAttend {
		return "must-attend"
	}
	return "optional"
}

// Session is a schedulable activity offering one or more time-slot options.
// A session with no time slots can never be scheduled; that is an
// unschedulable input, not an error. The Priority field supports the data
// view where a session carries its own importance; solvers only ever read
// the priority from the enclosing SessionRequest.
type Session struct {
	ID        string
	Title     string
	Priority  Priority
	TimeSlots []TimeSlot
}

// SessionRequest couples a session with how important attending it is,
// decoupling the "what" from the "how important".
type SessionRequest struct {
	Session  Session
	Priority Priority
}

// NewRequests lifts priority-carrying sessions into session requests, making
// the two data views interchangeable.
func NewRequests(sessions []Session) []SessionRequest {
	return lo.Map(sessions, func(session Session, _ int) SessionRequest {
		return SessionRequest{Session: session, Priority: session.Priority}
	})
}
