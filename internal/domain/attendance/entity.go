package attendance

import (
	"time"
)

// Attendance is one employee's clock-in/clock-out record for a single
// calendar day. CheckIn is set exactly once at creation, CheckOut at most
// once afterwards. CreatedAt buckets the record into its day window and is
// what day lookups match against.
type Attendance struct {
	ID         string
	EmployeeID string
	CheckIn    time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
}

// State is the per-day attendance state machine:
//
//	NoRecord --clock-in--> CheckedIn --clock-out--> Completed
//
// Completed is terminal for the day. The machine resets implicitly when
// the next day window starts.
type State string

const (
	StateNoRecord  State = "no_record"
	StateCheckedIn State = "checked_in"
	StateCompleted State = "completed"
)

// StateOf derives the state from a stored record (nil means no record yet).
func StateOf(att *Attendance) State {
	switch {
	case att == nil:
		return StateNoRecord
	case att.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCompleted
	}
}

// Label returns the action button text for the state.
func (s State) Label() string {
	switch s {
	case StateCheckedIn:
		return "Clock Out"
	case StateCompleted:
		return "Attendance Completed"
	default:
		return "Clock In"
	}
}

// Actionable reports whether the clock in/out action is still enabled.
func (s State) Actionable() bool {
	return s != StateCompleted
}
