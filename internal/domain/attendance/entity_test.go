package attendance

import (
	"testing"
	"time"
)

func TestStateOf(t *testing.T) {
	now := time.Now()

	if got := StateOf(nil); got != StateNoRecord {
		t.Errorf("StateOf(nil) = %v, want %v", got, StateNoRecord)
	}

	open := &Attendance{ID: "a", EmployeeID: "e", CheckIn: now, CreatedAt: now}
	if got := StateOf(open); got != StateCheckedIn {
		t.Errorf("StateOf(open) = %v, want %v", got, StateCheckedIn)
	}

	out := now.Add(8 * time.Hour)
	closed := &Attendance{ID: "a", EmployeeID: "e", CheckIn: now, CheckOut: &out, CreatedAt: now}
	if got := StateOf(closed); got != StateCompleted {
		t.Errorf("StateOf(closed) = %v, want %v", got, StateCompleted)
	}
}

func TestStateLabels(t *testing.T) {
	cases := []struct {
		state      State
		label      string
		actionable bool
	}{
		{StateNoRecord, "Clock In", true},
		{StateCheckedIn, "Clock Out", true},
		{StateCompleted, "Attendance Completed", false},
	}
	for _, c := range cases {
		if got := c.state.Label(); got != c.label {
			t.Errorf("%v.Label() = %q, want %q", c.state, got, c.label)
		}
		if got := c.state.Actionable(); got != c.actionable {
			t.Errorf("%v.Actionable() = %v, want %v", c.state, got, c.actionable)
		}
	}
}
