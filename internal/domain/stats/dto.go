package stats

// WeeklyStats is the derived dashboard triple. It is never persisted and
// is recomputed on every call.
type WeeklyStats struct {
	// WeeklyAttendanceCount counts all attendance records in the week
	// window, including ones without a clock-out yet.
	WeeklyAttendanceCount int `json:"weekly_attendance_count"`

	// AverageHoursPerDay divides total worked hours by the count of all
	// fetched records, so partial records pull the average toward zero.
	AverageHoursPerDay float64 `json:"average_hours_per_day"`

	// LeaveBalance is annual allowance minus approved requests. Not
	// floored at zero.
	LeaveBalance int `json:"leave_balance"`
}
