package attendance

// RecordResponse is the wire shape of a single attendance record.
type RecordResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// TodayResponse describes today's attendance state for one employee plus
// the record backing it, if any. Label and Actionable drive the client's
// clock in/out button.
type TodayResponse struct {
	State      State           `json:"state"`
	Label      string          `json:"label"`
	Actionable bool            `json:"actionable"`
	Record     *RecordResponse `json:"record,omitempty"`
}
