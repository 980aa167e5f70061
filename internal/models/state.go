package models

// State is the full in-memory state of one employee's portal session.
// It is owned exclusively by the engine; the UI layer only ever sees
// copies returned from engine operations.
type State struct {
	Records  []AttendanceRecord
	Balances []LeaveBalance
	Leaves   []LeaveRequest
	Tasks    []Task
	Projects []Project
}
