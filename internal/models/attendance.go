package models

import (
	"time"
)

// SessionState is the employee's current attendance state for today
type SessionState string

const (
	SessionOut SessionState = "out"
	SessionIn  SessionState = "in"
)

// AttendanceStatus classifies a daily attendance record
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOnLeave AttendanceStatus = "on-leave"
)

// AttendanceRecord represents one employee-day of attendance.
// One record per calendar date; created on the first check-in of the day,
// closed (and frozen) by check-out.
type AttendanceRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date              time.Time        `gorm:"not null;uniqueIndex" json:"date"` // day granularity
	CheckInTime       time.Time        `gorm:"not null" json:"check_in_time"`
	CheckOutTime      *time.Time       `json:"check_out_time"`
	BreakMinutesTotal int              `gorm:"default:0" json:"break_minutes_total"`
	Status            AttendanceStatus `gorm:"default:present" json:"status"`
	TotalHours        float64          `json:"total_hours"` // derived, frozen at check-out
}

// Open reports whether the record is still accepting mutations
// (checked in, not yet checked out).
func (r *AttendanceRecord) Open() bool {
	return r.CheckOutTime == nil
}
