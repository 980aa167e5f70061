package models

import (
	"time"
)

// LeaveCategory is a leave type, the unit of balance accounting
type LeaveCategory string

const (
	LeaveVacation  LeaveCategory = "vacation"
	LeaveSick      LeaveCategory = "sick"
	LeavePersonal  LeaveCategory = "personal"
	LeaveMaternity LeaveCategory = "maternity"
)

// LeaveStatus is the lifecycle state of a leave request.
// approved, rejected and cancelled are terminal.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

// Terminal reports whether no further transition is permitted from s.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveApproved || s == LeaveRejected || s == LeaveCancelled
}

// LeaveBalance is the per-category ledger entry. Mutated only through
// approved leave requests, never directly.
type LeaveBalance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	Category  LeaveCategory `gorm:"uniqueIndex;not null" json:"category"`
	TotalDays float64       `gorm:"not null" json:"total_days"`
	UsedDays  float64       `gorm:"default:0" json:"used_days"`
}

// Remaining returns the days still available in this category.
func (b LeaveBalance) Remaining() float64 {
	return b.TotalDays - b.UsedDays
}

// LeaveRequest is a single leave application. Days is computed when the
// request is created and frozen; the balance is debited only on approval.
type LeaveRequest struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category         LeaveCategory `gorm:"not null" json:"category"`
	StartDate        time.Time     `gorm:"not null" json:"start_date"`
	EndDate          time.Time     `gorm:"not null" json:"end_date"`
	HalfDay          bool          `gorm:"default:false" json:"half_day"`
	Reason           string        `gorm:"not null" json:"reason"`
	EmergencyContact string        `json:"emergency_contact"`
	Days             float64       `gorm:"not null" json:"days"`
	Status           LeaveStatus   `gorm:"default:pending" json:"status"`
}
