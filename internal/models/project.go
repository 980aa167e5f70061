package models

import (
	"time"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

// Project groups tasks. Progress, CompletedTaskCount and TaskCount are
// derived from the project's tasks and never stored.
type Project struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string        `gorm:"unique;not null" json:"name"`
	Status      ProjectStatus `gorm:"default:active" json:"status"`
	StartDate   *time.Time    `json:"start_date"`
	EndDate     *time.Time    `json:"end_date"`
	TeamMembers []string      `gorm:"serializer:json" json:"team_members"`

	// Derived rollups, filled in by the engine on read
	Progress           int `gorm:"-" json:"progress"`
	CompletedTaskCount int `gorm:"-" json:"completed_task_count"`
	TaskCount          int `gorm:"-" json:"task_count"`
}
