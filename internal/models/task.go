package models

import (
	"time"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// Task represents a work item on the employee's board
type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string     `gorm:"not null" json:"title"`
	Status   TaskStatus `gorm:"default:todo" json:"status"`
	Progress int        `gorm:"default:0" json:"progress"` // 0-100
	Priority int        `gorm:"default:0" json:"priority"` // 0=no priority, 1=low, 2=medium, 3=high
	Due      *time.Time `json:"due"`

	ProjectID *uint `json:"project_id"`

	// Relationships
	Tags []Tag `gorm:"many2many:task_tags;" json:"tags"`
}

// Tag represents a task tag
type Tag struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	// Relationships
	Tasks []Task `gorm:"many2many:task_tags;" json:"-"`
}

// TaskTag is the join table for the many-to-many relationship
type TaskTag struct {
	TaskID uint `gorm:"primaryKey"`
	TagID  uint `gorm:"primaryKey"`
}
