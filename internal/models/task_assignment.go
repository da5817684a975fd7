package models

import "time"

type TaskAssignment struct {
	ID         uint64    `gorm:"primarykey" json:"assignment_id"`
	TaskID     uint64    `gorm:"not null;uniqueIndex:idx_task_assignments_task_user" json:"task_id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_task_assignments_task_user" json:"user_id"`
	AssignedAt time.Time `json:"assigned_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
