package models

import "time"

// Workload aggregates assigned task count and estimated hours per user and
// project. One row per (user_id, project_id).
type Workload struct {
	ID             uint64    `gorm:"primarykey" json:"workload_id"`
	UserID         uint64    `gorm:"not null;uniqueIndex:idx_workloads_user_project" json:"user_id"`
	ProjectID      uint64    `gorm:"not null;uniqueIndex:idx_workloads_user_project" json:"project_id"`
	TaskCount      int       `gorm:"not null;default:0" json:"task_count"`
	EstimatedHours int       `gorm:"not null;default:0" json:"estimated_hours"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
