package models

import "time"

type DependencyStatus string

const (
	DependencyStatusBlocked  DependencyStatus = "blocked"
	DependencyStatusResolved DependencyStatus = "resolved"
)

// TaskDependency is a directed "blocked by" edge between two tasks. The view
// over these edges is a one-hop lookup in both directions; there is no cycle
// detection.
type TaskDependency struct {
	ID        uint64           `gorm:"primarykey" json:"dependency_id"`
	TaskID    uint64           `gorm:"not null;index" json:"task_id"`
	BlockedBy uint64           `gorm:"not null;index" json:"blocked_by"`
	Status    DependencyStatus `gorm:"type:varchar(20);not null;default:'blocked'" json:"status"`
	CreatedAt time.Time        `json:"created_at"`

	// Relations
	Task         Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	BlockingTask Task `gorm:"foreignKey:BlockedBy" json:"blocking_task,omitempty"`
}
