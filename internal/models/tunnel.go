package models

import "time"

type TunnelEntityType string

const (
	TunnelEntityTask    TunnelEntityType = "task"
	TunnelEntityProject TunnelEntityType = "project"
)

// ValidTunnelEntityType reports whether t names a linkable entity kind.
func ValidTunnelEntityType(t TunnelEntityType) bool {
	return t == TunnelEntityTask || t == TunnelEntityProject
}

// Tunnel is a stored similarity edge between two tasks/projects, surfaced as a
// suggested relationship.
type Tunnel struct {
	ID         uint64           `gorm:"primarykey" json:"tunnel_id"`
	SourceType TunnelEntityType `gorm:"type:varchar(20);not null;index:idx_tunnels_source" json:"source_type"`
	SourceID   uint64           `gorm:"not null;index:idx_tunnels_source" json:"source_id"`
	TargetType TunnelEntityType `gorm:"type:varchar(20);not null" json:"target_type"`
	TargetID   uint64           `gorm:"not null" json:"target_id"`
	Similarity float64          `gorm:"not null" json:"similarity"`
	CreatedAt  time.Time        `json:"created_at"`
}
