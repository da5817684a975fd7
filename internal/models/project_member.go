package models

import "time"

type ProjectRole string

const (
	ProjectRoleOwner  ProjectRole = "owner"
	ProjectRoleMember ProjectRole = "member"
	ProjectRoleViewer ProjectRole = "viewer"
)

type ProjectMember struct {
	ID        uint64      `gorm:"primarykey" json:"member_id"`
	ProjectID uint64      `gorm:"not null;uniqueIndex:idx_project_members_project_user" json:"project_id"`
	UserID    uint64      `gorm:"not null;uniqueIndex:idx_project_members_project_user" json:"user_id"`
	Role      ProjectRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt  time.Time   `json:"joined_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
