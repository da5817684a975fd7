package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"user_id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CreatedProjects []Project        `gorm:"foreignKey:CreatedBy" json:"-"`
	CreatedTasks    []Task           `gorm:"foreignKey:CreatedBy" json:"-"`
	Memberships     []ProjectMember  `gorm:"foreignKey:UserID" json:"-"`
	Assignments     []TaskAssignment `gorm:"foreignKey:UserID" json:"-"`
}
