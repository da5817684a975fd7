package models

import "time"

// MoodPulse is a user-submitted wellbeing rating (1-5) tied to a project.
type MoodPulse struct {
	ID        uint64    `gorm:"primarykey" json:"mood_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	ProjectID uint64    `gorm:"not null;index" json:"project_id"`
	MoodValue int       `gorm:"not null" json:"mood_value"`
	Comment   string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
