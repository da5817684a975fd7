package dto

import (
	"time"

	"github.com/synergysphere/synergysphere-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedBy   uint64    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectMemberDTO represents a member in a project
type ProjectMemberDTO struct {
	UserID   uint64             `json:"user_id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Role     models.ProjectRole `json:"role"`
	JoinedAt time.Time          `json:"joined_at"`
}

// ProjectDetailDTO represents a project with its member list
type ProjectDetailDTO struct {
	ProjectDTO
	Members []ProjectMemberDTO `json:"members"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// ToProjectMemberDTO converts a membership to ProjectMemberDTO
func ToProjectMemberDTO(member models.ProjectMember) ProjectMemberDTO {
	return ProjectMemberDTO{
		UserID:   member.UserID,
		Name:     member.User.Name,
		Email:    member.User.Email,
		Role:     member.Role,
		JoinedAt: member.JoinedAt,
	}
}

// ToProjectDetailDTO converts a project and its members to ProjectDetailDTO
func ToProjectDetailDTO(project models.Project, members []models.ProjectMember) ProjectDetailDTO {
	memberDTOs := make([]ProjectMemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = ToProjectMemberDTO(member)
	}

	return ProjectDetailDTO{
		ProjectDTO: ToProjectDTO(project),
		Members:    memberDTOs,
	}
}

// ToProjectDTOs converts a slice of projects to DTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}
	return items
}
