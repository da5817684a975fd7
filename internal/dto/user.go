package dto

import (
	"time"

	"github.com/synergysphere/synergysphere-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64          `json:"user_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserDetailDTO represents a user together with their project memberships
type UserDetailDTO struct {
	UserDTO
	Projects []UserProjectDTO `json:"projects"`
}

// UserProjectDTO represents one project a user belongs to
type UserProjectDTO struct {
	ProjectID uint64             `json:"project_id"`
	Name      string             `json:"name"`
	Role      models.ProjectRole `json:"role"`
	JoinedAt  time.Time          `json:"joined_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO `json:"users"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalCount int64     `json:"total_count"`
	TotalPages int       `json:"total_pages"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDetailDTO converts a user and their memberships to UserDetailDTO
func ToUserDetailDTO(user models.User, memberships []models.ProjectMember) UserDetailDTO {
	projects := make([]UserProjectDTO, len(memberships))
	for i, membership := range memberships {
		projects[i] = UserProjectDTO{
			ProjectID: membership.ProjectID,
			Name:      membership.Project.Name,
			Role:      membership.Role,
			JoinedAt:  membership.JoinedAt,
		}
	}

	return UserDetailDTO{
		UserDTO:  ToUserDTO(user),
		Projects: projects,
	}
}

// ToUserListResponse converts a slice of users to UserListResponse
func ToUserListResponse(users []models.User, page, pageSize int, totalCount int64) UserListResponse {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return UserListResponse{
		Users:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
