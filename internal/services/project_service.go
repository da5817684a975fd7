package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectInput  = errors.New("name and description are required")
	ErrNotProjectMember     = errors.New("user is not a member of this project")
	ErrAlreadyProjectMember = errors.New("user is already a member of this project")
	ErrInvalidMemberRole    = errors.New("invalid member role")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	CreatedBy   uint64
}

// CreateProject creates a project and registers the creator as its owner
// within a single transaction.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrInvalidProjectInput
	}

	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedBy:   input.CreatedBy,
	}

	member := &models.ProjectMember{
		UserID:   input.CreatedBy,
		Role:     models.ProjectRoleOwner,
		JoinedAt: time.Now(),
	}

	if err := s.projectRepo.CreateWithOwner(project, member); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjectsForUser returns the projects the user belongs to.
func (s *ProjectService) ListProjectsForUser(userID uint64) ([]models.Project, error) {
	projects, err := s.projectRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectWithMembers returns a project and all of its members.
func (s *ProjectService) GetProjectWithMembers(projectID uint64) (*models.Project, []models.ProjectMember, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	members, err := s.projectRepo.ListMembers(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list project members: %w", err)
	}

	return project, members, nil
}

// UpdateProjectInput represents a partial project update.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// UpdateProject applies a partial update and restamps updated_at.
func (s *ProjectService) UpdateProject(projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil && *input.Name != "" {
		project.Name = *input.Name
	}
	if input.Description != nil && *input.Description != "" {
		project.Description = *input.Description
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// AddMember adds a user to a project. The membership pair is unique; adding an
// existing member is a conflict.
func (s *ProjectService) AddMember(projectID, userID uint64, role models.ProjectRole) (*models.ProjectMember, error) {
	if role == "" {
		role = models.ProjectRoleMember
	}
	switch role {
	case models.ProjectRoleOwner, models.ProjectRoleMember, models.ProjectRoleViewer:
	default:
		return nil, ErrInvalidMemberRole
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.projectRepo.FindMember(projectID, userID); err == nil {
		return nil, ErrAlreadyProjectMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to verify membership: %w", err)
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		JoinedAt:  time.Now(),
	}

	if err := s.projectRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// ListMembershipsForUser returns a user's memberships with project details.
func (s *ProjectService) ListMembershipsForUser(userID uint64) ([]models.ProjectMember, error) {
	memberships, err := s.projectRepo.ListMembershipsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}
