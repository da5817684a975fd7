package repository

import (
	"errors"
	"fmt"

	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrCreateProject is returned when creating a project fails inside the creation transaction.
	ErrCreateProject = errors.New("project repository: create project failed")
	// ErrCreateProjectMember is returned when creating the owner membership fails inside the creation transaction.
	ErrCreateProjectMember = errors.New("project repository: create project member failed")
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithOwner creates a project and the creator's owner membership atomically.
func (r *GormProjectRepository) CreateWithOwner(project *models.Project, member *models.ProjectMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProject, err)
		}

		member.ProjectID = project.ID

		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateProjectMember, err)
		}

		return nil
	})
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// ListByUserID lists all projects a user is a member of
func (r *GormProjectRepository) ListByUserID(userID uint64) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.
		Joins("JOIN project_members ON project_members.project_id = projects.id").
		Where("project_members.user_id = ?", userID).
		Order("projects.id ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// AddMember adds a member to a project
func (r *GormProjectRepository) AddMember(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// FindMember finds a specific project member
func (r *GormProjectRepository) FindMember(projectID, userID uint64) (*models.ProjectMember, error) {
	var member models.ProjectMember
	if err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all members of a project with user details
func (r *GormProjectRepository) ListMembers(projectID uint64) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListMembershipsByUserID lists a user's memberships with their projects
func (r *GormProjectRepository) ListMembershipsByUserID(userID uint64) ([]models.ProjectMember, error) {
	var memberships []models.ProjectMember
	if err := r.db.Preload("Project").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}
