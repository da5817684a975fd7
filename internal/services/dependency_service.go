package services

import (
	"errors"
	"fmt"

	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDependencyNotFound     = errors.New("dependency not found")
	ErrDependencyTaskNotFound = errors.New("one or both tasks not found")
	ErrInvalidDependencyState = errors.New("valid status is required")
)

// DependencyLink is one edge of a task's dependency view, annotated with the
// linked task's title.
type DependencyLink struct {
	DependencyID uint64                  `json:"dependency_id"`
	TaskID       uint64                  `json:"task_id"`
	Title        string                  `json:"title"`
	Status       models.DependencyStatus `json:"status"`
}

// DependencyView is the one-hop view of a task's dependencies in both
// directions. It is a filter over direct edges, not a transitive closure.
type DependencyView struct {
	TaskID    uint64           `json:"task_id"`
	Title     string           `json:"title"`
	BlockedBy []DependencyLink `json:"blocked_by"`
	Blocking  []DependencyLink `json:"blocking"`
}

// DependencyService handles "blocked by" edges between tasks.
type DependencyService struct {
	dependencyRepo repository.DependencyRepository
	taskRepo       repository.TaskRepository
	projectRepo    repository.ProjectRepository
}

// NewDependencyService creates a new DependencyService.
func NewDependencyService(
	dependencyRepo repository.DependencyRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
) *DependencyService {
	return &DependencyService{
		dependencyRepo: dependencyRepo,
		taskRepo:       taskRepo,
		projectRepo:    projectRepo,
	}
}

// CreateDependency records that a task is blocked by another. The actor must
// be a member of both tasks' projects.
func (s *DependencyService) CreateDependency(taskID, blockedBy, actorID uint64) (*models.TaskDependency, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDependencyTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	blockingTask, err := s.taskRepo.FindByID(blockedBy)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDependencyTaskNotFound
		}
		return nil, fmt.Errorf("failed to find blocking task: %w", err)
	}

	for _, projectID := range []uint64{task.ProjectID, blockingTask.ProjectID} {
		if _, err := s.projectRepo.FindMember(projectID, actorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotProjectMember
			}
			return nil, fmt.Errorf("failed to verify project membership: %w", err)
		}
	}

	dependency := &models.TaskDependency{
		TaskID:    taskID,
		BlockedBy: blockedBy,
		Status:    models.DependencyStatusBlocked,
	}

	if err := s.dependencyRepo.Create(dependency); err != nil {
		return nil, fmt.Errorf("failed to create dependency: %w", err)
	}

	return dependency, nil
}

// UpdateStatus moves a dependency between blocked and resolved.
func (s *DependencyService) UpdateStatus(dependencyID uint64, status models.DependencyStatus) (*models.TaskDependency, error) {
	if status != models.DependencyStatusBlocked && status != models.DependencyStatusResolved {
		return nil, ErrInvalidDependencyState
	}

	dependency, err := s.dependencyRepo.FindByID(dependencyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDependencyNotFound
		}
		return nil, fmt.Errorf("failed to find dependency: %w", err)
	}

	dependency.Status = status
	if err := s.dependencyRepo.Update(dependency); err != nil {
		return nil, fmt.Errorf("failed to update dependency: %w", err)
	}

	return dependency, nil
}

// DeleteDependency removes a dependency edge.
func (s *DependencyService) DeleteDependency(dependencyID uint64) error {
	if _, err := s.dependencyRepo.FindByID(dependencyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDependencyNotFound
		}
		return fmt.Errorf("failed to find dependency: %w", err)
	}

	if err := s.dependencyRepo.Delete(dependencyID); err != nil {
		return fmt.Errorf("failed to delete dependency: %w", err)
	}

	return nil
}

// GetTaskDependencies builds the one-hop dependency view for a task.
func (s *DependencyService) GetTaskDependencies(taskID uint64) (*DependencyView, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	blockedBy, err := s.dependencyRepo.ListBlockedBy(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocking edges: %w", err)
	}

	blocking, err := s.dependencyRepo.ListBlocking(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked edges: %w", err)
	}

	view := &DependencyView{
		TaskID:    taskID,
		Title:     task.Title,
		BlockedBy: make([]DependencyLink, 0, len(blockedBy)),
		Blocking:  make([]DependencyLink, 0, len(blocking)),
	}

	for _, dep := range blockedBy {
		view.BlockedBy = append(view.BlockedBy, DependencyLink{
			DependencyID: dep.ID,
			TaskID:       dep.BlockedBy,
			Title:        dep.BlockingTask.Title,
			Status:       dep.Status,
		})
	}

	for _, dep := range blocking {
		view.Blocking = append(view.Blocking, DependencyLink{
			DependencyID: dep.ID,
			TaskID:       dep.TaskID,
			Title:        dep.Task.Title,
			Status:       dep.Status,
		})
	}

	return view, nil
}
