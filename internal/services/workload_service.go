package services

import (
	"errors"
	"fmt"

	"github.com/synergysphere/synergysphere-api/internal/constants"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrWorkloadNotFound     = errors.New("workload not found")
	ErrNotWorkloadOwner     = errors.New("insufficient permissions")
	ErrInvalidWorkloadHours = errors.New("estimated hours is required")
)

// WorkloadService maintains per-user, per-project workload aggregates.
type WorkloadService struct {
	workloadRepo repository.WorkloadRepository
	taskRepo     repository.TaskRepository
}

// NewWorkloadService creates a new WorkloadService.
func NewWorkloadService(workloadRepo repository.WorkloadRepository, taskRepo repository.TaskRepository) *WorkloadService {
	return &WorkloadService{
		workloadRepo: workloadRepo,
		taskRepo:     taskRepo,
	}
}

// GetUserWorkload returns a user's workload rows with project details.
func (s *WorkloadService) GetUserWorkload(userID uint64) ([]models.Workload, error) {
	workloads, err := s.workloadRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workload: %w", err)
	}
	return workloads, nil
}

// UpdateEstimatedHours overrides the estimated hours on a workload row. Only
// the row's owner or a global admin may change it.
func (s *WorkloadService) UpdateEstimatedHours(workloadID, actorID uint64, actorRole models.UserRole, hours int) (*models.Workload, error) {
	if hours <= 0 {
		return nil, ErrInvalidWorkloadHours
	}

	workload, err := s.workloadRepo.FindByID(workloadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkloadNotFound
		}
		return nil, fmt.Errorf("failed to find workload: %w", err)
	}

	if workload.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, ErrNotWorkloadOwner
	}

	workload.EstimatedHours = hours
	if err := s.workloadRepo.Update(workload); err != nil {
		return nil, fmt.Errorf("failed to update workload: %w", err)
	}

	return workload, nil
}

// SyncUserProject recomputes the workload row for a user/project pair from
// live assignments, materializing it on first use with a default of
// DefaultHoursPerTask per task.
func (s *WorkloadService) SyncUserProject(userID, projectID uint64) error {
	count, err := s.taskRepo.CountAssignedTasks(userID, projectID)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}

	workload, err := s.workloadRepo.FindByUserProject(userID, projectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to find workload: %w", err)
		}

		workload = &models.Workload{
			UserID:         userID,
			ProjectID:      projectID,
			TaskCount:      int(count),
			EstimatedHours: int(count) * constants.DefaultHoursPerTask,
		}
		if err := s.workloadRepo.Create(workload); err != nil {
			return fmt.Errorf("failed to create workload: %w", err)
		}
		return nil
	}

	workload.TaskCount = int(count)
	if err := s.workloadRepo.Update(workload); err != nil {
		return fmt.Errorf("failed to update workload: %w", err)
	}

	return nil
}

// RecalculateAll re-syncs every workload row against live assignments. Run
// periodically by the scheduler.
func (s *WorkloadService) RecalculateAll() error {
	workloads, err := s.workloadRepo.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list workloads: %w", err)
	}

	for _, workload := range workloads {
		if err := s.SyncUserProject(workload.UserID, workload.ProjectID); err != nil {
			return fmt.Errorf("failed to sync workload %d: %w", workload.ID, err)
		}
	}

	return nil
}
