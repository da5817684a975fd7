package dto

import (
	"time"

	"github.com/synergysphere/synergysphere-api/internal/models"
)

// WorkloadDTO represents a workload row in API responses
type WorkloadDTO struct {
	ID             uint64    `json:"workload_id"`
	UserID         uint64    `json:"user_id"`
	ProjectID      uint64    `json:"project_id"`
	ProjectName    string    `json:"project_name"`
	TaskCount      int       `json:"task_count"`
	EstimatedHours int       `json:"estimated_hours"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToWorkloadDTO converts a Workload model to WorkloadDTO
func ToWorkloadDTO(workload models.Workload) WorkloadDTO {
	return WorkloadDTO{
		ID:             workload.ID,
		UserID:         workload.UserID,
		ProjectID:      workload.ProjectID,
		ProjectName:    workload.Project.Name,
		TaskCount:      workload.TaskCount,
		EstimatedHours: workload.EstimatedHours,
		UpdatedAt:      workload.UpdatedAt,
	}
}

// ToWorkloadDTOs converts a slice of workload rows to DTOs
func ToWorkloadDTOs(workloads []models.Workload) []WorkloadDTO {
	items := make([]WorkloadDTO, len(workloads))
	for i, workload := range workloads {
		items[i] = ToWorkloadDTO(workload)
	}
	return items
}
