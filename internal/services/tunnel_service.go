package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidTunnelSource  = errors.New("invalid tunnel source")
	ErrTunnelSourceNotFound = errors.New("tunnel source not found")
	ErrTunnelSourceNotTask  = errors.New("tunnel generation is only supported for tasks")
)

// TunnelTargetInfo carries the display details of a tunnel's far end.
type TunnelTargetInfo struct {
	Type  models.TunnelEntityType `json:"type"`
	ID    uint64                  `json:"id"`
	Title string                  `json:"title"`
}

// TunnelWithTarget is a stored tunnel annotated with its target's details.
type TunnelWithTarget struct {
	models.Tunnel
	TargetInfo *TunnelTargetInfo `json:"target_info"`
}

// TunnelService discovers and serves similarity links between entities.
type TunnelService struct {
	tunnelRepo  repository.TunnelRepository
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	ai          *AIService
	threshold   float64
}

// NewTunnelService creates a new TunnelService. The ai service is optional;
// without it similarity falls back to a random score.
func NewTunnelService(
	tunnelRepo repository.TunnelRepository,
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	ai *AIService,
	threshold float64,
) *TunnelService {
	return &TunnelService{
		tunnelRepo:  tunnelRepo,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		ai:          ai,
		threshold:   threshold,
	}
}

// ListForSource returns the stored tunnels of an entity, each annotated with
// its target's title or name.
func (s *TunnelService) ListForSource(sourceType models.TunnelEntityType, sourceID uint64) ([]TunnelWithTarget, error) {
	if !models.ValidTunnelEntityType(sourceType) {
		return nil, ErrInvalidTunnelSource
	}

	tunnels, err := s.tunnelRepo.ListBySource(sourceType, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tunnels: %w", err)
	}

	annotated := make([]TunnelWithTarget, 0, len(tunnels))
	for _, tunnel := range tunnels {
		annotated = append(annotated, TunnelWithTarget{
			Tunnel:     tunnel,
			TargetInfo: s.lookupTarget(tunnel.TargetType, tunnel.TargetID),
		})
	}

	return annotated, nil
}

// Generate scores the source task against every other task and persists a
// tunnel for each pair at or above the similarity threshold. A non-positive
// threshold falls back to the service default. The freshly created tunnels
// are returned.
func (s *TunnelService) Generate(ctx context.Context, sourceType models.TunnelEntityType, sourceID uint64, threshold float64) ([]TunnelWithTarget, error) {
	if threshold <= 0 {
		threshold = s.threshold
	}
	if !models.ValidTunnelEntityType(sourceType) {
		return nil, ErrInvalidTunnelSource
	}
	if sourceType != models.TunnelEntityTask {
		return nil, ErrTunnelSourceNotTask
	}

	source, err := s.taskRepo.FindByID(sourceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTunnelSourceNotFound
		}
		return nil, fmt.Errorf("failed to find source task: %w", err)
	}

	candidates, err := s.taskRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate tasks: %w", err)
	}

	var created []TunnelWithTarget
	for i := range candidates {
		target := &candidates[i]
		if target.ID == source.ID {
			continue
		}

		similarity := s.scorePair(ctx, source, target)
		if similarity < threshold {
			continue
		}

		tunnel := &models.Tunnel{
			SourceType: models.TunnelEntityTask,
			SourceID:   source.ID,
			TargetType: models.TunnelEntityTask,
			TargetID:   target.ID,
			Similarity: similarity,
		}

		if err := s.tunnelRepo.Create(tunnel); err != nil {
			return nil, fmt.Errorf("failed to create tunnel: %w", err)
		}

		created = append(created, TunnelWithTarget{
			Tunnel: *tunnel,
			TargetInfo: &TunnelTargetInfo{
				Type:  models.TunnelEntityTask,
				ID:    target.ID,
				Title: target.Title,
			},
		})
	}

	return created, nil
}

// scorePair prefers the AI model and falls back to a random score in the
// 0.6 to 1.0 band when no model is configured or the call fails.
func (s *TunnelService) scorePair(ctx context.Context, source, target *models.Task) float64 {
	if s.ai != nil {
		if score, err := s.ai.ScoreSimilarity(ctx, source, target); err == nil {
			return score
		}
	}
	return rand.Float64()*0.4 + 0.6
}

func (s *TunnelService) lookupTarget(targetType models.TunnelEntityType, targetID uint64) *TunnelTargetInfo {
	switch targetType {
	case models.TunnelEntityTask:
		task, err := s.taskRepo.FindByID(targetID)
		if err != nil {
			return nil
		}
		return &TunnelTargetInfo{Type: targetType, ID: targetID, Title: task.Title}
	case models.TunnelEntityProject:
		project, err := s.projectRepo.FindByID(targetID)
		if err != nil {
			return nil
		}
		return &TunnelTargetInfo{Type: targetType, ID: targetID, Title: project.Name}
	default:
		return nil
	}
}
