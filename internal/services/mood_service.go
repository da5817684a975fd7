package services

import (
	"errors"
	"fmt"

	"github.com/synergysphere/synergysphere-api/internal/constants"
	"github.com/synergysphere/synergysphere-api/internal/models"
	"github.com/synergysphere/synergysphere-api/internal/repository"
	"gorm.io/gorm"
)

var ErrInvalidMoodValue = errors.New("mood value must be between 1 and 5")

// MoodDay is a single calendar-day bucket of a project's mood pulses.
type MoodDay struct {
	Date        string   `json:"date"`
	AverageMood float64  `json:"average_mood"`
	MoodCount   int      `json:"mood_count"`
	Comments    []string `json:"comments"`
}

// MoodReport is the per-day mood aggregation for a project.
type MoodReport struct {
	ProjectID   uint64    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	MoodData    []MoodDay `json:"mood_data"`
}

// MoodService records and aggregates team mood pulses.
type MoodService struct {
	moodRepo    repository.MoodRepository
	projectRepo repository.ProjectRepository
}

// NewMoodService creates a new MoodService.
func NewMoodService(moodRepo repository.MoodRepository, projectRepo repository.ProjectRepository) *MoodService {
	return &MoodService{
		moodRepo:    moodRepo,
		projectRepo: projectRepo,
	}
}

// SubmitPulse records a mood pulse from a project member.
func (s *MoodService) SubmitPulse(userID, projectID uint64, moodValue int, comment string) (*models.MoodPulse, error) {
	if moodValue < constants.MinMoodValue || moodValue > constants.MaxMoodValue {
		return nil, ErrInvalidMoodValue
	}

	if _, err := s.projectRepo.FindMember(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotProjectMember
		}
		return nil, fmt.Errorf("failed to verify project membership: %w", err)
	}

	pulse := &models.MoodPulse{
		UserID:    userID,
		ProjectID: projectID,
		MoodValue: moodValue,
		Comment:   comment,
	}

	if err := s.moodRepo.Create(pulse); err != nil {
		return nil, fmt.Errorf("failed to record mood pulse: %w", err)
	}

	return pulse, nil
}

// ProjectReport groups a project's mood pulses by calendar day and computes
// the per-day mean alongside the collected comments.
func (s *MoodService) ProjectReport(projectID uint64) (*MoodReport, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	pulses, err := s.moodRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood pulses: %w", err)
	}

	type bucket struct {
		sum      int
		count    int
		comments []string
	}

	buckets := make(map[string]*bucket)
	var order []string
	for _, pulse := range pulses {
		date := pulse.CreatedAt.Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
			order = append(order, date)
		}
		b.sum += pulse.MoodValue
		b.count++
		if pulse.Comment != "" {
			b.comments = append(b.comments, pulse.Comment)
		}
	}

	days := make([]MoodDay, 0, len(order))
	for _, date := range order {
		b := buckets[date]
		days = append(days, MoodDay{
			Date:        date,
			AverageMood: float64(b.sum) / float64(b.count),
			MoodCount:   b.count,
			Comments:    b.comments,
		})
	}

	return &MoodReport{
		ProjectID:   projectID,
		ProjectName: project.Name,
		MoodData:    days,
	}, nil
}
