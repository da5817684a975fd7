package repository

import (
	"github.com/synergysphere/synergysphere-api/internal/models"
	"gorm.io/gorm"
)

// GormTunnelRepository is a GORM implementation of TunnelRepository
type GormTunnelRepository struct {
	db *gorm.DB
}

// NewTunnelRepository creates a new TunnelRepository
func NewTunnelRepository(db *gorm.DB) TunnelRepository {
	return &GormTunnelRepository{db: db}
}

// Create creates a new tunnel
func (r *GormTunnelRepository) Create(tunnel *models.Tunnel) error {
	return r.db.Create(tunnel).Error
}

// ListBySource lists tunnels originating from a source entity
func (r *GormTunnelRepository) ListBySource(sourceType models.TunnelEntityType, sourceID uint64) ([]models.Tunnel, error) {
	var tunnels []models.Tunnel
	if err := r.db.
		Where("source_type = ? AND source_id = ?", sourceType, sourceID).
		Order("tunnels.similarity DESC").
		Find(&tunnels).Error; err != nil {
		return nil, err
	}
	return tunnels, nil
}
