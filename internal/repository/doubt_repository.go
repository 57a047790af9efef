package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
)

type DoubtRepository interface {
	Create(doubt *model.Doubt) error
	// FindBySession returns the anonymous projection, oldest first. The
	// student id column is never selected.
	FindBySession(sessionID uint) ([]model.Doubt, error)
}

type doubtRepository struct {
	db *gorm.DB
}

func NewDoubtRepository(db *gorm.DB) DoubtRepository {
	return &doubtRepository{db: db}
}

func (r *doubtRepository) Create(doubt *model.Doubt) error {
	return r.db.Create(doubt).Error
}

func (r *doubtRepository) FindBySession(sessionID uint) ([]model.Doubt, error) {
	var doubts []model.Doubt
	err := r.db.
		Select("id, session_id, content, is_resolved, created_at").
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&doubts).Error
	if err != nil {
		return nil, err
	}
	return doubts, nil
}
