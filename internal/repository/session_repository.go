package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *model.Session) error
	FindByID(id uint) (*model.Session, error)
	FindByClass(classID uint) ([]model.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByID(id uint) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByClass(classID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.Where("class_id = ?", classID).Order("starts_at ASC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
