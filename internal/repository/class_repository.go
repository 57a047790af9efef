package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(class *model.Class) error
	FindByID(id uint) (*model.Class, error)
	FindByTeacher(teacherID uint) ([]model.Class, error)
	FindAllWithTeacher() ([]model.Class, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(class *model.Class) error {
	return r.db.Create(class).Error
}

func (r *classRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindByTeacher(teacherID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.Where("teacher_id = ?", teacherID).Order("created_at DESC").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) FindAllWithTeacher() ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.Preload("Teacher").Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}
