package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindStudentByAnonymousCode(code string) (*model.User, error)
	FindTeachers() ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindStudentByAnonymousCode(code string) (*model.User, error) {
	var user model.User
	err := r.db.Where("role = ? AND anonymous_code = ?", model.RoleStudent, code).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindTeachers() ([]model.User, error) {
	var teachers []model.User
	if err := r.db.Where("role = ?", model.RoleTeacher).Order("id ASC").Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}
