package service

import (
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ClassService interface {
	CreateClass(teacherID uint, req dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetTeacherClasses(teacherID uint) ([]dto.ClassResponse, error)
	GetAllClasses() ([]dto.ClassWithTeacherResponse, error)
}

type classService struct {
	classRepo repository.ClassRepository
}

func NewClassService(classRepo repository.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) CreateClass(teacherID uint, req dto.CreateClassRequest) (*dto.ClassResponse, error) {
	class := &model.Class{
		Name:      req.Name,
		Subject:   req.Subject,
		TeacherID: teacherID,
	}
	if err := s.classRepo.Create(class); err != nil {
		log.Error().Err(err).Uint("teacherID", teacherID).Msg("CreateClass: repository error")
		return nil, err
	}

	var resp dto.ClassResponse
	if err := copier.Copy(&resp, class); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *classService) GetTeacherClasses(teacherID uint) ([]dto.ClassResponse, error) {
	classes, err := s.classRepo.FindByTeacher(teacherID)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", teacherID).Msg("GetTeacherClasses: repository error")
		return nil, err
	}

	resp := make([]dto.ClassResponse, 0, len(classes))
	for _, class := range classes {
		var item dto.ClassResponse
		if err := copier.Copy(&item, &class); err != nil {
			return nil, err
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *classService) GetAllClasses() ([]dto.ClassWithTeacherResponse, error) {
	classes, err := s.classRepo.FindAllWithTeacher()
	if err != nil {
		log.Error().Err(err).Msg("GetAllClasses: repository error")
		return nil, err
	}

	resp := make([]dto.ClassWithTeacherResponse, 0, len(classes))
	for _, class := range classes {
		item := dto.ClassWithTeacherResponse{
			ID:        class.ID,
			Name:      class.Name,
			Subject:   class.Subject,
			CreatedAt: class.CreatedAt,
			Teacher: dto.TeacherInfo{
				ID:   class.Teacher.ID,
				Name: class.Teacher.Name,
			},
		}
		if class.Teacher.Email != nil {
			item.Teacher.Email = *class.Teacher.Email
		}
		resp = append(resp, item)
	}
	return resp, nil
}
