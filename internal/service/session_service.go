package service

import (
	"errors"
	"time"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttendanceWindow is how long after a session starts that students may
// still mark attendance. Fixed product-wide; not configurable per session.
const AttendanceWindow = 5 * time.Minute

type SessionService interface {
	CreateSession(req dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetClassSessions(classID uint) ([]dto.SessionResponse, error)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	classRepo   repository.ClassRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, classRepo repository.ClassRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo, classRepo: classRepo}
}

func (s *sessionService) CreateSession(req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Class not found")
		}
		return nil, err
	}

	startsAt := time.Now()
	if req.StartsAt != nil {
		startsAt = *req.StartsAt
	}
	session := &model.Session{
		ClassID:            req.ClassID,
		StartsAt:           startsAt,
		AttendanceClosesAt: startsAt.Add(AttendanceWindow),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		log.Error().Err(err).Uint("classID", req.ClassID).Msg("CreateSession: repository error")
		return nil, err
	}

	var resp dto.SessionResponse
	if err := copier.Copy(&resp, session); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *sessionService) GetClassSessions(classID uint) ([]dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindByClass(classID)
	if err != nil {
		log.Error().Err(err).Uint("classID", classID).Msg("GetClassSessions: repository error")
		return nil, err
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		var item dto.SessionResponse
		if err := copier.Copy(&item, &session); err != nil {
			return nil, err
		}
		resp = append(resp, item)
	}
	return resp, nil
}
