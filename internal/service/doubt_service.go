package service

import (
	"errors"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/realtime"
	"github.com/classpulse/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const EventDoubtNew = "doubt:new"

type DoubtService interface {
	// SubmitDoubt appends a doubt and announces it on the session channel.
	// The published payload and all listings carry no student identity.
	SubmitDoubt(sessionID, studentID uint, req dto.SubmitDoubtRequest) error
	GetSessionDoubts(sessionID uint) ([]dto.DoubtResponse, error)
}

type doubtService struct {
	sessionRepo repository.SessionRepository
	doubtRepo   repository.DoubtRepository
	publisher   realtime.Publisher
}

func NewDoubtService(
	sessionRepo repository.SessionRepository,
	doubtRepo repository.DoubtRepository,
	publisher realtime.Publisher,
) DoubtService {
	return &doubtService{sessionRepo: sessionRepo, doubtRepo: doubtRepo, publisher: publisher}
}

func (s *doubtService) SubmitDoubt(sessionID, studentID uint, req dto.SubmitDoubtRequest) error {
	if _, err := s.sessionRepo.FindByID(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Session not found")
		}
		return err
	}

	doubt := &model.Doubt{
		SessionID: sessionID,
		StudentID: studentID,
		Content:   req.Content,
	}
	if err := s.doubtRepo.Create(doubt); err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("SubmitDoubt: create failed")
		return err
	}

	s.publisher.Publish(sessionID, EventDoubtNew, dto.DoubtEvent{
		ID:        doubt.ID,
		Content:   doubt.Content,
		CreatedAt: doubt.CreatedAt,
	})
	return nil
}

func (s *doubtService) GetSessionDoubts(sessionID uint) ([]dto.DoubtResponse, error) {
	doubts, err := s.doubtRepo.FindBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("GetSessionDoubts: query failed")
		return nil, err
	}

	resp := make([]dto.DoubtResponse, 0, len(doubts))
	for _, doubt := range doubts {
		resp = append(resp, dto.DoubtResponse{
			ID:         doubt.ID,
			Content:    doubt.Content,
			IsResolved: doubt.IsResolved,
			CreatedAt:  doubt.CreatedAt,
		})
	}
	return resp, nil
}
