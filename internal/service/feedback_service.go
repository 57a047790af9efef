package service

import (
	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type FeedbackService interface {
	// SubmitFeedback upserts by (session, student): latest submission
	// wins, no history retained.
	SubmitFeedback(sessionID, studentID uint, req dto.SubmitFeedbackRequest) error
	GetAggregate(sessionID uint) (*dto.FeedbackAggregateResponse, error)
	GetComments(sessionID uint) ([]dto.FeedbackCommentResponse, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) SubmitFeedback(sessionID, studentID uint, req dto.SubmitFeedbackRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return apperr.Validationf("rating must be integer 1-5")
	}

	feedback := &model.Feedback{
		SessionID: sessionID,
		StudentID: studentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.feedbackRepo.Upsert(feedback); err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("SubmitFeedback: upsert failed")
		return err
	}
	return nil
}

func (s *feedbackService) GetAggregate(sessionID uint) (*dto.FeedbackAggregateResponse, error) {
	agg, err := s.feedbackRepo.AggregateBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("GetAggregate: aggregate failed")
		return nil, err
	}
	return &dto.FeedbackAggregateResponse{
		SessionID:     sessionID,
		AverageRating: agg.AverageRating,
		TotalFeedback: agg.TotalFeedback,
	}, nil
}

func (s *feedbackService) GetComments(sessionID uint) ([]dto.FeedbackCommentResponse, error) {
	rows, err := s.feedbackRepo.CommentsBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("GetComments: query failed")
		return nil, err
	}

	resp := make([]dto.FeedbackCommentResponse, 0, len(rows))
	for _, row := range rows {
		comment := ""
		if row.Comment != nil {
			comment = *row.Comment
		}
		resp = append(resp, dto.FeedbackCommentResponse{
			ID:        row.ID,
			Rating:    row.Rating,
			Comment:   comment,
			CreatedAt: row.CreatedAt,
		})
	}
	return resp, nil
}
