package service

import (
	"errors"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/realtime"
	"github.com/classpulse/backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	EventPollNew    = "poll:new"
	EventPollUpdate = "poll:update"
)

type PollService interface {
	// CreatePoll supersedes any active poll of the session: the deactivate
	// and the insert are one transaction, so at most one poll is ever
	// active per session.
	CreatePoll(teacherID uint, req dto.CreatePollRequest) (*dto.PollResponseDTO, error)
	// Respond upserts the student's single vote; re-voting shifts the
	// counted option.
	Respond(pollID, studentID uint, req dto.PollRespondRequest) error
	GetResults(pollID uint) (*dto.PollResultsResponse, error)
}

type pollService struct {
	sessionRepo repository.SessionRepository
	pollRepo    repository.PollRepository
	publisher   realtime.Publisher
}

func NewPollService(
	sessionRepo repository.SessionRepository,
	pollRepo repository.PollRepository,
	publisher realtime.Publisher,
) PollService {
	return &pollService{sessionRepo: sessionRepo, pollRepo: pollRepo, publisher: publisher}
}

func (s *pollService) CreatePoll(teacherID uint, req dto.CreatePollRequest) (*dto.PollResponseDTO, error) {
	if len(req.Options) < 2 {
		return nil, apperr.Validationf("sessionId, question, 2+ options required")
	}
	if _, err := s.sessionRepo.FindByID(req.SessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Session not found")
		}
		return nil, err
	}

	poll := &model.Poll{
		SessionID: req.SessionID,
		TeacherID: teacherID,
		Question:  req.Question,
		IsActive:  true,
	}
	for i, text := range req.Options {
		poll.Options = append(poll.Options, model.PollOption{Text: text, Position: i})
	}

	if err := s.pollRepo.CreateExclusive(poll); err != nil {
		log.Error().Err(err).Uint("sessionID", req.SessionID).Msg("CreatePoll: transaction failed")
		return nil, err
	}

	event := dto.PollCreatedEvent{ID: poll.ID, Question: poll.Question}
	for _, opt := range poll.Options {
		event.Options = append(event.Options, dto.PollOptionBrief{ID: opt.ID, Text: opt.Text})
	}
	s.publisher.Publish(poll.SessionID, EventPollNew, event)

	var resp dto.PollResponseDTO
	if err := copier.Copy(&resp, poll); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *pollService) Respond(pollID, studentID uint, req dto.PollRespondRequest) error {
	poll, err := s.pollRepo.FindByIDWithOptions(pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Statef("Poll not active")
		}
		log.Error().Err(err).Uint("pollID", pollID).Msg("Respond: poll lookup failed")
		return err
	}
	if !poll.IsActive {
		return apperr.Statef("Poll not active")
	}

	valid := false
	for _, opt := range poll.Options {
		if opt.ID == req.OptionID {
			valid = true
			break
		}
	}
	if !valid {
		return apperr.Statef("Invalid option")
	}

	response := &model.PollResponse{
		PollID:    pollID,
		StudentID: studentID,
		OptionID:  req.OptionID,
	}
	if err := s.pollRepo.UpsertResponse(response); err != nil {
		log.Error().Err(err).Uint("pollID", pollID).Msg("Respond: upsert failed")
		return err
	}

	counts, err := s.pollRepo.CountsByOption(pollID)
	if err != nil {
		log.Error().Err(err).Uint("pollID", pollID).Msg("Respond: count failed")
		return err
	}
	event := dto.PollUpdateEvent{PollID: pollID}
	for _, c := range counts {
		event.Results = append(event.Results, dto.OptionCountEntry{OptionID: c.OptionID, Count: c.Count})
	}
	s.publisher.Publish(poll.SessionID, EventPollUpdate, event)
	return nil
}

func (s *pollService) GetResults(pollID uint) (*dto.PollResultsResponse, error) {
	poll, err := s.pollRepo.FindByIDWithOptions(pollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("Poll not found")
		}
		return nil, err
	}

	counts, err := s.pollRepo.CountsByOption(pollID)
	if err != nil {
		log.Error().Err(err).Uint("pollID", pollID).Msg("GetResults: count failed")
		return nil, err
	}
	byOption := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byOption[c.OptionID] = c.Count
	}

	// Seed from the full option list so zero-vote options are reported,
	// in creation order.
	resp := &dto.PollResultsResponse{
		Poll:    dto.PollSummary{ID: poll.ID, Question: poll.Question},
		Results: make([]dto.PollResultEntry, 0, len(poll.Options)),
	}
	for _, opt := range poll.Options {
		resp.Results = append(resp.Results, dto.PollResultEntry{
			OptionID: opt.ID,
			Text:     opt.Text,
			Count:    byOption[opt.ID],
		})
	}
	return resp, nil
}
