package service

import (
	"errors"
	"time"

	"github.com/classpulse/backend/internal/apperr"
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/model"
	"github.com/classpulse/backend/internal/realtime"
	"github.com/classpulse/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EventAttendanceUpdate carries the recomputed total attendance count for
// a session.
const EventAttendanceUpdate = "attendance:update"

type AttendanceService interface {
	// MarkAttendance records the student idempotently while the session's
	// window is open, then publishes the new count on the session channel.
	MarkAttendance(sessionID, studentID uint) error
	GetAttendanceCount(sessionID uint) (*dto.AttendanceCountResponse, error)
}

type attendanceService struct {
	sessionRepo    repository.SessionRepository
	attendanceRepo repository.AttendanceRepository
	publisher      realtime.Publisher
}

func NewAttendanceService(
	sessionRepo repository.SessionRepository,
	attendanceRepo repository.AttendanceRepository,
	publisher realtime.Publisher,
) AttendanceService {
	return &attendanceService{
		sessionRepo:    sessionRepo,
		attendanceRepo: attendanceRepo,
		publisher:      publisher,
	}
}

func (s *attendanceService) MarkAttendance(sessionID, studentID uint) error {
	session, err := s.sessionRepo.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("Session not found")
		}
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("MarkAttendance: session lookup failed")
		return err
	}
	if time.Now().After(session.AttendanceClosesAt) {
		return apperr.Statef("Attendance window closed")
	}

	attendance := &model.Attendance{SessionID: sessionID, StudentID: studentID}
	if err := s.attendanceRepo.Upsert(attendance); err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("MarkAttendance: upsert failed")
		return err
	}

	count, err := s.attendanceRepo.CountBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("MarkAttendance: count failed")
		return err
	}
	s.publisher.Publish(sessionID, EventAttendanceUpdate, dto.AttendanceCountResponse{
		SessionID: sessionID,
		Count:     count,
	})
	return nil
}

func (s *attendanceService) GetAttendanceCount(sessionID uint) (*dto.AttendanceCountResponse, error) {
	count, err := s.attendanceRepo.CountBySession(sessionID)
	if err != nil {
		log.Error().Err(err).Uint("sessionID", sessionID).Msg("GetAttendanceCount: count failed")
		return nil, err
	}
	return &dto.AttendanceCountResponse{SessionID: sessionID, Count: count}, nil
}
