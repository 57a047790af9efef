package service

import (
	"github.com/classpulse/backend/internal/dto"
	"github.com/classpulse/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	BonusStatusComputed     = "computed"
	BonusStatusManualReview = "manual_review"
)

// bonusTiers maps average-rating floors to bonus amounts, evaluated in
// descending order; first match wins, so exactly 4.5 pays 500.
var bonusTiers = []struct {
	Floor  float64
	Amount int
}{
	{4.8, 600},
	{4.5, 500},
	{4.2, 400},
	{4.0, 300},
}

// CalculateBonus returns the bonus amount for an average rating. The
// second return is false when the average falls below every tier and the
// teacher needs manual review.
func CalculateBonus(averageRating float64) (int, bool) {
	for _, tier := range bonusTiers {
		if averageRating >= tier.Floor {
			return tier.Amount, true
		}
	}
	return 0, false
}

type ReportService interface {
	// GetTeacherReports builds the admin bonus report: one row per
	// teacher, aggregated over feedback across all of their classes'
	// sessions.
	GetTeacherReports() ([]dto.TeacherReport, error)
}

type reportService struct {
	userRepo     repository.UserRepository
	feedbackRepo repository.FeedbackRepository
}

func NewReportService(userRepo repository.UserRepository, feedbackRepo repository.FeedbackRepository) ReportService {
	return &reportService{userRepo: userRepo, feedbackRepo: feedbackRepo}
}

func (s *reportService) GetTeacherReports() ([]dto.TeacherReport, error) {
	teachers, err := s.userRepo.FindTeachers()
	if err != nil {
		log.Error().Err(err).Msg("GetTeacherReports: teacher lookup failed")
		return nil, err
	}

	reports := make([]dto.TeacherReport, 0, len(teachers))
	for _, teacher := range teachers {
		agg, err := s.feedbackRepo.AggregateByTeacher(teacher.ID)
		if err != nil {
			log.Error().Err(err).Uint("teacherID", teacher.ID).Msg("GetTeacherReports: aggregate failed")
			return nil, err
		}

		report := dto.TeacherReport{
			TeacherID:     teacher.ID,
			Name:          teacher.Name,
			AverageRating: agg.AverageRating,
			TotalFeedback: agg.TotalFeedback,
			BonusStatus:   BonusStatusManualReview,
		}
		if teacher.Email != nil {
			report.Email = *teacher.Email
		}
		if amount, ok := CalculateBonus(agg.AverageRating); ok {
			report.BonusAmount = &amount
			report.BonusStatus = BonusStatusComputed
		}
		reports = append(reports, report)
	}
	return reports, nil
}
