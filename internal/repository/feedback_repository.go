package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeedbackAggregate carries the mean and count for a set of feedback rows.
type FeedbackAggregate struct {
	AverageRating float64
	TotalFeedback int64
}

type FeedbackRepository interface {
	Upsert(feedback *model.Feedback) error
	AggregateBySession(sessionID uint) (*FeedbackAggregate, error)
	AggregateByTeacher(teacherID uint) (*FeedbackAggregate, error)
	CommentsBySession(sessionID uint) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Upsert keeps one feedback row per (session, student); resubmission
// overwrites the rating and comment, no history is retained.
func (r *feedbackRepository) Upsert(feedback *model.Feedback) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
	}).Create(feedback).Error
}

func (r *feedbackRepository) AggregateBySession(sessionID uint) (*FeedbackAggregate, error) {
	var agg FeedbackAggregate
	// COALESCE keeps the zero-feedback case at average 0, never NULL.
	err := r.db.Model(&model.Feedback{}).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as total_feedback").
		Where("session_id = ?", sessionID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// AggregateByTeacher joins feedback across all sessions of all classes the
// teacher owns.
func (r *feedbackRepository) AggregateByTeacher(teacherID uint) (*FeedbackAggregate, error) {
	var agg FeedbackAggregate
	err := r.db.Model(&model.Feedback{}).
		Select("COALESCE(AVG(feedbacks.rating), 0) as average_rating, COUNT(*) as total_feedback").
		Joins("JOIN sessions ON sessions.id = feedbacks.session_id").
		Joins("JOIN classes ON classes.id = sessions.class_id").
		Where("classes.teacher_id = ?", teacherID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *feedbackRepository) CommentsBySession(sessionID uint) ([]model.Feedback, error) {
	var rows []model.Feedback
	err := r.db.
		Select("id, rating, comment, created_at").
		Where("session_id = ? AND comment IS NOT NULL", sessionID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
