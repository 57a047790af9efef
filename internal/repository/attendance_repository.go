package repository

import (
	"github.com/classpulse/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	Upsert(attendance *model.Attendance) error
	CountBySession(sessionID uint) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Upsert marks attendance idempotently: a second marking for the same
// (session, student) pair is a no-op, never an error.
func (r *attendanceRepository) Upsert(attendance *model.Attendance) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "student_id"}},
		DoNothing: true,
	}).Create(attendance).Error
}

func (r *attendanceRepository) CountBySession(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attendance{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}
