package model

import (
	"time"
)

type Feedback struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID uint      `json:"session_id" gorm:"not null;uniqueIndex:idx_feedback_session_student"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_feedback_session_student"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   *string   `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
