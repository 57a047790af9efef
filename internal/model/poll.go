package model

import (
	"time"
)

type Poll struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	SessionID uint         `json:"session_id" gorm:"not null;index"`
	TeacherID uint         `json:"teacher_id" gorm:"not null;index"`
	Question  string       `json:"question" gorm:"type:text;not null"`
	IsActive  bool         `json:"is_active" gorm:"not null;default:true"`
	Options   []PollOption `json:"options,omitempty" gorm:"foreignKey:PollID"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type PollOption struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	PollID   uint   `json:"poll_id" gorm:"not null;index"`
	Text     string `json:"text" gorm:"not null"`
	Position int    `json:"position" gorm:"not null"`
}

// PollResponse holds a student's single, re-votable answer to a poll.
type PollResponse struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	PollID    uint      `json:"poll_id" gorm:"not null;uniqueIndex:idx_response_poll_student"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_response_poll_student"`
	OptionID  uint      `json:"option_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
