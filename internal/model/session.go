package model

import (
	"time"
)

type Session struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	ClassID            uint      `json:"class_id" gorm:"not null;index"`
	Class              Class     `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	StartsAt           time.Time `json:"starts_at" gorm:"not null"`
	AttendanceClosesAt time.Time `json:"attendance_closes_at" gorm:"not null"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Attendance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID uint      `json:"session_id" gorm:"not null;uniqueIndex:idx_attendance_session_student"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_session_student"`
	CreatedAt time.Time `json:"created_at"`
}
