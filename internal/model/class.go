package model

import (
	"time"
)

type Class struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	TeacherID uint      `json:"teacher_id" gorm:"not null;index"`
	Teacher   User      `json:"teacher,omitempty" gorm:"foreignKey:TeacherID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enrollment models roster membership. Current flows do not require it
// (sessions are reachable by class id alone) but the seed populates it.
type Enrollment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ClassID   uint      `json:"class_id" gorm:"not null;uniqueIndex:idx_enrollment_class_student"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollment_class_student"`
	CreatedAt time.Time `json:"created_at"`
}
