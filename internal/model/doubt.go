package model

import (
	"time"
)

// Doubt is append-only; students create, teachers only ever see the
// anonymous projection (content, timestamp, resolution flag).
type Doubt struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SessionID  uint      `json:"session_id" gorm:"not null;index"`
	StudentID  uint      `json:"-" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsResolved bool      `json:"is_resolved" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
}
