package model

import (
	"time"
)

type User struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Role          Role      `json:"role" gorm:"not null;index"`
	Name          string    `json:"name,omitempty"`
	Email         *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	AnonymousCode *string   `json:"anonymous_code,omitempty" gorm:"uniqueIndex"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
