package models

import (
	"time"

	"gorm.io/gorm"
)

// Location is an optional place tag attached to a post.
type Location struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:256;not null" json:"name"`
	IsPublished bool           `gorm:"not null" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
