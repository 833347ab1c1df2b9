package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups posts under a unique slug. Unpublished categories hide
// every post inside them from public listings.
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"size:256;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	IsPublished bool           `gorm:"not null" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
